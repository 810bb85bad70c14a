package authz

import "fmt"

// 操作名
const (
	OpCollectionCreate      = "collection:create"
	OpCollectionDelete      = "collection:delete"
	OpProductCreate         = "product:create"
	OpProductUpdate         = "product:update"
	OpProductDelete         = "product:delete"
	OpProductClearInventory = "product:clear_inventory"
	OpProductInventory      = "product:inventory"
	OpCustomerList          = "customer:list"
	OpCustomerHistory       = "customer:history"
	OpCustomerProfile       = "customer:profile"
	OpOrderCreate           = "order:create"
	OpOrderList             = "order:list"
	OpOrderListAll          = "order:list_all"
	OpOrderGet              = "order:get"
	OpOrderUpdatePayment    = "order:update_payment"
	OpAuthzManage           = "authz:manage"
)

// RoleSeed 预置角色定义
type RoleSeed struct {
	Role     string
	Inherits []string
	Policies []Policy
}

// BuiltinRoleSeeds 系统预置角色矩阵
func BuiltinRoleSeeds() []RoleSeed {
	return []RoleSeed{
		{
			Role: RoleCustomer,
			Policies: []Policy{
				{Object: "customer", Action: "profile"},
				{Object: "order", Action: "create"},
				{Object: "order", Action: "list"},
				{Object: "order/*", Action: "get"},
			},
		},
		{
			Role:     "role:support",
			Inherits: []string{RoleCustomer},
			Policies: []Policy{
				{Object: "customer", Action: "list"},
				{Object: "customer/*", Action: "history"},
				{Object: "order", Action: "list_all"},
				{Object: "product", Action: "inventory"},
			},
		},
		{
			Role:     RoleStaff,
			Inherits: []string{"role:support"},
			Policies: []Policy{
				{Object: "*", Action: "*"},
			},
		},
	}
}

// BootstrapBuiltinRoles 初始化预置角色与默认策略
func (s *Service) BootstrapBuiltinRoles() error {
	if s == nil || s.enforcer == nil {
		return fmt.Errorf("authz service unavailable")
	}

	for _, seed := range BuiltinRoleSeeds() {
		role, err := NormalizeRole(seed.Role)
		if err != nil {
			return err
		}

		exists, err := s.enforcer.HasNamedGroupingPolicy("g", role, roleAnchor)
		if err != nil {
			return fmt.Errorf("check builtin role failed: %w", err)
		}
		if !exists {
			if _, err := s.enforcer.AddNamedGroupingPolicy("g", role, roleAnchor); err != nil {
				return fmt.Errorf("create builtin role failed: %w", err)
			}
		}

		for _, parent := range seed.Inherits {
			parentRole, err := NormalizeRole(parent)
			if err != nil {
				return err
			}
			if _, err := s.enforcer.AddNamedGroupingPolicy("g", role, parentRole); err != nil {
				return fmt.Errorf("link role inheritance failed: %w", err)
			}
		}

		for _, policy := range seed.Policies {
			if policy.Action == "" {
				return fmt.Errorf("builtin policy action is required")
			}
			if _, err := s.enforcer.AddPolicy(role, policy.Object, policy.Action); err != nil {
				return fmt.Errorf("add builtin policy failed: %w", err)
			}
		}
	}
	return nil
}
