package authz

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAuthzServiceTest(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	svc, err := NewService(db)
	if err != nil {
		t.Fatalf("new authz service failed: %v", err)
	}
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("bootstrap builtin roles failed: %v", err)
	}
	return svc
}

func mustAuthorize(t *testing.T, svc *Service, caller Caller, operation, target string) bool {
	t.Helper()
	allow, err := svc.Authorize(caller, operation, target)
	if err != nil {
		t.Fatalf("authorize %s failed: %v", operation, err)
	}
	return allow
}

func TestStaffCanDoEverything(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	staff := Caller{UserID: 1, IsStaff: true}
	for _, op := range []string{OpProductDelete, OpOrderListAll, OpCustomerHistory, OpOrderUpdatePayment} {
		if !mustAuthorize(t, svc, staff, op, "7") {
			t.Fatalf("expected staff allowed for %s", op)
		}
	}
}

func TestCustomerLimitedToOwnOperations(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	customer := Caller{UserID: 2}

	if !mustAuthorize(t, svc, customer, OpOrderCreate, "") {
		t.Fatalf("expected customer allowed to checkout")
	}
	if !mustAuthorize(t, svc, customer, OpOrderGet, "15") {
		t.Fatalf("expected customer allowed to read an order")
	}
	for _, op := range []string{OpProductDelete, OpOrderListAll, OpCollectionCreate} {
		if mustAuthorize(t, svc, customer, op, "") {
			t.Fatalf("expected customer denied for %s", op)
		}
	}
	if mustAuthorize(t, svc, customer, OpCustomerHistory, "3") {
		t.Fatalf("expected customer denied for customer history")
	}
}

func TestSupportRoleGrantsCustomerHistory(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.SetUserRoles(5, []string{"support"}); err != nil {
		t.Fatalf("set user roles failed: %v", err)
	}
	caller := Caller{UserID: 5}
	if !mustAuthorize(t, svc, caller, OpCustomerHistory, "3") {
		t.Fatalf("expected support allowed to read customer history")
	}
	if mustAuthorize(t, svc, caller, OpProductDelete, "3") {
		t.Fatalf("expected support denied for product delete")
	}

	roles, err := svc.GetUserRoles(5)
	if err != nil {
		t.Fatalf("get user roles failed: %v", err)
	}
	if len(roles) != 1 || roles[0] != "role:support" {
		t.Fatalf("unexpected roles: %v", roles)
	}

	if err := svc.SetUserRoles(5, nil); err != nil {
		t.Fatalf("clear user roles failed: %v", err)
	}
	if mustAuthorize(t, svc, caller, OpCustomerHistory, "3") {
		t.Fatalf("expected history denied after roles cleared")
	}
}

func TestGrantAndRevokeRolePolicy(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.GrantRolePolicy("customer", "product:inventory"); err != nil {
		t.Fatalf("grant role policy failed: %v", err)
	}
	if !mustAuthorize(t, svc, Caller{UserID: 9}, OpProductInventory, "") {
		t.Fatalf("expected granted operation allowed")
	}
	policies, err := svc.GetRolePolicies("customer")
	if err != nil {
		t.Fatalf("get role policies failed: %v", err)
	}
	found := false
	for _, p := range policies {
		if p.Object == "product" && p.Action == "inventory" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected granted policy listed, got %+v", policies)
	}

	if err := svc.RevokeRolePolicy("customer", "product:inventory"); err != nil {
		t.Fatalf("revoke role policy failed: %v", err)
	}
	if mustAuthorize(t, svc, Caller{UserID: 9}, OpProductInventory, "") {
		t.Fatalf("expected revoked operation denied")
	}
}

func TestBootstrapBuiltinRolesIdempotent(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	before, err := svc.GetRolePolicies(RoleCustomer)
	if err != nil {
		t.Fatalf("get role policies failed: %v", err)
	}
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("second bootstrap failed: %v", err)
	}
	after, err := svc.GetRolePolicies(RoleCustomer)
	if err != nil {
		t.Fatalf("get role policies failed: %v", err)
	}
	if len(before) != len(after) || len(after) == 0 {
		t.Fatalf("bootstrap should be idempotent, before=%d after=%d", len(before), len(after))
	}
}

func TestSplitOperation(t *testing.T) {
	object, action, err := SplitOperation(" Product:Delete ")
	if err != nil || object != "product" || action != "delete" {
		t.Fatalf("unexpected split: %q %q %v", object, action, err)
	}
	if _, _, err := SplitOperation("product"); err == nil {
		t.Fatalf("expected error for operation without action")
	}
}
