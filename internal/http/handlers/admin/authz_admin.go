package admin

import (
	"github.com/storefront-api/internal/authz"
	"github.com/storefront-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// SetUserRolesRequest 设置用户附加角色请求
type SetUserRolesRequest struct {
	Roles []string `json:"roles"`
}

// GrantRolePolicyRequest 为角色授予操作请求
type GrantRolePolicyRequest struct {
	Operation string `json:"operation" binding:"required"`
}

// GetRolePolicies 查询角色策略
func (h *Handler) GetRolePolicies(c *gin.Context) {
	if !h.authorize(c, authz.OpAuthzManage, 0) {
		return
	}
	policies, err := h.AuthzService.GetRolePolicies(c.Param("role"))
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	response.Success(c, policies)
}

// GrantRolePolicy 为角色授予操作
func (h *Handler) GrantRolePolicy(c *gin.Context) {
	if !h.authorize(c, authz.OpAuthzManage, 0) {
		return
	}
	var req GrantRolePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	if err := h.AuthzService.GrantRolePolicy(c.Param("role"), req.Operation); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	requestLog(c).Infow("admin_authz_policy_granted", "role", c.Param("role"), "operation", req.Operation)
	response.Success(c, nil)
}

// GetUserRoles 查询用户附加角色
func (h *Handler) GetUserRoles(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if !h.authorize(c, authz.OpAuthzManage, 0) {
		return
	}
	roles, err := h.AuthzService.GetUserRoles(id)
	if err != nil {
		respondError(c, response.CodeInternal, "error.authz_unavailable", err)
		return
	}
	response.Success(c, gin.H{"user_id": id, "roles": roles})
}

// SetUserRoles 覆盖设置用户附加角色
func (h *Handler) SetUserRoles(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if !h.authorize(c, authz.OpAuthzManage, 0) {
		return
	}
	var req SetUserRolesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	if err := h.AuthzService.SetUserRoles(id, req.Roles); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	requestLog(c).Infow("admin_authz_user_roles_updated", "target_user_id", id, "roles", req.Roles)
	response.Success(c, gin.H{"user_id": id, "roles": req.Roles})
}

// RevokeRolePolicy 撤销角色操作
func (h *Handler) RevokeRolePolicy(c *gin.Context) {
	if !h.authorize(c, authz.OpAuthzManage, 0) {
		return
	}
	var req GrantRolePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	if err := h.AuthzService.RevokeRolePolicy(c.Param("role"), req.Operation); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	requestLog(c).Infow("admin_authz_policy_revoked", "role", c.Param("role"), "operation", req.Operation)
	response.Success(c, nil)
}
