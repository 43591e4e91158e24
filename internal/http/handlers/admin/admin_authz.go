package admin

import (
	"github.com/jagannathit007/BSock-admin-sub004/internal/http/response"
	"github.com/jagannathit007/BSock-admin-sub004/internal/models"

	"github.com/gin-gonic/gin"
)

// GetAuthzRoles 获取全部角色
func (h *Handler) GetAuthzRoles(c *gin.Context) {
	roles, err := h.AuthzService.ListRoles()
	if err != nil {
		respondError(c, response.CodeInternal, "role fetch failed", err)
		return
	}
	response.Success(c, roles)
}

// AdminSummary 管理员列表项
type AdminSummary struct {
	ID          uint     `json:"id"`
	Username    string   `json:"username"`
	IsSuper     bool     `json:"is_super"`
	Roles       []string `json:"roles"`
	LastLoginAt string   `json:"last_login_at,omitempty"`
}

// GetAuthzAdmins 获取管理员及其角色列表
func (h *Handler) GetAuthzAdmins(c *gin.Context) {
	admins, err := h.AdminRepo.List()
	if err != nil {
		respondError(c, response.CodeInternal, "admin fetch failed", err)
		return
	}

	summaries := make([]AdminSummary, 0, len(admins))
	for _, item := range admins {
		roles, roleErr := h.AuthzService.GetAdminRoles(item.ID)
		if roleErr != nil {
			respondError(c, response.CodeInternal, "role fetch failed", roleErr)
			return
		}
		summary := AdminSummary{
			ID:       item.ID,
			Username: item.Username,
			IsSuper:  item.IsSuper,
			Roles:    roles,
		}
		if item.LastLoginAt != nil {
			summary.LastLoginAt = item.LastLoginAt.Format("2006-01-02T15:04:05Z07:00")
		}
		summaries = append(summaries, summary)
	}
	response.Success(c, summaries)
}

// CreateAdminRequest 创建管理员请求
type CreateAdminRequest struct {
	Username string   `json:"username" binding:"required"`
	Password string   `json:"password" binding:"required"`
	IsSuper  bool     `json:"is_super"`
	Roles    []string `json:"roles"`
}

// CreateAuthzAdmin 创建管理员并分配角色
func (h *Handler) CreateAuthzAdmin(c *gin.Context) {
	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	if err := h.AuthService.ValidatePassword(req.Password); err != nil {
		respondError(c, response.CodeBadRequest, "password rejected", nil)
		return
	}

	existing, err := h.AdminRepo.GetByUsername(req.Username)
	if err != nil {
		respondError(c, response.CodeInternal, "admin create failed", err)
		return
	}
	if existing != nil {
		respondError(c, response.CodeBadRequest, "username already exists", nil)
		return
	}

	hash, err := h.AuthService.HashPassword(req.Password)
	if err != nil {
		respondError(c, response.CodeInternal, "admin create failed", err)
		return
	}

	admin := &models.Admin{
		Username:     req.Username,
		PasswordHash: hash,
		IsSuper:      req.IsSuper,
	}
	if err := h.AdminRepo.Create(admin); err != nil {
		respondError(c, response.CodeInternal, "admin create failed", err)
		return
	}

	if len(req.Roles) > 0 {
		if err := h.AuthzService.SetAdminRoles(admin.ID, req.Roles); err != nil {
			respondError(c, response.CodeInternal, "role assignment failed", err)
			return
		}
	}

	requestLog(c).Infow("admin_created", "admin_id", admin.ID, "username", admin.Username)
	response.Success(c, gin.H{
		"id":       admin.ID,
		"username": admin.Username,
		"is_super": admin.IsSuper,
	})
}

// GetAuthzAdminRoles 获取指定管理员的角色
func (h *Handler) GetAuthzAdminRoles(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	roles, err := h.AuthzService.GetAdminRoles(id)
	if err != nil {
		respondError(c, response.CodeInternal, "role fetch failed", err)
		return
	}
	response.Success(c, gin.H{"admin_id": id, "roles": roles})
}

// SetAdminRolesRequest 设置管理员角色请求
type SetAdminRolesRequest struct {
	Roles []string `json:"roles"`
}

// SetAuthzAdminRoles 覆盖式设置指定管理员的角色
func (h *Handler) SetAuthzAdminRoles(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req SetAdminRolesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	target, err := h.AdminRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "role assignment failed", err)
		return
	}
	if target == nil {
		respondError(c, response.CodeNotFound, "admin not found", nil)
		return
	}

	if err := h.AuthzService.SetAdminRoles(id, req.Roles); err != nil {
		respondError(c, response.CodeBadRequest, "role assignment failed", err)
		return
	}

	roles, err := h.AuthzService.GetAdminRoles(id)
	if err != nil {
		respondError(c, response.CodeInternal, "role fetch failed", err)
		return
	}

	requestLog(c).Infow("admin_roles_updated", "admin_id", id, "roles", roles)
	response.Success(c, gin.H{"admin_id": id, "roles": roles})
}
