package authz

import "fmt"

// RoleSeed 预置角色定义
type RoleSeed struct {
	Role     string
	Inherits []string
	Policies []Policy
}

// BuiltinRoleSeeds 系统预置角色矩阵。
// viewer 只读全部后台资源；operator 在此之上可以操作
// 表单会话、字典维护与刊登状态。
func BuiltinRoleSeeds() []RoleSeed {
	return []RoleSeed{
		{
			Role: "viewer",
			Policies: []Policy{
				{Object: "/admin/*", Action: "GET"},
				{Object: "/admin/password", Action: "PUT"},
			},
		},
		{
			Role:     "operator",
			Inherits: []string{"viewer"},
			Policies: []Policy{
				{Object: "/admin/form/sessions", Action: "*"},
				{Object: "/admin/form/sessions/:id", Action: "*"},
				{Object: "/admin/form/sessions/:id/rows", Action: "*"},
				{Object: "/admin/form/sessions/:id/rows/:index", Action: "*"},
				{Object: "/admin/form/sessions/:id/submit", Action: "POST"},
				{Object: "/admin/reference/reload", Action: "POST"},
				{Object: "/admin/listings/:id/status", Action: "PATCH"},
				{Object: "/admin/grades", Action: "*"},
				{Object: "/admin/grades/:id", Action: "*"},
				{Object: "/admin/sellers", Action: "*"},
				{Object: "/admin/sellers/:id", Action: "*"},
				{Object: "/admin/locations", Action: "*"},
				{Object: "/admin/locations/:id", Action: "*"},
				{Object: "/admin/sku-families", Action: "*"},
				{Object: "/admin/sku-families/:id", Action: "*"},
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
		role, err := s.EnsureRole(seed.Role)
		if err != nil {
			return err
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
			action := NormalizeAction(policy.Action)
			if action == "" {
				return fmt.Errorf("builtin policy action is required")
			}
			if _, err := s.enforcer.AddPolicy(role, NormalizeObject(policy.Object), action); err != nil {
				return fmt.Errorf("add builtin policy failed: %w", err)
			}
		}
	}
	return nil
}
