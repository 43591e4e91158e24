package authz

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jagannathit007/BSock-admin-sub004/internal/constants"

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
	return svc
}

func TestBootstrapRolesEnforcement(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}

	if err := svc.SetAdminRoles(1, []string{constants.RoleOperator}); err != nil {
		t.Fatalf("set operator failed: %v", err)
	}
	if err := svc.SetAdminRoles(2, []string{constants.RoleViewer}); err != nil {
		t.Fatalf("set viewer failed: %v", err)
	}

	cases := []struct {
		adminID uint
		obj     string
		act     string
		allow   bool
	}{
		{1, "/api/v1/admin/form/sessions", "POST", true},
		{1, "/api/v1/admin/form/sessions/abc/rows/0", "PATCH", true},
		{1, "/api/v1/admin/listings/7/status", "PATCH", true},
		{1, "/api/v1/admin/listings", "GET", true},
		{2, "/api/v1/admin/listings", "GET", true},
		{2, "/api/v1/admin/form/sessions", "POST", false},
		{2, "/api/v1/admin/grades", "DELETE", false},
	}
	for _, tc := range cases {
		allow, err := svc.EnforceAdmin(tc.adminID, tc.obj, tc.act)
		if err != nil {
			t.Fatalf("enforce %d %s %s failed: %v", tc.adminID, tc.obj, tc.act, err)
		}
		if allow != tc.allow {
			t.Fatalf("enforce %d %s %s: expected %v, got %v", tc.adminID, tc.obj, tc.act, tc.allow, allow)
		}
	}
}

func TestSetAdminRolesOverride(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}

	if err := svc.SetAdminRoles(3, []string{constants.RoleOperator}); err != nil {
		t.Fatalf("set operator failed: %v", err)
	}
	if err := svc.SetAdminRoles(3, []string{constants.RoleViewer}); err != nil {
		t.Fatalf("override to viewer failed: %v", err)
	}

	roles, err := svc.GetAdminRoles(3)
	if err != nil {
		t.Fatalf("get roles failed: %v", err)
	}
	if len(roles) != 1 || roles[0] != "role:viewer" {
		t.Fatalf("expected single viewer role, got %v", roles)
	}

	allow, err := svc.EnforceAdmin(3, "/api/v1/admin/form/sessions", "POST")
	if err != nil {
		t.Fatalf("enforce failed: %v", err)
	}
	if allow {
		t.Fatalf("override must drop operator permissions")
	}
}

func TestNormalizeObjectStripsAPIPrefix(t *testing.T) {
	if got := NormalizeObject("/api/v1/admin/listings"); got != "/admin/listings" {
		t.Fatalf("unexpected normalize result: %q", got)
	}
	if got := NormalizeObject("admin/listings"); got != "/admin/listings" {
		t.Fatalf("unexpected normalize result: %q", got)
	}
	if got := NormalizeObject("  "); got != "/" {
		t.Fatalf("unexpected normalize result: %q", got)
	}
}
