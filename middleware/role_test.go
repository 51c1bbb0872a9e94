package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"bookify/models"
)

func init() { gin.SetMode(gin.TestMode) }

func runRoleCheck(t *testing.T, role string, authenticated bool, allowed ...string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/admin/bookings", nil)
	if authenticated {
		c.Set("userRole", role)
	}
	RequireRoles(allowed...)(c)
	return w, c.IsAborted()
}

func TestRequireRolesUnauthenticated(t *testing.T) {
	w, aborted := runRoleCheck(t, "", false, models.RoleOwner)
	if !aborted || w.Code != http.StatusUnauthorized {
		t.Fatalf("aborted=%v code=%d, want abort with 401", aborted, w.Code)
	}

	// An empty role value is as good as no authentication.
	w, aborted = runRoleCheck(t, "", true, models.RoleOwner)
	if !aborted || w.Code != http.StatusUnauthorized {
		t.Fatalf("empty role: aborted=%v code=%d", aborted, w.Code)
	}
}

func TestRequireRolesForbidden(t *testing.T) {
	w, aborted := runRoleCheck(t, models.RoleUser, true, models.RoleOwner, models.RoleAdmin)
	if !aborted || w.Code != http.StatusForbidden {
		t.Fatalf("aborted=%v code=%d, want abort with 403", aborted, w.Code)
	}
}

func TestRequireRolesAllowed(t *testing.T) {
	for _, role := range []string{models.RoleOwner, models.RoleAdmin, models.RoleSuperAdmin} {
		w, aborted := runRoleCheck(t, role, true, models.RoleOwner, models.RoleAdmin, models.RoleSuperAdmin)
		if aborted || w.Code != http.StatusOK {
			t.Fatalf("role %s: aborted=%v code=%d, want pass-through", role, aborted, w.Code)
		}
	}
}
