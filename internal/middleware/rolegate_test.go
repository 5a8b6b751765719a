package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/izabelforte/ProjetoPCRH/internal/infra/session"
	"github.com/izabelforte/ProjetoPCRH/internal/pkg/authz"
	"github.com/stretchr/testify/assert"
)

func gateRouter(resource, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	if role != "" {
		router.Use(func(c *gin.Context) {
			c.Set(sessionKey, &session.Payload{UserID: 1, Username: "u", Role: role})
		})
	}
	router.Use(RequireRoles(authz.DefaultPolicy(), resource))
	router.GET("/guarded", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func TestRequireRoles(t *testing.T) {
	tests := []struct {
		name     string
		resource string
		role     string
		allowed  bool
	}{
		{name: "administrator reaches clients", resource: "clients", role: authz.RoleAdministrator, allowed: true},
		{name: "project manager denied on clients", resource: "clients", role: authz.RoleProjectManager},
		{name: "project manager reaches projects", resource: "projects", role: authz.RoleProjectManager, allowed: true},
		{name: "employee denied on projects", resource: "projects", role: authz.RoleEmployee},
		{name: "employee reaches own projects", resource: "projects:mine", role: authz.RoleEmployee, allowed: true},
		{name: "client reaches own reports", resource: "reports:mine", role: authz.RoleClient, allowed: true},
		{name: "client denied on reports", resource: "reports", role: authz.RoleClient},
		{name: "anonymous denied", resource: "clients", role: ""},
		{name: "unknown resource denies admin", resource: "payroll", role: authz.RoleAdministrator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gateRouter(tt.resource, tt.role)

			req := httptest.NewRequest("GET", "/guarded", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if tt.allowed {
				assert.Equal(t, http.StatusOK, w.Code)
			} else {
				assert.Equal(t, http.StatusSeeOther, w.Code)
				assert.Equal(t, accessDeniedPath, w.Header().Get("Location"))
			}
		})
	}
}
