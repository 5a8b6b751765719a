package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/izabelforte/ProjetoPCRH/internal/pkg/authz"
)

const accessDeniedPath = "/api/v1/account/access-denied"

// RequireRoles is the single authorization gate. It reads the session loaded
// by SessionLoad and compares its role against the policy entry for the
// resource. Anything short of a definite match is a denial: no session, no
// role, unknown resource. Denials redirect, they never error.
func RequireRoles(policy authz.Policy, resource string) gin.HandlerFunc {
	accepted := policy.For(resource)
	return func(c *gin.Context) {
		role := ""
		if p, ok := CurrentSession(c); ok {
			role = p.Role
		}
		if !authz.Allowed(accepted, role) {
			c.Redirect(http.StatusSeeOther, accessDeniedPath)
			c.Abort()
			return
		}
		c.Next()
	}
}
