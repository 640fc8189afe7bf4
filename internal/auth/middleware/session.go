package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amaradesign/portfolio-backend/internal/auth"
)

// AdminIDKey is where the session middleware stores the authenticated
// admin's id on the gin context.
const AdminIDKey = "admin_id"

// RequireSession resolves the session cookie and aborts with 401 before the
// request reaches any handler when the session is absent or dead.
func RequireSession(svc *auth.Service, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		admin, err := svc.Admin(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		c.Set(AdminIDKey, admin.ID)
		c.Next()
	}
}
