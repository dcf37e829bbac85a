package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/store-order-api/models"
	"github.com/yeremiapane/store-order-api/utils"
)

// RequireAdmin guards routes that are admin-only regardless of target, such
// as the employee directory. Order routes do their role checks through the
// auth policy instead, since those also need the ownership rule.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := IdentityFrom(c)
		if !ok {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("identity not found in context"))
			c.Abort()
			return
		}

		if ident.Role != models.RoleAdmin {
			utils.RespondError(c, http.StatusForbidden, errors.New("admin access required"))
			c.Abort()
			return
		}

		c.Next()
	}
}
