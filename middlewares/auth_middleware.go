package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/store-order-api/auth"
	"github.com/yeremiapane/store-order-api/utils"
)

const identityKey = "identity"

// AuthRequired extracts the caller's identity from the Authorization header.
// The header value is the token itself: clients do not send a "Bearer "
// prefix, and that wire contract is kept as-is for compatibility.
//
// A missing header is 401 (nothing was presented); a header that fails
// verification is 403 (something was presented and rejected).
func AuthRequired(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("Authorization")
		if raw == "" {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("authorization header missing"))
			c.Abort()
			return
		}

		ident, err := tokens.Verify(raw)
		if err != nil {
			utils.RespondError(c, http.StatusForbidden, err)
			c.Abort()
			return
		}

		c.Set(identityKey, ident)
		c.Next()
	}
}

// IdentityFrom recovers the identity stored by AuthRequired.
func IdentityFrom(c *gin.Context) (auth.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return auth.Identity{}, false
	}
	ident, ok := v.(auth.Identity)
	return ident, ok
}
