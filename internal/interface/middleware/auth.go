package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-ddd-resource-api/internal/application"
	"github.com/oksasatya/go-ddd-resource-api/pkg/helpers"
	"github.com/oksasatya/go-ddd-resource-api/pkg/response"
)

// Context keys set by Auth.
const (
	CtxAccountID    = "accountID"
	CtxAccountEmail = "accountEmail"
	CtxAccountScope = "accountScope"
)

// Auth validates the access token cookie (or a Bearer header) and requires
// the token's session to still be the account's active one.
func Auth(sessions application.SessionStore, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sessions == nil {
			response.Abort(c, http.StatusServiceUnavailable, "session store unavailable", nil)
			return
		}
		token := accessToken(c)
		if token == "" {
			response.Abort(c, http.StatusUnauthorized, "missing access token", nil)
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "invalid access token", err.Error())
			return
		}

		sess, ok, err := sessions.Get(c.Request.Context(), claims.AccountID)
		if err != nil || !ok || sess.SID != claims.SessionID {
			response.Abort(c, http.StatusUnauthorized, "session not found", nil)
			return
		}

		c.Set(CtxAccountID, sess.AccountID)
		c.Set(CtxAccountEmail, sess.Email)
		c.Set(CtxAccountScope, sess.Scope)
		c.Next()
	}
}

func accessToken(c *gin.Context) string {
	if token, err := c.Cookie(helpers.AccessCookie); err == nil && token != "" {
		return token
	}
	const prefix = "Bearer "
	if h := c.GetHeader("Authorization"); len(h) > len(prefix) && h[:len(prefix)] == prefix {
		return h[len(prefix):]
	}
	return ""
}
