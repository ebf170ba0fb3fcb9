package helpers

import (
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	AccessCookie  = "access_token"
	RefreshCookie = "refresh_token"
)

// TokenCookies writes the session token pair as HttpOnly cookies.
type TokenCookies struct {
	Domain   string
	Secure   bool
	SameSite http.SameSite
}

func NewTokenCookies(domain string, secure bool) *TokenCookies {
	return &TokenCookies{Domain: domain, Secure: secure, SameSite: http.SameSiteLaxMode}
}

func (t *TokenCookies) Set(c *gin.Context, access string, aexp time.Time, refresh string, rexp time.Time) {
	t.write(c, AccessCookie, access, maxAgeUntil(aexp))
	t.write(c, RefreshCookie, refresh, maxAgeUntil(rexp))
}

func (t *TokenCookies) Clear(c *gin.Context) {
	t.write(c, AccessCookie, "", -1)
	t.write(c, RefreshCookie, "", -1)
}

func (t *TokenCookies) write(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(t.SameSite)
	c.SetCookie(name, value, maxAge, "/", t.Domain, t.Secure, true)
}

// maxAgeUntil rounds up; an already expired time deletes the cookie.
func maxAgeUntil(exp time.Time) int {
	sec := math.Ceil(time.Until(exp).Seconds())
	if sec <= 0 {
		return -1
	}
	return int(sec)
}
