package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-resource-api/internal/application"
	"github.com/oksasatya/go-ddd-resource-api/pkg/helpers"
)

func init() { gin.SetMode(gin.TestMode) }

type memSessions map[string]application.Session

func (m memSessions) Save(_ context.Context, s application.Session, _ time.Duration) error {
	m[s.AccountID] = s
	return nil
}

func (m memSessions) Get(_ context.Context, id string) (application.Session, bool, error) {
	s, ok := m[id]
	return s, ok, nil
}

func (m memSessions) Delete(_ context.Context, id string) error {
	delete(m, id)
	return nil
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("request_id")) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(w.Body.String())
	require.NoError(t, err)
	assert.Equal(t, w.Body.String(), w.Header().Get(HeaderRequestID))

	given := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, given)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, given, w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "<script>")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEqual(t, "<script>", w.Body.String())
}

func TestRealIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{name: "cloudflare wins", headers: map[string]string{"CF-Connecting-IP": "203.0.113.7", "X-Forwarded-For": "198.51.100.1"}, want: "203.0.113.7"},
		{name: "left-most forwarded", headers: map[string]string{"X-Forwarded-For": "198.51.100.1, 10.0.0.1"}, want: "198.51.100.1"},
		{name: "garbage falls back", headers: map[string]string{"CF-Connecting-IP": "nope"}, want: "192.0.2.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(RealIP())
			r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("real_ip")) })

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "192.0.2.1:1234"
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Body.String())
		})
	}
}

func TestKeyFuncs(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/features", nil)
	c.Set("real_ip", "10.1.2.3")

	assert.Equal(t, "rl:ip:10.1.2.3", KeyByIP()(c))
	assert.Equal(t, "rl:path:/api/features:ip:10.1.2.3", KeyByIPAndPath()(c))
	assert.Equal(t, "rl:account:anon:ip:10.1.2.3", KeyByAccountID()(c))
	c.Set(CtxAccountID, "acc-1")
	assert.Equal(t, "rl:account:acc-1", KeyByAccountID()(c))

	assert.True(t, AllowPrivateIP()(c))
	c.Set("real_ip", "203.0.113.9")
	assert.False(t, AllowPrivateIP()(c))
}

func TestRateLimit_DisabledWithoutRedis(t *testing.T) {
	r := gin.New()
	r.GET("/", RateLimit(nil, 1, time.Minute, KeyByIP(), nil), func(c *gin.Context) { c.Status(http.StatusOK) })
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
	assert.Equal(t, 0, remaining(5, 7))
	assert.Equal(t, 3, remaining(5, 2))
}

func TestAuth(t *testing.T) {
	jwt := helpers.NewJWTManager("a-secret", "r-secret", time.Minute, time.Hour)
	sessions := memSessions{"acc-1": {AccountID: "acc-1", Email: "ada@example.com", Scope: "user", SID: "sid-1"}}

	r := gin.New()
	r.GET("/me", Auth(sessions, jwt), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(CtxAccountID)+"|"+c.GetString(CtxAccountScope))
	})

	current, _, err := jwt.GenerateAccessToken("acc-1", "sid-1")
	require.NoError(t, err)
	stale, _, err := jwt.GenerateAccessToken("acc-1", "sid-0")
	require.NoError(t, err)
	refresh, _, err := jwt.GenerateRefreshToken("acc-1", "sid-1")
	require.NoError(t, err)

	tests := []struct {
		name   string
		setup  func(r *http.Request)
		status int
		body   string
	}{
		{name: "no token", setup: func(*http.Request) {}, status: http.StatusUnauthorized},
		{name: "cookie", setup: func(r *http.Request) { r.AddCookie(&http.Cookie{Name: helpers.AccessCookie, Value: current}) }, status: http.StatusOK, body: "acc-1|user"},
		{name: "bearer", setup: func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+current) }, status: http.StatusOK, body: "acc-1|user"},
		{name: "rotated session", setup: func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+stale) }, status: http.StatusUnauthorized},
		{name: "refresh token is not an access token", setup: func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+refresh) }, status: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			tt.setup(req)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, w.Body.String())
			}
		})
	}
}
