package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-ddd-resource-api/internal/container"
	handlers "github.com/oksasatya/go-ddd-resource-api/internal/interface/http"
	"github.com/oksasatya/go-ddd-resource-api/internal/interface/middleware"
)

// AccountModule wires registration, session and account routes.
// Public: POST /accounts, POST /login, POST /refresh
// Protected: POST /logout, GET /me, GET|PUT|DELETE /accounts/:id
type AccountModule struct {
	Handler *handlers.AccountHandler
	Auth    gin.HandlerFunc
}

func NewAccountModule(h *handlers.AccountHandler, auth gin.HandlerFunc) *AccountModule {
	return &AccountModule{Handler: h, Auth: auth}
}

func (m *AccountModule) Register(rg *gin.RouterGroup) {
	rdb := container.GetRedis()
	registerLimiter := middleware.RateLimit(rdb, 5, time.Minute, middleware.KeyByIP(), nil)
	loginLimiter := middleware.RateLimit(rdb, 10, time.Minute, middleware.KeyByIP(), nil)
	refreshLimiter := middleware.RateLimit(rdb, 60, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/accounts", registerLimiter, m.Handler.Register)
	rg.POST("/login", loginLimiter, m.Handler.Login)
	rg.POST("/refresh", refreshLimiter, m.Handler.Refresh)

	auth := rg.Group("/")
	auth.Use(m.Auth, middleware.RateLimit(rdb, 120, time.Minute, middleware.KeyByAccountID(), nil))
	{
		auth.POST("/logout", m.Handler.Logout)
		auth.GET("/me", m.Handler.Me)
		auth.GET("/accounts/:id", m.Handler.Get)
		auth.PUT("/accounts/:id", m.Handler.Update)
		auth.DELETE("/accounts/:id", m.Handler.Delete)
	}
}
