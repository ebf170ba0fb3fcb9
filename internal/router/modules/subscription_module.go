package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-ddd-resource-api/internal/container"
	handlers "github.com/oksasatya/go-ddd-resource-api/internal/interface/http"
	"github.com/oksasatya/go-ddd-resource-api/internal/interface/middleware"
)

type SubscriptionModule struct {
	Handler *handlers.SubscriptionHandler
	Auth    gin.HandlerFunc
}

func NewSubscriptionModule(h *handlers.SubscriptionHandler, auth gin.HandlerFunc) *SubscriptionModule {
	return &SubscriptionModule{Handler: h, Auth: auth}
}

func (m *SubscriptionModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(m.Auth, middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByAccountID(), nil))
	{
		auth.POST("/subscriptions", m.Handler.Create)
		auth.GET("/accounts/:id/subscriptions", m.Handler.ListByAccount)
		auth.GET("/subscriptions/:id", m.Handler.Get)
		auth.PUT("/subscriptions/:id", m.Handler.UpdateLevel)
		auth.DELETE("/subscriptions/:id", m.Handler.Delete)
	}
}
