package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-ddd-resource-api/internal/container"
	handlers "github.com/oksasatya/go-ddd-resource-api/internal/interface/http"
	"github.com/oksasatya/go-ddd-resource-api/internal/interface/middleware"
)

type WorkModule struct {
	Handler *handlers.WorkHandler
	Auth    gin.HandlerFunc
}

func NewWorkModule(h *handlers.WorkHandler, auth gin.HandlerFunc) *WorkModule {
	return &WorkModule{Handler: h, Auth: auth}
}

func (m *WorkModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(m.Auth, middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByAccountID(), nil))
	{
		auth.POST("/profiles/:id/works", m.Handler.Create)
		auth.GET("/profiles/:id/works", m.Handler.ListByProfile)
		auth.GET("/works/:id", m.Handler.Get)
		auth.PUT("/works/:id", m.Handler.Update)
		auth.DELETE("/works/:id", m.Handler.Delete)
	}
}
