package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-ddd-resource-api/internal/container"
	handlers "github.com/oksasatya/go-ddd-resource-api/internal/interface/http"
	"github.com/oksasatya/go-ddd-resource-api/internal/interface/middleware"
)

// FeatureModule exposes the catalog publicly and its writes to sessions.
type FeatureModule struct {
	Handler *handlers.FeatureHandler
	Auth    gin.HandlerFunc
}

func NewFeatureModule(h *handlers.FeatureHandler, auth gin.HandlerFunc) *FeatureModule {
	return &FeatureModule{Handler: h, Auth: auth}
}

func (m *FeatureModule) Register(rg *gin.RouterGroup) {
	rdb := container.GetRedis()
	readLimiter := middleware.RateLimit(rdb, 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	rg.GET("/features", readLimiter, m.Handler.List)
	rg.GET("/features/:id", readLimiter, m.Handler.Get)

	auth := rg.Group("/")
	auth.Use(m.Auth, middleware.RateLimit(rdb, 60, time.Minute, middleware.KeyByAccountID(), nil))
	{
		auth.POST("/features", m.Handler.Create)
		auth.PUT("/features/:id", m.Handler.Update)
		auth.DELETE("/features/:id", m.Handler.Delete)
	}
}
