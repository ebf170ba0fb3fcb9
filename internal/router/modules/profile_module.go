package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-ddd-resource-api/internal/container"
	handlers "github.com/oksasatya/go-ddd-resource-api/internal/interface/http"
	"github.com/oksasatya/go-ddd-resource-api/internal/interface/middleware"
)

type ProfileModule struct {
	Handler *handlers.ProfileHandler
	Auth    gin.HandlerFunc
}

func NewProfileModule(h *handlers.ProfileHandler, auth gin.HandlerFunc) *ProfileModule {
	return &ProfileModule{Handler: h, Auth: auth}
}

func (m *ProfileModule) Register(rg *gin.RouterGroup) {
	rdb := container.GetRedis()
	auth := rg.Group("/")
	auth.Use(m.Auth, middleware.RateLimit(rdb, 120, time.Minute, middleware.KeyByAccountID(), nil))
	{
		auth.POST("/profiles", m.Handler.Create)
		auth.GET("/profiles/search", middleware.RateLimit(rdb, 30, time.Minute, middleware.KeyByAccountID(), nil), m.Handler.Search)
		auth.GET("/profiles/:id", m.Handler.Get)
		auth.PUT("/profiles/:id", m.Handler.Update)
		auth.DELETE("/profiles/:id", m.Handler.Delete)
		auth.POST("/profiles/:id/avatar", middleware.RateLimit(rdb, 10, time.Minute, middleware.KeyByAccountID(), nil), m.Handler.UploadAvatar)
		auth.GET("/accounts/:id/profiles", m.Handler.ListByAccount)
	}
}
