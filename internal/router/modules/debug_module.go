package modules

import (
	"expvar"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-ddd-resource-api/internal/container"
	"github.com/oksasatya/go-ddd-resource-api/internal/interface/middleware"
)

type DebugModule struct {
	Auth gin.HandlerFunc
}

func NewDebugModule(auth gin.HandlerFunc) *DebugModule { return &DebugModule{Auth: auth} }

// Register exposes expvar behind a session, unlimited for private networks.
func (m *DebugModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	rg.GET("/debug/vars", m.Auth, rl, gin.WrapH(expvar.Handler()))
}
