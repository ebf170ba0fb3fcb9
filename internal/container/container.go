// Package container shares the clients built at startup with the router so
// modules can wire themselves without threading every dependency through.
package container

import (
	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-resource-api/config"
	"github.com/oksasatya/go-ddd-resource-api/pkg/helpers"
)

// Backends are the optional integrations. A nil field means the matching
// feature (avatars, profile search, email jobs) is disabled.
type Backends struct {
	Storage *storage.Client
	Search  *elasticsearch.Client
	Mail    *helpers.RabbitPublisher
}

// Enabled names the wired backends, for startup logs.
func (b Backends) Enabled() []string {
	out := []string{}
	if b.Storage != nil {
		out = append(out, "gcs")
	}
	if b.Search != nil {
		out = append(out, "elasticsearch")
	}
	if b.Mail != nil {
		out = append(out, "rabbitmq")
	}
	return out
}

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client
	jwtManager  *helpers.JWTManager
	backends    Backends
)

func SetConfig(c *config.Config) { cfg = c }
func GetConfig() *config.Config  { return cfg }
func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger  { return logger }
func SetPGPool(p *pgxpool.Pool)  { pgPool = p }
func GetPGPool() *pgxpool.Pool   { return pgPool }
func SetRedis(r *redis.Client)   { redisClient = r }
func GetRedis() *redis.Client    { return redisClient }
func SetBackends(b Backends)     { backends = b }
func GetBackends() Backends      { return backends }

func SetJWT(m *helpers.JWTManager) { jwtManager = m }

// GetJWT falls back to the last manager constructed when none was set.
func GetJWT() *helpers.JWTManager {
	if jwtManager != nil {
		return jwtManager
	}
	return helpers.DefaultJWT()
}
