package router

import (
	"github.com/oksasatya/go-ddd-resource-api/internal/application"
	"github.com/oksasatya/go-ddd-resource-api/internal/container"
	"github.com/oksasatya/go-ddd-resource-api/internal/infrastructure/cache"
	pginfra "github.com/oksasatya/go-ddd-resource-api/internal/infrastructure/postgres"
	"github.com/oksasatya/go-ddd-resource-api/internal/infrastructure/search"
	gcsinfra "github.com/oksasatya/go-ddd-resource-api/internal/infrastructure/storage"
	handlers "github.com/oksasatya/go-ddd-resource-api/internal/interface/http"
	"github.com/oksasatya/go-ddd-resource-api/internal/interface/middleware"
	"github.com/oksasatya/go-ddd-resource-api/internal/router/modules"
)

// Services groups the application services built from the container.
type Services struct {
	Accounts      *application.AccountService
	Profiles      *application.ProfileService
	Features      *application.FeatureService
	Subscriptions *application.SubscriptionService
	Works         *application.WorkService
	Sessions      application.SessionStore
}

// BuildServices wires repositories and adapters from container singletons.
// Optional backends left unset in the container are simply not attached.
func BuildServices() Services {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()
	rdb := container.GetRedis()

	accounts := pginfra.NewAccountRepository(pool)
	profiles := pginfra.NewProfileRepository(pool)
	features := pginfra.NewFeatureRepository(pool)
	subscriptions := pginfra.NewSubscriptionRepository(pool)
	works := pginfra.NewWorkRepository(pool)

	b := container.GetBackends()
	var pub application.Publisher
	if b.Mail != nil && cfg.MailSendEnabled {
		pub = b.Mail
	}
	var index application.ProfileIndex
	if b.Search != nil && cfg.ESProfilesIndex != "" {
		index = search.NewProfileIndex(b.Search, cfg.ESProfilesIndex)
	}
	var avatars application.AvatarStore
	if b.Storage != nil && cfg.GCSBucket != "" {
		avatars = gcsinfra.NewGCSAvatarStore(b.Storage, cfg.GCSBucket)
	}
	var featureCache application.FeatureCache
	var sessions application.SessionStore
	if rdb != nil {
		featureCache = cache.NewFeatureCache(rdb, cfg.FeatureCacheTTL)
		sessions = cache.NewSessionStore(rdb)
	}

	return Services{
		Accounts:      application.NewAccountService(accounts, container.GetJWT(), sessions, pub, logger),
		Profiles:      application.NewProfileService(profiles, accounts, index, avatars, logger),
		Features:      application.NewFeatureService(features, featureCache, logger),
		Subscriptions: application.NewSubscriptionService(subscriptions, accounts, features, pub, logger),
		Works:         application.NewWorkService(works, profiles),
		Sessions:      sessions,
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	svc := BuildServices()
	auth := middleware.Auth(svc.Sessions, container.GetJWT())

	r.Add(modules.NewAccountModule(handlers.NewAccountHandler(svc.Accounts, logger, cfg.CookieDomain, cfg.CookieSecure), auth))
	r.Add(modules.NewProfileModule(handlers.NewProfileHandler(svc.Profiles, logger), auth))
	r.Add(modules.NewFeatureModule(handlers.NewFeatureHandler(svc.Features, logger), auth))
	r.Add(modules.NewSubscriptionModule(handlers.NewSubscriptionHandler(svc.Subscriptions, logger), auth))
	r.Add(modules.NewWorkModule(handlers.NewWorkHandler(svc.Works, logger), auth))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(auth))
	}
}
