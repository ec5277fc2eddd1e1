package app

import (
	"github.com/wortkiste/core/internal/middleware"
	"github.com/wortkiste/core/internal/modules/ai"
	"github.com/wortkiste/core/internal/modules/alternatives"
	"github.com/wortkiste/core/internal/modules/auth"
	"github.com/wortkiste/core/internal/modules/completion"
	"github.com/wortkiste/core/internal/modules/entry"
	"github.com/wortkiste/core/internal/modules/health"
	"github.com/wortkiste/core/internal/modules/review"
	"github.com/wortkiste/core/internal/pkg/response"
)

func (a *App) registerRoutes() {
	r := a.router
	db := a.db
	authMW := middleware.Auth(db)

	r.NoRoute(response.NotFound)
	r.NoMethod(response.MethodNotAllowed)

	if a.redis != nil {
		r.Use(middleware.RateLimit(a.redis.Raw()))
		r.Use(middleware.Idempotence(a.redis.Raw()))
	}

	// Shared services
	oracle := ai.NewService(a.cfg.AI)
	altStore := alternatives.NewStore(db)

	api := r.Group("/api/v1")
	api.Use(middleware.OptionalAuth(db))

	health.NewHandler(db, oracle).RegisterRoutes(api)
	auth.NewHandler(auth.NewService(db, a.cfg.AdminPassword)).RegisterRoutes(api, authMW)
	entry.NewHandler(entry.NewService(db, altStore)).RegisterRoutes(api, authMW)
	review.NewHandler(review.NewService(oracle)).RegisterRoutes(api, authMW)
	completion.NewHandler(completion.NewService(oracle)).RegisterRoutes(api, authMW)
	alternatives.NewHandler(alternatives.NewService(oracle, altStore), db).RegisterRoutes(api, authMW)
}
