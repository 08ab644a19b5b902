package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/f0xyris/psycho-therapy-sub001/internal/cache"
	"github.com/f0xyris/psycho-therapy-sub001/internal/config"
	"github.com/f0xyris/psycho-therapy-sub001/internal/database"
	"github.com/f0xyris/psycho-therapy-sub001/internal/logger"
	"github.com/f0xyris/psycho-therapy-sub001/internal/middleware"
	"github.com/f0xyris/psycho-therapy-sub001/internal/modules/appointments"
	"github.com/f0xyris/psycho-therapy-sub001/internal/modules/auth"
	"github.com/f0xyris/psycho-therapy-sub001/internal/modules/catalog"
	"github.com/f0xyris/psycho-therapy-sub001/internal/modules/reviews"
	"github.com/f0xyris/psycho-therapy-sub001/internal/modules/users"
	jwtsvc "github.com/f0xyris/psycho-therapy-sub001/internal/pkg/jwt"
	"github.com/f0xyris/psycho-therapy-sub001/internal/pkg/response"
	"github.com/f0xyris/psycho-therapy-sub001/internal/repository"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("database connection failed")
	}

	if cfg.AutoMigrate {
		if err := repository.AutoMigrate(db); err != nil {
			log.WithError(err).Fatal("migration failed")
		}
	}

	var listCache cache.Cache
	if cfg.RedisAddr != "" {
		rc, err := cache.Connect(context.Background(), cfg.RedisAddr)
		if err != nil {
			log.WithError(err).Warn("redis unavailable, catalog cache disabled")
		} else {
			listCache = rc
		}
	}

	userRepo := repository.NewUserRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	var google *auth.GoogleOAuth
	if cfg.GoogleOAuthEnabled() {
		google = auth.NewGoogleOAuth(
			cfg.GoogleClientID,
			cfg.GoogleClientSecret,
			cfg.PublicBaseURL+"/api/auth/google/callback",
		)
	} else {
		log.Warn("google oauth not configured, /auth/google routes disabled")
	}

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService, google, cfg.PublicBaseURL, cfg.JWTTTL, log)

	usersService := users.NewService(userRepo)
	usersHandler := users.NewHandler(usersService, userRepo, log)

	reviewService := reviews.NewService(reviewRepo)
	reviewHandler := reviews.NewHandler(reviewService, userRepo, log)

	catalogService := catalog.NewService(courseRepo, serviceRepo, listCache)
	catalogHandler := catalog.NewHandler(catalogService, log)

	appointmentService := appointments.NewService(appointmentRepo)
	appointmentHandler := appointments.NewHandler(appointmentService, userRepo, log)

	r := gin.New()
	r.Use(
		middleware.RequestLogger(log),
		gin.CustomRecovery(func(c *gin.Context, _ any) {
			response.Error(c, http.StatusInternalServerError, "Internal server error")
		}),
		middleware.CORS(),
	)

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		response.Error(c, http.StatusMethodNotAllowed, "Method not allowed")
	})
	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Not found")
	})

	api := r.Group("/api")
	{
		// public
		authHandler.RegisterPublicRoutes(api)
		catalogHandler.RegisterPublicRoutes(api)

		// public with identity-dependent responses
		semiPublic := api.Group("/")
		semiPublic.Use(middleware.OptionalJWTAuth(j))
		reviewHandler.RegisterPublicRoutes(semiPublic)

		// authenticated
		protected := api.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			usersHandler.RegisterProtectedRoutes(protected)
			reviewHandler.RegisterProtectedRoutes(protected)
			appointmentHandler.RegisterProtectedRoutes(protected)
		}

		// admin-gated
		admin := api.Group("/")
		admin.Use(middleware.JWTAuth(j), middleware.RequireAdmin(userRepo))
		{
			usersHandler.RegisterAdminRoutes(admin)
			reviewHandler.RegisterAdminRoutes(admin)
			catalogHandler.RegisterAdminRoutes(admin)
			appointmentHandler.RegisterAdminRoutes(admin)
		}
	}

	log.WithField("port", cfg.Port).Info("starting api server")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
