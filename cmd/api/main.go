package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"bookshelf/internal/config"
	"bookshelf/internal/database"
	"bookshelf/internal/middleware"
	"bookshelf/internal/modules/auth"
	"bookshelf/internal/modules/book"
	"bookshelf/internal/modules/logs"
	"bookshelf/internal/modules/user"
	"bookshelf/internal/pkg/token"
	"bookshelf/internal/repository"
)

func main() {
	_ = godotenv.Load()

	appLog := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		appLog.Fatal().Err(err).Msg("invalid configuration")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		appLog.Fatal().Err(err).Msg("database connection failed")
	}
	if err := database.Migrate(db); err != nil {
		appLog.Fatal().Err(err).Msg("database migration failed")
	}

	userRepo := repository.NewUserRepository(db)
	bookRepo := repository.NewBookRepository(db)
	logRepo := repository.NewLogRepository(db)

	accessCodec := token.NewCodec(cfg.AccessTokenSecret, cfg.AccessTokenTTL)
	refreshCodec := token.NewCodec(cfg.RefreshTokenSecret, cfg.RefreshTokenTTL)

	cookies := auth.CookieConfig{
		Path:     cfg.CookiePath,
		Secure:   cfg.CookieSecure,
		SameSite: cfg.CookieSameSite,
		MaxAge:   cfg.RefreshTokenTTL,
	}

	authService := auth.NewService(userRepo, accessCodec, refreshCodec)
	authHandler := auth.NewHandler(authService, cookies)

	userService := user.NewService(userRepo, authService)
	userHandler := user.NewHandler(userService, cookies)

	bookService := book.NewService(bookRepo)
	bookHandler := book.NewHandler(bookService)

	logService := logs.NewService(logRepo)
	logHandler := logs.NewHandler(logService)

	accessGuard := middleware.RequireAccessToken(accessCodec, userRepo)
	refreshGuard := middleware.RequireRefreshToken(refreshCodec, accessCodec, userRepo)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.RequestLogger(logRepo, appLog))

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterRoutes(v1, refreshGuard)
		userHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(accessGuard)
		{
			bookHandler.RegisterRoutes(protected)
			logHandler.RegisterRoutes(protected)
		}
	}

	appLog.Info().Str("port", cfg.Port).Msg("starting api")
	if err := r.Run(":" + cfg.Port); err != nil {
		appLog.Fatal().Err(err).Msg("server stopped")
	}
}
