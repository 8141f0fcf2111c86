package main

import (
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/candebarcelo/New-Zealand-Walks-Api/internal/auth"
	"github.com/candebarcelo/New-Zealand-Walks-Api/internal/boundary"
	"github.com/candebarcelo/New-Zealand-Walks-Api/internal/config"
	"github.com/candebarcelo/New-Zealand-Walks-Api/internal/database"
	"github.com/candebarcelo/New-Zealand-Walks-Api/internal/handlers"
	"github.com/candebarcelo/New-Zealand-Walks-Api/internal/repository"
	"github.com/candebarcelo/New-Zealand-Walks-Api/internal/service"
	"github.com/candebarcelo/New-Zealand-Walks-Api/models"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()

	// A .env file is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("failed to migrate database")
	}
	if err := database.Seed(db); err != nil {
		logger.Fatal().Err(err).Msg("failed to seed database")
	}

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.JWTExpiry)

	authHandler := handlers.NewAuth(service.NewAuthService(repository.NewUserRepository(db), tokens))
	regions := handlers.NewRegions(repository.NewRegionRepository(db))
	walks := handlers.NewWalks(repository.NewWalkRepository(db))
	difficulties := handlers.NewDifficulties(repository.NewDifficultyRepository(db))
	images := handlers.NewImages(repository.NewLocalImageRepository(db, cfg.ImagesDir))

	eb := func(h boundary.Handler) http.HandlerFunc {
		return boundary.Wrap(logger, h)
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)

	r.Route("/api", func(r chi.Router) {
		r.Use(chimiddleware.Timeout(30 * time.Second))
		r.Use(httprate.Limit(
			100,
			1*time.Minute,
			httprate.WithKeyFuncs(httprate.KeyByIP, httprate.KeyByEndpoint),
		))

		r.Post("/auth/register", eb(authHandler.Register))
		r.Post("/auth/login", eb(authHandler.Login))

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireRole(tokens, models.RoleReader))
			r.Get("/regions", eb(regions.List))
			r.Get("/regions/{id}", eb(regions.Get))
			r.Get("/walks", eb(walks.List))
			r.Get("/walks/{id}", eb(walks.Get))
			r.Get("/difficulties", eb(difficulties.List))
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireRole(tokens, models.RoleWriter))
			r.Post("/regions", eb(regions.Create))
			r.Put("/regions/{id}", eb(regions.Update))
			r.Delete("/regions/{id}", eb(regions.Delete))
			r.Post("/walks", eb(walks.Create))
			r.Put("/walks/{id}", eb(walks.Update))
			r.Delete("/walks/{id}", eb(walks.Delete))
			r.Post("/images/upload", eb(images.Upload))
		})
	})

	// Uploaded images are served read-only straight from the content root.
	r.Handle("/Images/*", http.StripPrefix("/Images/",
		http.FileServer(http.Dir(cfg.ImagesDir))))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	logger.Info().Str("port", cfg.Port).Msg("starting API server")
	if err := server.ListenAndServe(); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
