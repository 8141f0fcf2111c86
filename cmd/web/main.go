package main

import (
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/candebarcelo/New-Zealand-Walks-Api/internal/web"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()

	_ = godotenv.Load()

	apiBaseURL := os.Getenv("API_BASE_URL")
	if apiBaseURL == "" {
		apiBaseURL = "http://localhost:8080"
	}
	port := os.Getenv("WEB_PORT")
	if port == "" {
		port = "8081"
	}

	server := web.NewServer(web.NewClient(apiBaseURL), logger)

	httpServer := &http.Server{
		Addr:         ":" + port,
		Handler:      server.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	logger.Info().Str("port", port).Str("api", apiBaseURL).Msg("starting web UI")
	if err := httpServer.ListenAndServe(); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
