package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/ritmdance/studio/api/v1"
	"github.com/ritmdance/studio/config"
	"github.com/ritmdance/studio/container"
	"github.com/ritmdance/studio/services"
	"github.com/ritmdance/studio/worker"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Configure logging
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	// Initialize container with all dependencies
	c, err := container.NewContainer(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application container")
	}
	defer c.Close()

	if !c.CMS.Configured() {
		log.Warn().Msg("CMS_API_URL is not set, content will be empty and submissions unavailable")
	}

	// Initialize services
	contentService := services.NewContentService(c)
	submissionService := services.NewSubmissionService(c)

	// The refresh worker needs redis; without it reads go straight to the CMS
	var w *worker.Worker
	if c.Redis != nil {
		w, err = worker.NewWorker(c, contentService)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize background worker")
		}

		c.Worker = w

		// Start the worker in a goroutine
		go func() {
			if err := w.Start(); err != nil {
				log.Error().Err(err).Msg("Failed to start background worker")
			}
		}()
	}

	// Set up Echo server
	e := v1.NewServer(c, contentService, submissionService)

	// Start the server
	go func() {
		log.Info().Msgf("Starting the server on :%d", cfg.Port)
		if err := e.Start(fmt.Sprintf(":%d", cfg.Port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server stopped unexpectedly")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down the server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Stop the worker gracefully
	if w != nil {
		if err := w.Stop(); err != nil {
			log.Error().Err(err).Msg("Failed to gracefully stop background worker")
		}
	}

	// Stop the server gracefully
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to gracefully shutdown server")
	}
}
