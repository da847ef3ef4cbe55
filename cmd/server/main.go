// @title           Street Art Capture API
// @version         1.0.0
// @description     Capture form for street art photos: artist name, device location, camera capture and upload to Supabase Storage with a user_added_art record.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api/v1

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"streetart-capture/internal/camera"
	"streetart-capture/internal/compress"
	"streetart-capture/internal/config"
	"streetart-capture/internal/geo"
	"streetart-capture/internal/logger"
	"streetart-capture/internal/services"
	"streetart-capture/internal/submission"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Get().Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "streetart-server",
	})

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if cfg.BaseURL != "" {
		if err := configureSwagger(cfg.BaseURL); err != nil {
			log.Warn().Err(err).Msg("ignoring invalid BASE_URL for swagger docs")
		}
	}

	uploadService, closeStores, err := services.NewFromConfig(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize remote stores")
	}
	defer closeStores()

	alerts := submission.NewAlertBox(50)
	form := submission.NewForm(uploadService, alerts)

	// Without a fixed position the client reports the browser location.
	var locator geo.Locator
	if cfg.HasFixedLocation() {
		static, err := geo.ParseStatic(cfg.LocationLatitude, cfg.LocationLongitude)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid fixed location")
		}
		locator = static
	}

	var source camera.Source
	if cfg.CameraSource != "" {
		source, err = camera.NewSource(cfg.CameraSource, camera.Facing(cfg.CameraFacing))
		if err != nil {
			log.Fatal().Err(err).Msg("invalid camera source")
		}
	} else {
		log.Info().Msg("no CAMERA_SOURCE set, frames must be pushed by clients")
	}

	capturer := camera.NewCapturer(source, form.SetArtifact,
		camera.WithFacing(camera.Facing(cfg.CameraFacing)),
		camera.WithCompression(compress.Options{
			MaxSizeMB:        cfg.CompressMaxSizeMB,
			MaxWidthOrHeight: cfg.CompressMaxDimension,
		}),
	)
	defer capturer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Camera and location are requested once, independently of each other.
	if source != nil {
		go capturer.Start(ctx)
	}
	if locator != nil {
		go geo.Request(ctx, locator, form)
	}

	router := newRouter(capturer, form, alerts)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server failed")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
