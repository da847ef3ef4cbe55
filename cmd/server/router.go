package main

import (
	"fmt"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"streetart-capture/docs"
	"streetart-capture/internal/camera"
	"streetart-capture/internal/handlers"
	"streetart-capture/internal/logger"
	"streetart-capture/internal/middleware"
	"streetart-capture/internal/submission"
)

func newRouter(capturer *camera.Capturer, form *submission.Form, alerts *submission.AlertBox) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(logger.Component("http"), 2*time.Second))
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", handlers.HealthHandler(capturer))

	api := router.Group("/api/v1")
	handlers.NewFormHandler(form, capturer, alerts).RegisterRoutes(api)

	return router
}

// configureSwagger points the generated docs at the public host.
func configureSwagger(baseURL string) error {
	u, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Errorf("failed to parse base url: %w", err)
	}
	if u.Host == "" {
		return fmt.Errorf("base url %q has no host", baseURL)
	}

	docs.SwaggerInfo.Host = u.Host
	if u.Scheme == "https" {
		docs.SwaggerInfo.Schemes = []string{"https", "http"}
	} else {
		docs.SwaggerInfo.Schemes = []string{"http", "https"}
	}
	return nil
}
