package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"streetart-capture/internal/camera"
	"streetart-capture/internal/models"
)

// HealthHandler godoc
// @Summary     Health check
// @Description Returns the health status of the API and whether a camera stream is held
// @Tags        health
// @Produce     json
// @Success     200 {object} models.HealthResponse
// @Router      /health [get]
func HealthHandler(capturer *camera.Capturer) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := models.HealthResponse{
			Status: "ok",
			Camera: "unavailable",
		}
		if capturer != nil && capturer.Ready() {
			response.Camera = "ready"
		}
		c.JSON(http.StatusOK, response)
	}
}
