package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"streetart-capture/internal/camera"
	"streetart-capture/internal/models"
	"streetart-capture/internal/submission"
)

type FormHandler struct {
	form     *submission.Form
	capturer *camera.Capturer
	alerts   *submission.AlertBox
}

func NewFormHandler(form *submission.Form, capturer *camera.Capturer, alerts *submission.AlertBox) *FormHandler {
	return &FormHandler{
		form:     form,
		capturer: capturer,
		alerts:   alerts,
	}
}

// RegisterRoutes mounts the form API on api.
func (h *FormHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/form", h.GetForm)
	api.PUT("/form/artist", h.SetArtist)
	api.PUT("/form/location", h.SetLocation)
	api.POST("/form/location/error", h.LocationError)
	api.GET("/form/artifact", h.GetArtifact)

	api.POST("/capture", h.Capture)
	api.POST("/capture/frame", h.CaptureFrame)

	api.POST("/submit", h.Submit)
	api.GET("/alerts", h.GetAlerts)
}

// GetForm godoc
// @Summary  Current form view
// @Tags     form
// @Produce  json
// @Success  200 {object} submission.View
// @Router   /form [get]
func (h *FormHandler) GetForm(c *gin.Context) {
	c.JSON(http.StatusOK, h.form.View())
}

// SetArtist godoc
// @Summary  Update the artist name (may be empty)
// @Tags     form
// @Accept   json
// @Produce  json
// @Param    body body models.ArtistRequest true "Artist name"
// @Success  200 {object} submission.View
// @Failure  400 {object} models.ErrorResponse
// @Router   /form/artist [put]
func (h *FormHandler) SetArtist(c *gin.Context) {
	var req models.ArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	h.form.SetArtistName(req.ArtistName)
	c.JSON(http.StatusOK, h.form.View())
}

// SetLocation godoc
// @Summary  Report the device geolocation (accepted once per session)
// @Tags     form
// @Accept   json
// @Produce  json
// @Param    body body models.LocationRequest true "Position in degrees"
// @Success  200 {object} submission.View
// @Failure  400 {object} models.ErrorResponse
// @Failure  409 {object} models.ErrorResponse
// @Router   /form/location [put]
func (h *FormHandler) SetLocation(c *gin.Context) {
	var req models.LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid location",
			Message: err.Error(),
		})
		return
	}

	err := h.form.SetLocation(models.GeoPosition{Latitude: *req.Latitude, Longitude: *req.Longitude})
	switch {
	case errors.Is(err, submission.ErrLocationAlreadySet), errors.Is(err, submission.ErrLocationUnavailable):
		c.JSON(http.StatusConflict, models.ErrorResponse{Error: "location already resolved", Message: err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid location", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.form.View())
}

// LocationError godoc
// @Summary  Report that geolocation failed or was denied
// @Tags     form
// @Accept   json
// @Produce  json
// @Param    body body models.LocationErrorRequest false "Reason"
// @Success  200 {object} submission.View
// @Router   /form/location/error [post]
func (h *FormHandler) LocationError(c *gin.Context) {
	var req models.LocationErrorRequest
	_ = c.ShouldBindJSON(&req)
	if req.Message == "" {
		req.Message = "geolocation unavailable"
	}

	h.form.LocationFailed(errors.New(req.Message))
	c.JSON(http.StatusOK, h.form.View())
}

// GetArtifact godoc
// @Summary  Preview of the captured image
// @Tags     form
// @Produce  image/jpeg
// @Success  200 {file} binary
// @Failure  404 {object} models.ErrorResponse
// @Router   /form/artifact [get]
func (h *FormHandler) GetArtifact(c *gin.Context) {
	artifact := h.form.State().Artifact
	if artifact == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "no image captured"})
		return
	}
	c.Data(http.StatusOK, artifact.ContentType, artifact.Data)
}

// GetAlerts godoc
// @Summary  Recent user-facing alerts, newest first
// @Tags     form
// @Produce  json
// @Success  200 {object} models.AlertsResponse
// @Router   /alerts [get]
func (h *FormHandler) GetAlerts(c *gin.Context) {
	recent := h.alerts.Recent()
	resp := models.AlertsResponse{Alerts: make([]models.AlertResponse, 0, len(recent))}
	for _, a := range recent {
		resp.Alerts = append(resp.Alerts, models.AlertResponse{
			Level:   string(a.Level),
			Message: a.Message,
			At:      a.At,
		})
	}
	c.JSON(http.StatusOK, resp)
}
