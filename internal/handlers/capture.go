package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"streetart-capture/internal/camera"
	"streetart-capture/internal/models"
)

// frameFieldNames are accepted multipart field names for client frames.
var frameFieldNames = []string{"image", "photo", "frame", "file"}

// Capture godoc
// @Summary     Capture a still from the server camera
// @Description Snapshots the camera, compresses the frame (max 1 MB, 1920 px) and stores it as the form's image.
// @Tags        capture
// @Produce     json
// @Success     200 {object} models.CaptureResponse
// @Failure     409 {object} models.ErrorResponse
// @Failure     422 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /capture [post]
func (h *FormHandler) Capture(c *gin.Context) {
	artifact, err := h.capturer.Capture(c.Request.Context())
	if err != nil {
		captureError(c, err)
		return
	}
	c.JSON(http.StatusOK, captureResponse(artifact))
}

// CaptureFrame godoc
// @Summary     Submit a frame captured by the client camera
// @Tags        capture
// @Accept      multipart/form-data
// @Produce     json
// @Param       image formData file true "Camera frame (JPEG or PNG)"
// @Success     200 {object} models.CaptureResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Failure     422 {object} models.ErrorResponse
// @Router      /capture/frame [post]
func (h *FormHandler) CaptureFrame(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to parse multipart form",
			Message: err.Error(),
		})
		return
	}

	var file *multipart.FileHeader
	for _, name := range frameFieldNames {
		if f := c.Request.MultipartForm.File[name]; len(f) > 0 {
			file = f[0]
			break
		}
	}
	if file == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "no frame uploaded",
			Message: fmt.Sprintf("please provide the frame in one of these fields: %v", frameFieldNames),
		})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to open frame", Message: err.Error()})
		return
	}
	data, err := io.ReadAll(src)
	src.Close()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to read frame", Message: err.Error()})
		return
	}

	artifact, err := h.capturer.CaptureImage(c.Request.Context(), data)
	if err != nil {
		captureError(c, err)
		return
	}
	c.JSON(http.StatusOK, captureResponse(artifact))
}

func captureError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, camera.ErrCaptureInProgress):
		c.JSON(http.StatusConflict, models.ErrorResponse{Error: "capture already in progress"})
	case errors.Is(err, camera.ErrNoStream):
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "camera not available", Message: err.Error()})
	default:
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{Error: "capture dropped", Message: err.Error()})
	}
}

func captureResponse(a *models.Artifact) models.CaptureResponse {
	return models.CaptureResponse{
		Filename:   a.Name,
		Size:       a.Size(),
		Width:      a.Width,
		Height:     a.Height,
		CapturedAt: a.CapturedAt,
	}
}
