package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"streetart-capture/internal/models"
	"streetart-capture/internal/submission"
)

// Submit godoc
// @Summary     Upload the captured image and record it
// @Description Uploads the image to storage, then inserts the record with the location and artist name. Requires a captured image and a known location; only one submission runs at a time.
// @Tags        submit
// @Produce     json
// @Success     200 {object} models.SubmitResponse
// @Failure     409 {object} models.ErrorResponse
// @Failure     502 {object} models.ErrorResponse
// @Router      /submit [post]
func (h *FormHandler) Submit(c *gin.Context) {
	record, err := h.form.Submit(c.Request.Context())
	switch {
	case errors.Is(err, submission.ErrNotReady):
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   "submission not ready",
			Message: "an image and a location are required and no upload may be running",
		})
	case err != nil:
		// The cause is logged by the form; clients only get the generic message.
		c.JSON(http.StatusBadGateway, models.ErrorResponse{Error: submission.MessageFailure})
	default:
		c.JSON(http.StatusOK, models.SubmitResponse{
			Status:  "uploaded",
			Message: submission.MessageSuccess,
			Record:  record,
		})
	}
}
