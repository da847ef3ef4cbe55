package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"streetart-capture/internal/logger"
	"streetart-capture/internal/middleware"
)

func newRouter(buf *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.New(logger.Options{Level: "debug", Format: "json", Writer: buf})

	router := gin.New()
	router.Use(middleware.RequestLogger(log, 0))
	router.GET("/test", func(c *gin.Context) {
		id, _ := c.Get(middleware.RequestIDKey)
		c.JSON(http.StatusOK, gin.H{"request_id": id})
	})
	return router
}

func TestRequestLogger_GeneratesRequestID(t *testing.T) {
	var buf bytes.Buffer
	router := newRouter(&buf)

	req, _ := http.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	id := w.Header().Get(middleware.RequestIDHeader)
	assert.Len(t, id, 36)
	assert.Contains(t, w.Body.String(), id)
	assert.Contains(t, buf.String(), `"path":"/test"`)
	assert.Contains(t, buf.String(), `"status":200`)
}

func TestRequestLogger_KeepsIncomingRequestID(t *testing.T) {
	var buf bytes.Buffer
	router := newRouter(&buf)

	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set(middleware.RequestIDHeader, "kiosk-42")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "kiosk-42", w.Header().Get(middleware.RequestIDHeader))
	assert.Contains(t, buf.String(), `"request_id":"kiosk-42"`)
}
