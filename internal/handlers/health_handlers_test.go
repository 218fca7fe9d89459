package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubPinger struct{ err error }

func (p stubPinger) PingContext(context.Context) error { return p.err }

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "up", wantStatus: http.StatusOK},
		{name: "down", err: errors.New("connection refused"), wantStatus: http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/health", NewHealthHandler(stubPinger{err: tt.err}).Health)
			r.NoRoute(NotFound)

			w := doRequest(r, http.MethodGet, "/health", nil)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestNotFound_Envelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.NoRoute(NotFound)

	w := doRequest(r, http.MethodGet, "/api/Nope", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	apiErr := decodeAPIError(t, w)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "/api/Nope")
}
