package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/use-agent/zoroscrape/config"
	"github.com/use-agent/zoroscrape/models"
)

func TestMapErrorToStatus(t *testing.T) {
	tests := []struct {
		name string
		err  *models.ScrapeError
		want int
	}{
		{"timeout", models.NewScrapeError(models.ErrCodeTimeout, "", nil), http.StatusGatewayTimeout},
		{"transport", models.NewScrapeError(models.ErrCodeFetchFailed, "", nil), http.StatusBadGateway},
		{"extraction", models.NewScrapeError(models.ErrCodeExtraction, "", nil), http.StatusBadGateway},
		{"upstream 404", models.NewUpstreamStatusError(404, "u"), http.StatusNotFound},
		{"upstream 403", models.NewUpstreamStatusError(403, "u"), http.StatusBadGateway},
		{"upstream 500", models.NewUpstreamStatusError(500, "u"), http.StatusBadGateway},
		{"invalid input", models.NewScrapeError(models.ErrCodeInvalidInput, "", nil), http.StatusBadRequest},
		{"internal", models.NewScrapeError(models.ErrCodeInternal, "", nil), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mapErrorToStatus(tt.err))
		})
	}
}

func TestRespondError_PlainErrorIsInternal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondError(c, config.APIConfig{}, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":{"code":"INTERNAL_ERROR","message":"boom"}}`, w.Body.String())
}

func TestRespondError_LegacyOnlyAffectsUpstreamStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	legacy := config.APIConfig{LegacyErrors: true}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	respondError(c, legacy, models.NewUpstreamStatusError(500, "https://zoro.to/x"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Something went wrong!", w.Body.String())

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	respondError(c, legacy, models.NewScrapeError(models.ErrCodeTimeout, "upstream timed out", nil))
	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
}
