package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/use-agent/zoroscrape/config"
	"github.com/use-agent/zoroscrape/models"
)

// fallbackPayload is the body legacy clients expect when the site did not
// answer with a 2xx.
const fallbackPayload = "Something went wrong!"

// respondError maps a ScrapeError to the correct HTTP status code and writes
// a structured JSON error response.
func respondError(c *gin.Context, cfg config.APIConfig, err error) {
	scrapeErr := models.AsScrapeError(err)
	_ = c.Error(err)

	if cfg.LegacyErrors && scrapeErr.Code == models.ErrCodeUpstreamStatus {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(fallbackPayload))
		return
	}

	c.JSON(mapErrorToStatus(scrapeErr), models.ErrorResponse{
		Error: scrapeErr.ToDetail(),
	})
}

// mapErrorToStatus translates error codes to HTTP status codes.
func mapErrorToStatus(e *models.ScrapeError) int {
	switch e.Code {
	case models.ErrCodeTimeout:
		return http.StatusGatewayTimeout // 504
	case models.ErrCodeFetchFailed, models.ErrCodeExtraction:
		return http.StatusBadGateway // 502
	case models.ErrCodeUpstreamStatus:
		if e.UpstreamStatus == http.StatusNotFound {
			return http.StatusNotFound // 404
		}
		return http.StatusBadGateway // 502
	case models.ErrCodeInvalidInput:
		return http.StatusBadRequest // 400
	default:
		return http.StatusInternalServerError // 500
	}
}
