package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/use-agent/zoroscrape/config"
	"github.com/use-agent/zoroscrape/models"
	"github.com/use-agent/zoroscrape/scraper"
)

// Search returns a handler for GET /zoro/:name.
func Search(sc *scraper.Scraper, cfg config.APIConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.SearchRequest
		if err := c.ShouldBindUri(&req); err != nil {
			respondError(c, cfg, models.NewScrapeError(models.ErrCodeInvalidInput, err.Error(), err))
			return
		}

		resp, err := sc.Search(c.Request.Context(), req.Name)
		if err != nil {
			respondError(c, cfg, err)
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

// AnimeInfo returns a handler for GET /zoro/info/:animeId.
func AnimeInfo(sc *scraper.Scraper, cfg config.APIConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.InfoRequest
		if err := c.ShouldBindUri(&req); err != nil {
			respondError(c, cfg, models.NewScrapeError(models.ErrCodeInvalidInput, err.Error(), err))
			return
		}
		if err := c.ShouldBindQuery(&req); err != nil {
			respondError(c, cfg, models.NewScrapeError(models.ErrCodeInvalidInput, err.Error(), err))
			return
		}
		req.Defaults()

		detail, err := sc.Info(c.Request.Context(), req.AnimeID, req.SynopsisFormat)
		if err != nil {
			respondError(c, cfg, err)
			return
		}

		c.JSON(http.StatusOK, detail)
	}
}
