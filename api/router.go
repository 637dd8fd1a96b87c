package api

import (
	"github.com/gin-gonic/gin"
	"github.com/use-agent/zoroscrape/api/handler"
	"github.com/use-agent/zoroscrape/api/middleware"
	"github.com/use-agent/zoroscrape/config"
	"github.com/use-agent/zoroscrape/scraper"
)

// NewRouter creates a configured Gin engine with all routes and middleware.
//
// Middleware chain:
//
//	Global:  Recovery → RequestLogger
func NewRouter(sc *scraper.Scraper, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	r.GET("/info", handler.Info())
	r.GET("/status", handler.Status())

	zoro := r.Group("/zoro")
	zoro.GET("/:name", handler.Search(sc, cfg.API))
	zoro.GET("/info/:animeId", handler.AnimeInfo(sc, cfg.API))

	return r
}
