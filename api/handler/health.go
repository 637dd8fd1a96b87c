package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/use-agent/zoroscrape/models"
)

const infoText = "This is definitely a string with important info"

// Info returns a handler for GET /info.
func Info() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, infoText)
	}
}

// Status returns a handler for GET /status.
func Status() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.StatusResponse{Status: "UP"})
	}
}
