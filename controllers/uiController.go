package controllers

import (
	"ChronicStable/database"
	"net/http"

	_ "embed"

	"github.com/gin-gonic/gin"
)

//go:embed index.html
var indexHTML []byte

// uiHandler serves the single-page doctor UI.
func uiHandler(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}

// healthzHandler pings Postgres and Redis and reports the result.
func healthzHandler(c *gin.Context) {
	if err := database.Ping(c); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down", "error": err.Error()})
		return
	}
	if err := database.PingRedis(c); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// SetupRootRoutes sets up the UI page and the health endpoint.
func SetupRootRoutes(router *gin.Engine) {
	router.GET("/", uiHandler)
	router.GET("/healthz", healthzHandler)
}
