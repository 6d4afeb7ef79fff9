package handlers

import (
	"net/http"

	"voyago/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GET /api/cities
func Cities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cities": services.Cities})
}
