package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"miagenda/utils"
)

// HealthHandler handles GET /health.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Mongo || !status.Redis {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
