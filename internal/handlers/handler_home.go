package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// registerHomeRoutes mounts the liveness probe.
func registerHomeRoutes(rg *gin.Engine) {
	rg.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Personal Manager APIs working..!")
	})
}
