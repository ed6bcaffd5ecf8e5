package api

import (
	"net/http"

	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/version"
	"github.com/gin-gonic/gin"
)

// Version returns build and VCS metadata injected at build time.
func Version(c *gin.Context) {
	c.JSON(http.StatusOK, version.Get())
}
