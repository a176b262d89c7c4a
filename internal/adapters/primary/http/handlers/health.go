package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health reports whether the content store answers.
func (h *Handler) Health(c *gin.Context) {
	if !h.contentSvc.IsAvailable(c.Request.Context()) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": "content store unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
