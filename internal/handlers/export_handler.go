package handlers

import (
	"net/http"

	"github.com/farellandr/hostspot/internal/helpers"
	"github.com/gin-gonic/gin"
)

// Export serves every category, host and listing in one document. Listings carry the
// host's display name as host_name.
func (h *Handler) Export(c *gin.Context) {
	data, err := h.export.Export(c.Request.Context())
	if err != nil {
		helpers.RespondWithAppError(c, h.logger, err)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

func (h *Handler) Health(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		h.logger.WithError(err).Error("health check failed")
		helpers.RespondWithError(c, http.StatusServiceUnavailable, "UNAVAILABLE", "Database unreachable.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
