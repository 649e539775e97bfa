package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      Dashboard statistics
// @Tags         estadisticas
// @Produce      json
// @Success      200  {object}  models.DashboardStats
// @Failure      403  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/estadisticas [get]
// @Security     BearerAuth
func (h *Handler) getStats(c *gin.Context) {
	stats, err := h.services.Stats.Dashboard(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errServer, "estadisticas_failed", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
