package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/incident_map_dashboard/internal/dashboard"
)

// @Summary Dashboard markers
// @Description Marker state for each location (none, quiet, severe, recent) with incidents newest first
// @Tags Dashboard
// @Produce json
// @Success 200 {array} dashboard.MarkerView
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/dashboard/markers [get]
func (h *Handler) dashboardMarkers(c *gin.Context) {
	log := h.logger.WithField("method", "dashboardMarkers")

	locations, err := h.locationService.ListLocations(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list locations from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, dashboard.BuildMarkers(locations, time.Now()))
}

// @Summary Dashboard statistics
// @Description Total incidents, incidents in the last 7 days, breakdown by severity and top 3 locations
// @Tags Dashboard
// @Produce json
// @Success 200 {object} StatsResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/dashboard/stats [get]
func (h *Handler) dashboardStats(c *gin.Context) {
	log := h.logger.WithField("method", "dashboardStats")

	stats, err := h.statsService.IncidentStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get incident stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, StatsToResponse(stats))
}

// dashboardPage отдает страницу карты
func (h *Handler) dashboardPage(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	err := dashboard.RenderPage(c.Writer, dashboard.PageConfig{
		MapTilesToken: h.cfg.MapTilesToken,
		PollInterval:  h.cfg.DashboardPollInterval,
	})
	if err != nil {
		h.logger.WithError(err).Error("Failed to render dashboard page")
	}
}
