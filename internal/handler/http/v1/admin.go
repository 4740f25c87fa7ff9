package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Add example incidents
// @Description Insert the fixed set of example incidents. Per-item failures are reported and do not stop the batch.
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} AddIncidentsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/admin/add-incidents [post]
func (h *Handler) addIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "addIncidents")

	result, err := h.adminService.AddExampleIncidents(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to add example incidents")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, BatchResultToResponse(result))
}

// @Summary Delete all incidents
// @Description Delete every incident. Locations are kept. Calling it twice returns 0 the second time.
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} ClearIncidentsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/admin/clear-incidents [post]
func (h *Handler) clearIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "clearIncidents")

	deleted, err := h.adminService.ClearIncidents(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to clear incidents")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, ClearIncidentsResponse{
		Success:      true,
		Message:      fmt.Sprintf("Se eliminaron %d incidente(s)", deleted),
		DeletedCount: deleted,
	})
}

// @Summary Count incidents
// @Description Non-destructive check of the clear endpoint
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} ClearIncidentsInfoResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/admin/clear-incidents [get]
func (h *Handler) clearIncidentsInfo(c *gin.Context) {
	log := h.logger.WithField("method", "clearIncidentsInfo")

	count, err := h.adminService.CountIncidents(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to count incidents")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, ClearIncidentsInfoResponse{
		Message:          "Endpoint funcionando correctamente",
		CurrentIncidents: count,
		Usage:            "Usa POST para borrar todos los incidentes",
	})
}
