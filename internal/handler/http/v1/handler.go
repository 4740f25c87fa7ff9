package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/incident_map_dashboard/internal/config"
	"github.com/shenikar/incident_map_dashboard/internal/models"
	"github.com/shenikar/incident_map_dashboard/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	incidentService service.IncidentService
	locationService service.LocationService
	adminService    service.AdminService
	reportService   service.ReportService
	statsService    service.StatsService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(
	incidentService service.IncidentService,
	locationService service.LocationService,
	adminService service.AdminService,
	reportService service.ReportService,
	statsService service.StatsService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		incidentService: incidentService,
		locationService: locationService,
		adminService:    adminService,
		reportService:   reportService,
		statsService:    statsService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// @Summary Ingest an incident
// @Description Receive an incident from the monitoring system and attach it to a location by name. When WEBHOOK_SECRET is set the body must be signed.
// @Tags Webhook
// @Accept json
// @Produce json
// @Param X-Webhook-Signature header string false "hex(HMAC-SHA256(body, secret))"
// @Param incident body WebhookIncidentRequest true "Incident payload"
// @Success 201 {object} WebhookIncidentResponse
// @Failure 400 {object} map[string]string "Missing required fields"
// @Failure 401 {object} map[string]string "Invalid webhook signature"
// @Failure 404 {object} map[string]string "Location not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/webhook/incident [post]
func (h *Handler) ingestIncident(c *gin.Context) {
	var input WebhookIncidentRequest
	log := h.logger.WithField("method", "ingestIncident")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	trimWebhookRequest(&input)
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	incident, err := h.incidentService.Ingest(c.Request.Context(), DTOToSubmission(input))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.WithField("location", input.LocationName).Warn("Location not found")
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Location %q not found", input.LocationName)})
			return
		}
		log.WithError(err).Error("Failed to ingest incident in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, WebhookIncidentResponse{
		Success:  true,
		Incident: ModelToCreatedIncidentResponse(incident),
	})
}

// @Summary List locations
// @Description Get every location with its incidents embedded, newest first
// @Tags Locations
// @Produce json
// @Success 200 {array} LocationResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/locations [get]
func (h *Handler) listLocations(c *gin.Context) {
	log := h.logger.WithField("method", "listLocations")

	locations, err := h.locationService.ListLocations(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list locations from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToLocationResponses(locations))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /api/system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
