package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты приложения
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")

	// Вебхук системы мониторинга
	webhooks := api.Group("/webhook")
	if h.cfg.WebhookSecret != "" {
		webhooks.Use(WebhookSignatureMiddleware(h.cfg.WebhookSecret, h.logger))
	}
	webhooks.POST("/incident", h.ingestIncident)

	// Чтение для карты
	api.GET("/locations", h.listLocations)
	api.GET("/dashboard/markers", h.dashboardMarkers)
	api.GET("/dashboard/stats", h.dashboardStats)

	// Экспорт отчета инцидента
	incidents := api.Group("/incidents")
	{
		incidents.GET("/:id/pdf", h.incidentPDF)
		incidents.GET("/:id/report", h.incidentReport)
	}

	// Администрирование, ключи проверяются только если заданы
	admin := api.Group("/admin")
	if len(h.cfg.APIKeys) > 0 {
		admin.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	}
	{
		admin.POST("/add-incidents", h.addIncidents)
		admin.POST("/clear-incidents", h.clearIncidents)
		admin.GET("/clear-incidents", h.clearIncidentsInfo)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)

	reports := router.Group("/reports")
	{
		reports.POST("/summary", h.reportSummary)
		reports.POST("/pdf", h.reportPDF)
	}

	router.GET("/", h.dashboardPage)
}
