package v1

import (
	"time"

	"github.com/google/uuid"
)

// WebhookIncidentRequest DTO входящего инцидента
// @Description DTO входящего инцидента от системы мониторинга
type WebhookIncidentRequest struct {
	LocationName string `json:"location_name" validate:"required"`
	Severity     string `json:"severity" validate:"required"`
	Summary      string `json:"summary" validate:"required"`
	HTMLReport   string `json:"html_report" validate:"required"`
	Category     string `json:"category,omitempty"`
}

// LocationRef DTO краткой информации о локации
type LocationRef struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// CreatedIncidentResponse DTO созданного инцидента
// @Description DTO созданного инцидента
type CreatedIncidentResponse struct {
	ID        uuid.UUID   `json:"id"`
	CreatedAt time.Time   `json:"created_at"`
	Summary   string      `json:"summary"`
	Severity  string      `json:"severity"`
	Category  *string     `json:"category"`
	Location  LocationRef `json:"location"`
}

// WebhookIncidentResponse DTO ответа вебхука
type WebhookIncidentResponse struct {
	Success  bool                    `json:"success"`
	Incident CreatedIncidentResponse `json:"incident"`
}

// IncidentResponse DTO инцидента в списке локаций
// @Description DTO инцидента
type IncidentResponse struct {
	ID         uuid.UUID `json:"id"`
	LocationID uuid.UUID `json:"location_id"`
	CreatedAt  time.Time `json:"created_at"`
	Summary    string    `json:"summary"`
	Severity   string    `json:"severity"`
	Category   *string   `json:"category"`
	HTMLReport string    `json:"html_report"`
}

// LocationResponse DTO локации с историей инцидентов
// @Description DTO локации с историей инцидентов (новые первыми)
type LocationResponse struct {
	ID        uuid.UUID           `json:"id"`
	Name      string              `json:"name"`
	Address   string              `json:"address"`
	Latitude  float64             `json:"latitude"`
	Longitude float64             `json:"longitude"`
	CreatedAt time.Time           `json:"created_at"`
	Incidents []*IncidentResponse `json:"incidents"`
}

// CreatedIncidentSummary DTO строки результата пакетной вставки
type CreatedIncidentSummary struct {
	ID       uuid.UUID `json:"id"`
	Summary  string    `json:"summary"`
	Location string    `json:"location"`
	Severity string    `json:"severity"`
}

// BatchResultResponse DTO результата пакетной вставки
type BatchResultResponse struct {
	Success    int                       `json:"success"`
	Errors     int                       `json:"errors"`
	Created    []*CreatedIncidentSummary `json:"created"`
	ErrorsList []string                  `json:"errors_list"`
}

// AddIncidentsResponse DTO ответа добавления примеров
// @Description DTO ответа добавления примеров
type AddIncidentsResponse struct {
	Message string              `json:"message"`
	Results BatchResultResponse `json:"results"`
}

// ClearIncidentsResponse DTO ответа очистки инцидентов
type ClearIncidentsResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	DeletedCount int64  `json:"deleted_count"`
}

// ClearIncidentsInfoResponse DTO проверки эндпоинта очистки
type ClearIncidentsInfoResponse struct {
	Message          string `json:"message"`
	CurrentIncidents int64  `json:"current_incidents"`
	Usage            string `json:"usage"`
}

// DateRangeRequest DTO периода. Обе границы включительно: YYYY-MM-DD или RFC3339.
type DateRangeRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ReportFilterRequest DTO фильтра отчетов
// @Description DTO фильтра отчетов
type ReportFilterRequest struct {
	LocationName string            `json:"location_name,omitempty"`
	DateRange    *DateRangeRequest `json:"date_range,omitempty"`
}

// PDFReportRequest DTO запроса PDF-отчета
// @Description DTO запроса PDF-отчета (template: default | minimal)
type PDFReportRequest struct {
	ReportFilterRequest
	Template string `json:"template,omitempty"`
}

// LocationCountResponse DTO строки рейтинга локаций
type LocationCountResponse struct {
	LocationName string `json:"location_name"`
	Count        int64  `json:"count"`
}

// StatsResponse DTO панели статистики
// @Description DTO панели статистики: всего, за 7 дней, по серьезности, топ-3 локаций
type StatsResponse struct {
	Total      int64                   `json:"total"`
	Recent     int64                   `json:"recent"`
	BySeverity map[string]int64        `json:"by_severity"`
	ByLocation []LocationCountResponse `json:"by_location"`
}

// SummaryResponse DTO ответа со сводкой
type SummaryResponse struct {
	Summary string `json:"summary"`
}
