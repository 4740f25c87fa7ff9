package v1

import (
	"fmt"
	"strings"
	"time"

	"github.com/shenikar/incident_map_dashboard/internal/models"
)

const createdSummaryLength = 50

// DTOToSubmission преобразует DTO вебхука в доменную модель
func DTOToSubmission(dto WebhookIncidentRequest) *models.IncidentSubmission {
	return &models.IncidentSubmission{
		LocationName: dto.LocationName,
		Severity:     dto.Severity,
		Summary:      dto.Summary,
		Report:       dto.HTMLReport,
		Category:     dto.Category,
	}
}

// trimWebhookRequest убирает пробелы, чтобы строка из пробелов считалась пустой
func trimWebhookRequest(dto *WebhookIncidentRequest) {
	dto.LocationName = strings.TrimSpace(dto.LocationName)
	dto.Severity = strings.TrimSpace(dto.Severity)
	dto.Summary = strings.TrimSpace(dto.Summary)
	dto.Category = strings.TrimSpace(dto.Category)
	if strings.TrimSpace(dto.HTMLReport) == "" {
		dto.HTMLReport = ""
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ModelToCreatedIncidentResponse преобразует созданный инцидент в DTO ответа вебхука
func ModelToCreatedIncidentResponse(model *models.Incident) CreatedIncidentResponse {
	return CreatedIncidentResponse{
		ID:        model.ID,
		CreatedAt: model.CreatedAt,
		Summary:   model.Summary,
		Severity:  string(model.Severity),
		Category:  optionalString(model.Category),
		Location: LocationRef{
			Name:    model.LocationName,
			Address: model.LocationAddress,
		},
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:         model.ID,
		LocationID: model.LocationID,
		CreatedAt:  model.CreatedAt,
		Summary:    model.Summary,
		Severity:   string(model.Severity),
		Category:   optionalString(model.Category),
		HTMLReport: model.HTMLReport,
	}
}

// ModelsToLocationResponses преобразует слайс локаций в слайс DTO
func ModelsToLocationResponses(locations []*models.Location) []*LocationResponse {
	responses := make([]*LocationResponse, len(locations))
	for i, location := range locations {
		incidents := make([]*IncidentResponse, len(location.Incidents))
		for j, incident := range location.Incidents {
			incidents[j] = ModelToIncidentResponse(incident)
		}
		responses[i] = &LocationResponse{
			ID:        location.ID,
			Name:      location.Name,
			Address:   location.Address,
			Latitude:  location.Latitude,
			Longitude: location.Longitude,
			CreatedAt: location.CreatedAt,
			Incidents: incidents,
		}
	}
	return responses
}

// BatchResultToResponse формирует ответ пакетной вставки примеров
func BatchResultToResponse(result *models.BatchResult) *AddIncidentsResponse {
	created := make([]*CreatedIncidentSummary, len(result.Created))
	for i, incident := range result.Created {
		created[i] = &CreatedIncidentSummary{
			ID:       incident.ID,
			Summary:  truncate(incident.Summary, createdSummaryLength) + "...",
			Location: incident.LocationName,
			Severity: string(incident.Severity),
		}
	}
	errorsList := result.ErrorsList
	if errorsList == nil {
		errorsList = []string{}
	}
	return &AddIncidentsResponse{
		Message: fmt.Sprintf("Proceso completado: %d creados, %d errores", result.Success, result.Errors),
		Results: BatchResultResponse{
			Success:    result.Success,
			Errors:     result.Errors,
			Created:    created,
			ErrorsList: errorsList,
		},
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// RequestToIncidentFilter разбирает фильтр отчетов.
// Период применяется только при обеих границах, конец в виде даты покрывает весь день.
func RequestToIncidentFilter(req ReportFilterRequest) (models.IncidentFilter, error) {
	filter := models.IncidentFilter{LocationName: strings.TrimSpace(req.LocationName)}
	if req.DateRange == nil {
		return filter, nil
	}

	start := strings.TrimSpace(req.DateRange.Start)
	end := strings.TrimSpace(req.DateRange.End)
	if start == "" || end == "" {
		return filter, nil
	}

	from, _, err := parseBound(start)
	if err != nil {
		return filter, fmt.Errorf("invalid date_range.start: %w", err)
	}
	to, dateOnly, err := parseBound(end)
	if err != nil {
		return filter, fmt.Errorf("invalid date_range.end: %w", err)
	}
	if dateOnly {
		to = to.Add(24*time.Hour - time.Nanosecond)
	}

	filter.From = &from
	filter.To = &to
	return filter, nil
}

func parseBound(value string) (time.Time, bool, error) {
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t, true, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, false, err
	}
	return t, false, nil
}

// StatsToResponse преобразует агрегаты в DTO панели статистики
func StatsToResponse(stats *models.IncidentStats) StatsResponse {
	byLocation := make([]LocationCountResponse, len(stats.ByLocation))
	for i, lc := range stats.ByLocation {
		byLocation[i] = LocationCountResponse{LocationName: lc.LocationName, Count: lc.Count}
	}
	bySeverity := stats.BySeverity
	if bySeverity == nil {
		bySeverity = map[string]int64{}
	}
	return StatsResponse{
		Total:      stats.Total,
		Recent:     stats.Recent,
		BySeverity: bySeverity,
		ByLocation: byLocation,
	}
}
