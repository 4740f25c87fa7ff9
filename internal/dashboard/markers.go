package dashboard

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/incident_map_dashboard/internal/models"
)

// MarkerState - состояние маркера локации на карте
type MarkerState string

const (
	StateNone   MarkerState = "none"   // инцидентов нет
	StateQuiet  MarkerState = "quiet"  // есть инциденты, нет свежих и серьезных
	StateSevere MarkerState = "severe" // есть инцидент High
	StateRecent MarkerState = "recent" // есть инцидент за последние 24 часа
)

// RecentWindow - окно, в котором инцидент считается свежим
const RecentWindow = 24 * time.Hour

// Цвета маркеров
const (
	ColorGray  = "#95a5a6"
	ColorBlue  = "#3498db"
	ColorRed   = "#e74c3c"
	ColorAmber = "#f39c12"
)

// IncidentView - строка панели деталей
type IncidentView struct {
	ID            uuid.UUID `json:"id"`
	Summary       string    `json:"summary"`
	Severity      string    `json:"severity"`
	SeverityLabel string    `json:"severity_label"`
	SeverityClass string    `json:"severity_class"`
	Category      string    `json:"category,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	ReportURL     string    `json:"report_url"`
	PDFURL        string    `json:"pdf_url"`
}

// MarkerView - все, что нужно странице для отрисовки маркера и панели
type MarkerView struct {
	LocationID uuid.UUID      `json:"location_id"`
	Name       string         `json:"name"`
	Address    string         `json:"address"`
	Latitude   float64        `json:"latitude"`
	Longitude  float64        `json:"longitude"`
	State      MarkerState    `json:"state"`
	Color      string         `json:"color"`
	Pulsing    bool           `json:"pulsing"`
	Badge      int            `json:"badge"`
	Incidents  []IncidentView `json:"incidents"`
}

// BuildMarkers вычисляет состояние маркеров на момент now.
// Свежесть важнее серьезности, но цвет красный при любом инциденте High.
func BuildMarkers(locations []*models.Location, now time.Time) []MarkerView {
	markers := make([]MarkerView, 0, len(locations))
	for _, location := range locations {
		markers = append(markers, buildMarker(location, now))
	}
	return markers
}

func buildMarker(location *models.Location, now time.Time) MarkerView {
	incidents := make([]*models.Incident, len(location.Incidents))
	copy(incidents, location.Incidents)
	sort.SliceStable(incidents, func(i, j int) bool {
		return incidents[i].CreatedAt.After(incidents[j].CreatedAt)
	})

	var hasHigh, hasRecent bool
	views := make([]IncidentView, 0, len(incidents))
	for _, inc := range incidents {
		severity := models.ParseSeverity(string(inc.Severity))
		if severity == models.SeverityHigh {
			hasHigh = true
		}
		if now.Sub(inc.CreatedAt) < RecentWindow {
			hasRecent = true
		}
		views = append(views, IncidentView{
			ID:            inc.ID,
			Summary:       inc.Summary,
			Severity:      string(inc.Severity),
			SeverityLabel: inc.Severity.Label(),
			SeverityClass: inc.Severity.Class(),
			Category:      inc.Category,
			CreatedAt:     inc.CreatedAt,
			ReportURL:     fmt.Sprintf("/api/incidents/%s/report", inc.ID),
			PDFURL:        fmt.Sprintf("/api/incidents/%s/pdf", inc.ID),
		})
	}

	marker := MarkerView{
		LocationID: location.ID,
		Name:       location.Name,
		Address:    location.Address,
		Latitude:   location.Latitude,
		Longitude:  location.Longitude,
		Badge:      len(incidents),
		Incidents:  views,
	}

	switch {
	case len(incidents) == 0:
		marker.State, marker.Color = StateNone, ColorGray
	case hasRecent:
		marker.State, marker.Color, marker.Pulsing = StateRecent, ColorAmber, true
	case hasHigh:
		marker.State, marker.Color = StateSevere, ColorRed
	default:
		marker.State, marker.Color = StateQuiet, ColorBlue
	}
	if hasHigh {
		marker.Color = ColorRed
	}
	return marker
}
