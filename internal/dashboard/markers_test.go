package dashboard

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/incident_map_dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func location(incidents ...*models.Incident) *models.Location {
	return &models.Location{ID: uuid.New(), Name: "Zara Serrano", Latitude: 40.424864, Longitude: -3.683851, Incidents: incidents}
}

func incident(severity models.Severity, age time.Duration) *models.Incident {
	return &models.Incident{ID: uuid.New(), Severity: severity, Summary: string(severity), CreatedAt: now.Add(-age)}
}

func TestBuildMarkers_States(t *testing.T) {
	tests := []struct {
		name     string
		location *models.Location
		state    MarkerState
		color    string
		pulsing  bool
	}{
		{
			name:     "no incidents",
			location: location(),
			state:    StateNone,
			color:    ColorGray,
		},
		{
			name:     "old low incidents",
			location: location(incident(models.SeverityLow, 72*time.Hour), incident(models.SeverityMedium, 48*time.Hour)),
			state:    StateQuiet,
			color:    ColorBlue,
		},
		{
			name:     "old high incident",
			location: location(incident(models.SeverityHigh, 72*time.Hour)),
			state:    StateSevere,
			color:    ColorRed,
		},
		{
			name:     "recent medium incident",
			location: location(incident(models.SeverityMedium, time.Hour)),
			state:    StateRecent,
			color:    ColorAmber,
			pulsing:  true,
		},
		{
			name:     "recent wins over severe, color stays red",
			location: location(incident(models.SeverityHigh, 72*time.Hour), incident(models.SeverityLow, time.Hour)),
			state:    StateRecent,
			color:    ColorRed,
			pulsing:  true,
		},
		{
			name:     "exactly 24 hours is not recent",
			location: location(incident(models.SeverityLow, RecentWindow)),
			state:    StateQuiet,
			color:    ColorBlue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			markers := BuildMarkers([]*models.Location{tt.location}, now)

			require.Len(t, markers, 1)
			assert.Equal(t, tt.state, markers[0].State)
			assert.Equal(t, tt.color, markers[0].Color)
			assert.Equal(t, tt.pulsing, markers[0].Pulsing)
			assert.Equal(t, len(tt.location.Incidents), markers[0].Badge)
		})
	}
}

func TestBuildMarkers_IncidentsNewestFirst(t *testing.T) {
	oldest := incident(models.SeverityLow, 72*time.Hour)
	newest := incident(models.SeverityHigh, time.Hour)
	middle := incident(models.SeverityMedium, 48*time.Hour)
	loc := location(oldest, newest, middle)

	markers := BuildMarkers([]*models.Location{loc}, now)

	require.Len(t, markers[0].Incidents, 3)
	assert.Equal(t, newest.ID, markers[0].Incidents[0].ID)
	assert.Equal(t, middle.ID, markers[0].Incidents[1].ID)
	assert.Equal(t, oldest.ID, markers[0].Incidents[2].ID)
	// Исходный порядок не меняется
	assert.Equal(t, oldest.ID, loc.Incidents[0].ID)

	first := markers[0].Incidents[0]
	assert.Equal(t, "Alta", first.SeverityLabel)
	assert.Equal(t, "severity-high", first.SeverityClass)
	assert.Equal(t, "/api/incidents/"+newest.ID.String()+"/pdf", first.PDFURL)
}

func TestBuildMarkers_CaseInsensitiveHigh(t *testing.T) {
	markers := BuildMarkers([]*models.Location{location(incident("high", 72*time.Hour))}, now)

	assert.Equal(t, StateSevere, markers[0].State)
	assert.Equal(t, ColorRed, markers[0].Color)
}

func TestBuildMarkers_Empty(t *testing.T) {
	markers := BuildMarkers(nil, now)

	assert.NotNil(t, markers)
	assert.Empty(t, markers)
}
