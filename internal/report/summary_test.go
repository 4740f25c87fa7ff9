package report

import (
	"testing"

	"github.com/shenikar/incident_map_dashboard/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestFallbackSummary_SeverityBreakdown(t *testing.T) {
	incidents := []*models.Incident{
		{LocationName: "Zara Gran Via", Severity: models.SeverityHigh, Category: "robo"},
		{LocationName: "Zara Serrano", Severity: models.SeverityMedium, Category: "incendio"},
		{LocationName: "Zara Gran Via", Severity: models.SeverityHigh, Category: "robo"},
	}

	got := FallbackSummary(incidents)

	assert.Contains(t, got, "- Total de incidencias: 3")
	assert.Contains(t, got, "- Ubicación con más incidencias: Zara Gran Via (2)")
	assert.Contains(t, got, `- Distribución por severidad: {"High":2,"Medium":1}`)
	assert.Contains(t, got, "- Causas reportadas: robo, incendio")
}

func TestFallbackSummary_TieKeepsFirstLocation(t *testing.T) {
	incidents := []*models.Incident{
		{LocationName: "Zara Castellana", Severity: models.SeverityLow},
		{LocationName: "Zara Serrano", Severity: models.SeverityLow},
	}

	got := FallbackSummary(incidents)

	assert.Contains(t, got, "Zara Castellana (1)")
	assert.Contains(t, got, "- Causas reportadas: No especificadas")
}

func TestFallbackSummary_AtMostFiveCauses(t *testing.T) {
	var incidents []*models.Incident
	for _, c := range []string{"a", "b", "c", "d", "e", "f"} {
		incidents = append(incidents, &models.Incident{LocationName: "X", Severity: models.SeverityLow, Category: c})
	}

	got := FallbackSummary(incidents)

	assert.Contains(t, got, "- Causas reportadas: a, b, c, d, e")
	assert.NotContains(t, got, ", f")
}

func TestFallbackSummary_Empty(t *testing.T) {
	got := FallbackSummary(nil)

	assert.Contains(t, got, "- Total de incidencias: 0")
	assert.Contains(t, got, "- Ubicación con más incidencias: N/A")
	assert.Contains(t, got, "- Distribución por severidad: {}")
}
