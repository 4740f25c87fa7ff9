package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shenikar/incident_map_dashboard/internal/models"
)

// NoIncidentsSummary возвращается, когда под фильтр не попал ни один инцидент
const NoIncidentsSummary = "No incidents found for the selected criteria."

const maxCauses = 5

// FallbackSummary строит детерминированную статистическую сводку,
// используется когда LLM недоступна.
func FallbackSummary(incidents []*models.Incident) string {
	var (
		locationOrder []string
		byLocation    = make(map[string]int)
		bySeverity    = make(map[string]int)
		causes        []string
		seenCauses    = make(map[string]bool)
	)

	for _, inc := range incidents {
		if _, ok := byLocation[inc.LocationName]; !ok {
			locationOrder = append(locationOrder, inc.LocationName)
		}
		byLocation[inc.LocationName]++
		bySeverity[string(inc.Severity)]++

		cause := strings.TrimSpace(inc.Category)
		if cause != "" && !seenCauses[cause] && len(causes) < maxCauses {
			seenCauses[cause] = true
			causes = append(causes, cause)
		}
	}

	// При равенстве побеждает локация, встреченная первой
	topLocation := "N/A"
	topCount := 0
	for _, name := range locationOrder {
		if byLocation[name] > topCount {
			topCount = byLocation[name]
			topLocation = fmt.Sprintf("%s (%d)", name, topCount)
		}
	}

	// json.Marshal сортирует ключи map, поэтому вывод стабилен
	severityJSON, _ := json.Marshal(bySeverity)

	causesText := "No especificadas"
	if len(causes) > 0 {
		causesText = strings.Join(causes, ", ")
	}

	return fmt.Sprintf(`Resumen de Incidencias:
- Total de incidencias: %d
- Ubicación con más incidencias: %s
- Distribución por severidad: %s
- Causas reportadas: %s`, len(incidents), topLocation, severityJSON, causesText)
}
