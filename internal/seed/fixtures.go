package seed

import (
	"bytes"
	"html/template"
	"strings"
	"time"

	"github.com/shenikar/incident_map_dashboard/internal/models"
)

// Locations - отслеживаемые магазины в Мадриде
func Locations() []*models.Location {
	return []*models.Location{
		{
			Name:      "Zara Gran Via",
			Address:   "Calle Gran Vía, 34, 28013 Madrid, España",
			Latitude:  40.42036,
			Longitude: -3.70414,
		},
		{
			Name:      "Zara Castellana",
			Address:   "Paseo de la Castellana, 79, 28046 Madrid, España",
			Latitude:  40.4475,
			Longitude: -3.6927,
		},
		{
			Name:      "Zara Serrano",
			Address:   "Calle Serrano, 92, 28006 Madrid, España",
			Latitude:  40.424864,
			Longitude: -3.683851,
		},
	}
}

type example struct {
	location      string
	locationLabel string
	severity      models.Severity
	category      string
	title         string
	summary       string
	body          []string
}

var examples = []example{
	{
		location:      "Zara Serrano",
		locationLabel: "Asociada a Zara Serrano",
		severity:      models.SeverityMedium,
		category:      "Incendio",
		title:         "Incendio",
		summary:       "Incendio reportado asociado a Zara Serrano, clasificado con severidad media; se activó el protocolo de emergencia, se notificaron los servicios correspondientes y la incidencia fue documentada para seguimiento e investigación.",
		body: []string{
			"Se recibió un reporte de incendio relacionado con la referencia Zara Serrano; la situación fue evaluada y clasificada como de severidad media.",
			"Se procedió a activar el protocolo de emergencia, notificando a los servicios de extinción y, en su caso, a los servicios médicos y de seguridad pertinentes.",
			"Se llevaron a cabo acciones iniciales de contención y evacuación según protocolos disponibles, y la incidencia fue registrada formalmente para investigación posterior.",
			"Se recomienda realizar inspección técnica detallada del lugar, determinar causas y aplicar medidas preventivas para evitar recurrencias.",
		},
	},
	{
		location:      "Zara Gran Via",
		locationLabel: "Zara Gran Via",
		severity:      models.SeverityLow,
		category:      "Alarma de seguridad",
		title:         "Alarma de Seguridad",
		summary:       "Alarma de seguridad activada por movimiento no autorizado. Se revisaron las cámaras y se confirmó falsa alarma. Sistema funcionando correctamente.",
		body: []string{
			"Se activó la alarma de seguridad por detección de movimiento no autorizado en Zara Gran Via.",
			"Se revisaron inmediatamente las grabaciones de las cámaras de seguridad y se confirmó que se trataba de una falsa alarma.",
			"El sistema de seguridad está funcionando correctamente. No se detectaron intrusiones ni actividades sospechosas.",
			"Se recomienda revisar la sensibilidad del sensor para evitar falsas alarmas futuras.",
		},
	},
	{
		location:      "Zara Castellana",
		locationLabel: "Zara Castellana",
		severity:      models.SeverityMedium,
		category:      "Avería de climatización",
		title:         "Avería en Climatización",
		summary:       "Avería en sistema de climatización. Temperatura elevada detectada. Se activó protocolo de mantenimiento y se contactó con servicio técnico.",
		body: []string{
			"Se detectó una avería en el sistema de climatización de Zara Castellana, con temperaturas elevadas en el interior del establecimiento.",
			"Se activó el protocolo de mantenimiento y se contactó inmediatamente con el servicio técnico autorizado.",
			"Se implementaron medidas temporales para mantener condiciones aceptables mientras se realiza la reparación.",
			"Se recomienda realizar mantenimiento preventivo del sistema de climatización para evitar futuras averías.",
		},
	},
}

var exampleReport = template.Must(template.New("example").Parse(`<div style="font-family: Arial, sans-serif; padding: 20px; background-color: #ffffff; color: #000000;">
  <h2 style="color: #000000; font-size: 24px; margin-bottom: 16px; font-weight: bold;">Informe de Incidencia: {{.Title}}</h2>
  <table style="width:100%; border-collapse: collapse; margin-bottom: 16px; border: 1px solid #000000;">
    <thead>
      <tr style="background-color: #f0f0f0;">
        <th style="border: 1px solid #000000; padding: 10px; text-align: left; color: #000000; font-weight: bold;">Fecha</th>
        <th style="border: 1px solid #000000; padding: 10px; text-align: left; color: #000000; font-weight: bold;">Ubicación</th>
        <th style="border: 1px solid #000000; padding: 10px; text-align: left; color: #000000; font-weight: bold;">Severidad</th>
      </tr>
    </thead>
    <tbody>
      <tr>
        <td style="border: 1px solid #000000; padding: 10px; color: #000000;">{{.Date}}</td>
        <td style="border: 1px solid #000000; padding: 10px; color: #000000;">{{.Location}}</td>
        <td style="border: 1px solid #000000; padding: 10px; color: #000000;">{{.Severity}}</td>
      </tr>
    </tbody>
  </table>

  <p style="margin: 16px 0; line-height: 1.6; color: #000000; font-size: 14px;">
    {{.Body}}
  </p>
</div>`))

// ExampleIncidents возвращает фиксированный набор примеров с датой now в отчетах
func ExampleIncidents(now time.Time) []models.IncidentSubmission {
	out := make([]models.IncidentSubmission, 0, len(examples))
	for _, ex := range examples {
		var buf bytes.Buffer
		// Шаблон и данные статичны, ошибка исполнения невозможна
		_ = exampleReport.Execute(&buf, map[string]string{
			"Title":    ex.title,
			"Date":     now.Format("2006-01-02"),
			"Location": ex.locationLabel,
			"Severity": ex.severity.Label(),
			"Body":     strings.Join(ex.body, "\n    "),
		})
		out = append(out, models.IncidentSubmission{
			LocationName: ex.location,
			Severity:     string(ex.severity),
			Summary:      ex.summary,
			Report:       buf.String(),
			Category:     ex.category,
		})
	}
	return out
}
