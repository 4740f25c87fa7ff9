package report

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/shenikar/incident_map_dashboard/internal/models"
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML экранирует управляющие символы &, <, >, " и '
func EscapeHTML(text string) string {
	return htmlEscaper.Replace(text)
}

// FormatParagraphs разбивает текст на абзацы по пустым строкам,
// экранирует каждый и заменяет переводы строк внутри абзаца на <br>.
func FormatParagraphs(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var b strings.Builder
	for _, paragraph := range strings.Split(text, "\n\n") {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			continue
		}
		escaped := strings.ReplaceAll(EscapeHTML(paragraph), "\n", "<br>")
		b.WriteString(`<p style="margin: 0 0 12px 0; line-height: 1.6;">`)
		b.WriteString(escaped)
		b.WriteString("</p>")
	}
	return b.String()
}

// IncidentReport - входные данные для HTML-отчета по одному инциденту
type IncidentReport struct {
	LocationName string
	Severity     models.Severity
	Summary      string
	Body         string // простой текст из вебхука
	GeneratedAt  time.Time
}

type incidentView struct {
	LocationName  string
	Summary       string
	Date          string
	SeverityClass string
	SeverityLabel string
	Body          template.HTML
}

// RenderIncidentHTML собирает полный HTML-документ отчета из простого текста
func RenderIncidentHTML(r IncidentReport) (string, error) {
	view := incidentView{
		LocationName:  r.LocationName,
		Summary:       r.Summary,
		Date:          LongDate(r.GeneratedAt),
		SeverityClass: r.Severity.Class(),
		SeverityLabel: r.Severity.Label(),
		// Абзацы уже экранированы в FormatParagraphs
		Body: template.HTML(FormatParagraphs(r.Body)),
	}

	var buf bytes.Buffer
	if err := incidentTemplate.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("failed to render incident report: %w", err)
	}
	return buf.String(), nil
}

var incidentTemplate = template.Must(template.New("incident").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>Informe de Incidencia - {{.LocationName}}</title>
  <style>
    body { font-family: Arial, sans-serif; margin: 0; padding: 40px; background-color: #ffffff; color: #2c3e50; line-height: 1.6; }
    .header { border-bottom: 2px solid #3498db; padding-bottom: 20px; margin-bottom: 30px; }
    h1 { color: #2c3e50; margin: 0 0 10px 0; font-size: 28px; }
    .date { color: #7f8c8d; font-size: 14px; margin: 0; }
    .summary { background: #ecf0f1; padding: 20px; border-radius: 5px; margin-bottom: 30px; border-left: 4px solid #3498db; }
    .summary h2 { margin-top: 0; color: #2c3e50; font-size: 20px; }
    .report-content { margin-bottom: 30px; }
    .report-content h2 { color: #2c3e50; font-size: 22px; margin-top: 30px; margin-bottom: 15px; border-bottom: 1px solid #ecf0f1; padding-bottom: 10px; }
    .report-content p { margin: 0 0 12px 0; line-height: 1.6; color: #34495e; }
    table { width: 100%; border-collapse: collapse; margin-top: 20px; margin-bottom: 20px; }
    th, td { border: 1px solid #bdc3c7; padding: 12px; text-align: left; }
    th { background-color: #3498db; color: white; font-weight: 600; }
    td { background-color: #ffffff; }
    .severity-high { background-color: #e74c3c !important; color: white !important; font-weight: 600; }
    .severity-medium { background-color: #f39c12 !important; color: white !important; font-weight: 600; }
    .severity-low { background-color: #27ae60 !important; color: white !important; font-weight: 600; }
    .footer { margin-top: 40px; padding-top: 20px; border-top: 1px solid #ecf0f1; color: #7f8c8d; font-size: 12px; text-align: center; }
  </style>
</head>
<body>
  <div class="header">
    <h1>Informe de Incidencia de Seguridad</h1>
    <p class="date">Generado el: {{.Date}}</p>
  </div>

  <div class="summary">
    <h2>Resumen</h2>
    <p>{{.Summary}}</p>
  </div>

  <div class="report-content">
    <h2>Detalle del Incidente</h2>
    {{.Body}}
  </div>

  <table>
    <thead>
      <tr>
        <th>Ubicación</th>
        <th>Fecha</th>
        <th>Severidad</th>
      </tr>
    </thead>
    <tbody>
      <tr>
        <td>{{.LocationName}}</td>
        <td>{{.Date}}</td>
        <td class="{{.SeverityClass}}">{{.SeverityLabel}}</td>
      </tr>
    </tbody>
  </table>

  <div class="footer">
    <p>Este informe fue generado automáticamente por el sistema de gestión de incidentes.</p>
  </div>
</body>
</html>`))
