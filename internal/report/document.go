package report

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/shenikar/incident_map_dashboard/internal/models"
)

// Шаблоны сводного PDF-отчета
const (
	TemplateDefault = "default"
	TemplateMinimal = "minimal"
)

// NormalizeTemplate возвращает известное имя шаблона, иначе default
func NormalizeTemplate(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case TemplateMinimal:
		return TemplateMinimal
	}
	return TemplateDefault
}

// Document - данные для сводного отчета по набору инцидентов
type Document struct {
	Template    string
	GeneratedAt time.Time
	Summary     string // markdown или простой текст
	Incidents   []*models.Incident
}

type documentRow struct {
	Location      string
	Date          string
	Cause         string
	Description   string
	SeverityClass string
	SeverityLabel string
}

type documentView struct {
	Date        string
	ShowSummary bool
	Summary     template.HTML
	Rows        []documentRow
}

// RenderDocumentHTML собирает HTML сводного отчета для печати в PDF
func RenderDocumentHTML(doc Document) (string, error) {
	view := documentView{
		Date:        LongDate(doc.GeneratedAt),
		ShowSummary: NormalizeTemplate(doc.Template) == TemplateDefault,
		Rows:        make([]documentRow, 0, len(doc.Incidents)),
	}
	if view.ShowSummary {
		view.Summary = MarkdownToSafeHTML(doc.Summary)
	}

	for _, inc := range doc.Incidents {
		cause := inc.Category
		if cause == "" {
			cause = "No especificado"
		}
		view.Rows = append(view.Rows, documentRow{
			Location:      inc.LocationName,
			Date:          ShortDate(inc.CreatedAt),
			Cause:         cause,
			Description:   inc.Summary,
			SeverityClass: inc.Severity.Class(),
			SeverityLabel: inc.Severity.Label(),
		})
	}

	var buf bytes.Buffer
	if err := documentTemplate.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("failed to render report document: %w", err)
	}
	return buf.String(), nil
}

var documentTemplate = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>Informe de Incidencias</title>
  <style>
    @page { size: A4; margin: 20mm 15mm; }
    body { font-family: Arial, sans-serif; margin: 0; color: #2c3e50; }
    h1 { color: #2c3e50; }
    .header { border-bottom: 2px solid #3498db; padding-bottom: 20px; margin-bottom: 30px; }
    .summary { background: #ecf0f1; padding: 20px; border-radius: 5px; margin-bottom: 30px; }
    table { width: 100%; border-collapse: collapse; margin-top: 20px; }
    tr { page-break-inside: avoid; }
    th, td { border: 1px solid #bdc3c7; padding: 12px; text-align: left; }
    th { background-color: #3498db; color: white; }
    .severity-high { background-color: #e74c3c; color: white; }
    .severity-medium { background-color: #f39c12; color: white; }
    .severity-low { background-color: #27ae60; color: white; }
  </style>
</head>
<body>
  <div class="header">
    <h1>Informe de Incidencias de Seguridad</h1>
    <p>Generado el: {{.Date}}</p>
  </div>
{{if .ShowSummary}}
  <div class="summary">
    {{.Summary}}
  </div>
{{end}}
  <h2>Detalle de Incidencias</h2>
  <table>
    <thead>
      <tr>
        <th>Ubicación</th>
        <th>Fecha</th>
        <th>Causa</th>
        <th>Descripción</th>
        <th>Severidad</th>
      </tr>
    </thead>
    <tbody>
{{- range .Rows}}
      <tr>
        <td>{{.Location}}</td>
        <td>{{.Date}}</td>
        <td>{{.Cause}}</td>
        <td>{{.Description}}</td>
        <td class="{{.SeverityClass}}">{{.SeverityLabel}}</td>
      </tr>
{{- else}}
      <tr><td colspan="5">Sin incidencias para los criterios seleccionados.</td></tr>
{{- end}}
    </tbody>
  </table>
</body>
</html>`))
