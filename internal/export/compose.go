package export

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/google/uuid"
)

// FileName формирует имя файла по идентификатору инцидента и текущей дате
func FileName(incidentID uuid.UUID, now time.Time) string {
	return fmt.Sprintf("incident-%s-%s.pdf", incidentID, now.Format("2006-01-02"))
}

type composeView struct {
	Styles  []template.CSS
	Content template.HTML
}

// Compose собирает новый документ формата A4: базовые стили по умолчанию,
// затем извлеченные стили отчета и содержимое в контейнере фиксированной ширины.
func Compose(doc *Document) (string, error) {
	view := composeView{Content: template.HTML(doc.Content)}
	for _, css := range doc.Styles {
		// Стили уже прошли sanitizeCSS в Normalize
		view.Styles = append(view.Styles, template.CSS(css))
	}

	var buf bytes.Buffer
	if err := composeTemplate.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("failed to compose export document: %w", err)
	}
	return buf.String(), nil
}

// Базовые правила обернуты в :where() с нулевой специфичностью,
// чтобы любые стили отчета их перекрывали.
var composeTemplate = template.Must(template.New("export").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <style>
    @page { size: A4; margin: 20mm 15mm; }
    html, body { margin: 0; padding: 0; background: #ffffff; }
    :where(body) { color: #000000; font-family: Arial, sans-serif; }
    :where(td, th) { border: 1px solid #bdc3c7; padding: 6px; }
    :where(table) { border-collapse: collapse; }
    .report-export-container { width: 180mm; margin: 0 auto; box-sizing: border-box; }
  </style>
{{- range .Styles}}
  <style>{{.}}</style>
{{- end}}
</head>
<body>
  <div class="report-export-container">
{{.Content}}
  </div>
</body>
</html>`))
