package report

import (
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday/v2"
)

var summaryPolicy = bluemonday.UGCPolicy()

// Политика для HTML отчетов из внешних источников: разметка текста,
// таблицы, классы и inline-стили.
var reportPolicy = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowStyling()
	p.AllowAttrs("style").Globally()
	return p
}()

// MarkdownToSafeHTML рендерит markdown-ответ LLM в HTML и очищает его
func MarkdownToSafeHTML(markdown string) template.HTML {
	rendered := blackfriday.Run([]byte(markdown), blackfriday.WithExtensions(blackfriday.CommonExtensions|blackfriday.HardLineBreak))
	return template.HTML(summaryPolicy.SanitizeBytes(rendered))
}

// SanitizeReportHTML очищает недоверенный HTML отчета
func SanitizeReportHTML(raw string) string {
	return reportPolicy.Sanitize(raw)
}
