package export

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/shenikar/incident_map_dashboard/internal/report"
)

// ErrEmptyContent - после всех попыток извлечения в отчете нечего печатать
var ErrEmptyContent = errors.New("report has no renderable content")

// Document - нормализованный отчет: стили отдельно от содержимого
type Document struct {
	Styles  []string
	Content string
}

var (
	leadingFenceRe  = regexp.MustCompile("^```[a-zA-Z]*[ \\t]*(\\r?\\n|$)")
	trailingFenceRe = regexp.MustCompile("(\\r?\\n)?```$")

	styleBlockRe = regexp.MustCompile(`(?is)<style[^>]*>(.*?)</style>`)
	headBlockRe  = regexp.MustCompile(`(?is)<head[^>]*>.*?</head>`)
	scriptRe     = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	bodyRe       = regexp.MustCompile(`(?is)<body[^>]*>(.*)</body>`)
	wrapperTagRe = regexp.MustCompile(`(?is)<!doctype[^>]*>|</?(html|body)[^>]*>`)

	cssImportRe   = regexp.MustCompile(`(?i)@import[^;]*;?`)
	cssURLRe      = regexp.MustCompile(`(?i)url\([^)]*\)`)
	cssDangerRe   = regexp.MustCompile(`(?i)expression\s*\(|javascript:|</style`)
	transparentRe = regexp.MustCompile(`(?i)^(transparent|rgba\([^)]*,\s*0(\.0+)?\s*\)|hsla\([^)]*,\s*0(\.0+)?\s*\))$`)
	// Объявление color (не background-color) с полностью прозрачным значением
	cssTransparentColorRe = regexp.MustCompile(`(?i)(^|[{;\s])color\s*:\s*(transparent|rgba\([^)]*,\s*0(\.0+)?\s*\)|hsla\([^)]*,\s*0(\.0+)?\s*\))`)
)

// StripCodeFences убирает markdown-обертку ```html ... ``` в начале и в конце.
// Тройные кавычки внутри текста не трогает.
func StripCodeFences(raw string) string {
	source := strings.TrimSpace(raw)
	source = leadingFenceRe.ReplaceAllString(source, "")
	source = trailingFenceRe.ReplaceAllString(source, "")
	return strings.TrimSpace(source)
}

// Normalize приводит сохраненный HTML (полный документ, фрагмент или
// ответ в code fence) к стилям и очищенному содержимому body.
func Normalize(raw string) (*Document, error) {
	source := StripCodeFences(raw)
	if source == "" {
		return nil, ErrEmptyContent
	}

	doc, err := parseDocument(source)
	if err != nil {
		doc = permissiveExtract(source)
	}

	content, err := finalizeContent(doc.Content)
	if err != nil {
		return nil, err
	}
	doc.Content = content

	for i, css := range doc.Styles {
		doc.Styles[i] = sanitizeCSS(css)
	}
	return doc, nil
}

func parseDocument(source string) (*Document, error) {
	dom, err := goquery.NewDocumentFromReader(strings.NewReader(source))
	if err != nil {
		return nil, fmt.Errorf("failed to parse report html: %w", err)
	}

	var styles []string
	dom.Find("style").Each(func(_ int, s *goquery.Selection) {
		if css := strings.TrimSpace(s.Text()); css != "" {
			styles = append(styles, css)
		}
	})
	dom.Find("head, style, script").Remove()

	root := dom.Find("body")
	if root.Length() == 0 {
		root = dom.Selection
	}
	content, err := root.Html()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize report body: %w", err)
	}
	return &Document{Styles: styles, Content: content}, nil
}

// permissiveExtract - запасной путь на регулярных выражениях, если парсер не справился
func permissiveExtract(source string) *Document {
	var styles []string
	for _, m := range styleBlockRe.FindAllStringSubmatch(source, -1) {
		if css := strings.TrimSpace(m[1]); css != "" {
			styles = append(styles, css)
		}
	}

	cleaned := headBlockRe.ReplaceAllString(source, "")
	cleaned = styleBlockRe.ReplaceAllString(cleaned, "")
	cleaned = scriptRe.ReplaceAllString(cleaned, "")
	if m := bodyRe.FindStringSubmatch(cleaned); m != nil {
		cleaned = m[1]
	}
	cleaned = wrapperTagRe.ReplaceAllString(cleaned, "")

	return &Document{Styles: styles, Content: strings.TrimSpace(cleaned)}
}

// finalizeContent чистит inline-стили, санитизирует разметку и проверяет,
// что осталось что печатать.
func finalizeContent(content string) (string, error) {
	dom, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("failed to parse report content: %w", err)
	}

	dom.Find("[style]").Each(func(_ int, s *goquery.Selection) {
		style, _ := s.Attr("style")
		if cleaned := cleanInlineStyle(style); cleaned != "" {
			s.SetAttr("style", cleaned)
		} else {
			s.RemoveAttr("style")
		}
	})

	body := dom.Find("body")
	html, err := body.Html()
	if err != nil {
		return "", fmt.Errorf("failed to serialize report content: %w", err)
	}
	// Сохраненный HTML считается недоверенным независимо от режима приема
	safe := strings.TrimSpace(report.SanitizeReportHTML(html))

	check, err := goquery.NewDocumentFromReader(strings.NewReader(safe))
	if err != nil {
		return "", fmt.Errorf("failed to parse sanitized content: %w", err)
	}
	if strings.TrimSpace(check.Text()) == "" && check.Find("table, img").Length() == 0 {
		return "", ErrEmptyContent
	}
	return safe, nil
}

// cleanInlineStyle отбрасывает опасные объявления и заменяет
// полностью прозрачный цвет текста на черный.
func cleanInlineStyle(style string) string {
	var decls []string
	for _, decl := range strings.Split(style, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		name = strings.ToLower(strings.TrimSpace(name))
		value = strings.TrimSpace(value)
		if name == "" || value == "" || cssDangerRe.MatchString(value) || cssURLRe.MatchString(value) {
			continue
		}
		if name == "color" && transparentRe.MatchString(strings.TrimSuffix(value, "!important")) {
			value = "#000000"
		}
		decls = append(decls, name+": "+value)
	}
	return strings.Join(decls, "; ")
}

func sanitizeCSS(css string) string {
	css = cssImportRe.ReplaceAllString(css, "")
	css = cssURLRe.ReplaceAllString(css, "none")
	css = cssDangerRe.ReplaceAllString(css, "")
	css = cssTransparentColorRe.ReplaceAllString(css, "${1}color: #000000")
	return strings.TrimSpace(css)
}

// SanitizeReportDocument очищает присланный HTML отчета, сохраняя его стили:
// блоки <style> проходят через sanitizeCSS и кладутся перед очищенным содержимым.
func SanitizeReportDocument(raw string) string {
	source := StripCodeFences(raw)
	doc, err := parseDocument(source)
	if err != nil {
		doc = permissiveExtract(source)
	}

	var b strings.Builder
	for _, css := range doc.Styles {
		if css = sanitizeCSS(css); css != "" {
			b.WriteString("<style>")
			b.WriteString(css)
			b.WriteString("</style>\n")
		}
	}
	b.WriteString(report.SanitizeReportHTML(doc.Content))
	return b.String()
}
