package report

import (
	"strings"
	"testing"
	"time"

	"github.com/shenikar/incident_map_dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeHTML(t *testing.T) {
	got := EscapeHTML(`<script>alert("x")</script> & 'y'`)
	assert.Equal(t, "&lt;script&gt;alert(&quot;x&quot;)&lt;/script&gt; &amp; &#039;y&#039;", got)
}

func TestFormatParagraphs(t *testing.T) {
	text := "Primera línea\nsegunda línea\n\n\n\n  <b>Segundo</b> párrafo  \r\n\r\nTercero"

	got := FormatParagraphs(text)

	assert.Equal(t, 3, strings.Count(got, "<p "))
	assert.Contains(t, got, "Primera línea<br>segunda línea</p>")
	assert.Contains(t, got, "&lt;b&gt;Segundo&lt;/b&gt; párrafo</p>")
	assert.Contains(t, got, ">Tercero</p>")
	assert.NotContains(t, got, "<b>")
}

func TestFormatParagraphs_Empty(t *testing.T) {
	assert.Empty(t, FormatParagraphs("\n\n   \n\n"))
}

func TestRenderIncidentHTML(t *testing.T) {
	generated := time.Date(2026, time.October, 18, 10, 0, 0, 0, time.UTC)

	html, err := RenderIncidentHTML(IncidentReport{
		LocationName: "Zara <Serrano>",
		Severity:     models.SeverityMedium,
		Summary:      "Incendio controlado",
		Body:         "Se activó el protocolo.\n\nSe notificó a los bomberos.",
		GeneratedAt:  generated,
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "Generado el: 18 de octubre de 2026")
	assert.Contains(t, html, `<td class="severity-medium">Media</td>`)
	assert.Contains(t, html, "Zara &lt;Serrano&gt;")
	assert.NotContains(t, html, "<Serrano>")
	assert.Contains(t, html, "Se notificó a los bomberos.</p>")
	assert.Contains(t, html, "Incendio controlado")
}

func TestRenderIncidentHTML_SeverityBadges(t *testing.T) {
	cases := []struct {
		severity models.Severity
		class    string
		label    string
	}{
		{models.SeverityHigh, "severity-high", "Alta"},
		{models.SeverityLow, "severity-low", "Baja"},
		{models.Severity("Critical"), "severity-critical", "Critical"},
	}
	for _, tc := range cases {
		html, err := RenderIncidentHTML(IncidentReport{
			LocationName: "Zara Gran Via",
			Severity:     tc.severity,
			Summary:      "s",
			Body:         "b",
			GeneratedAt:  time.Now(),
		})
		require.NoError(t, err)
		assert.Contains(t, html, `<td class="`+tc.class+`">`+tc.label+`</td>`)
	}
}

func TestLongAndShortDate(t *testing.T) {
	d := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "5 de marzo de 2026", LongDate(d))
	assert.Equal(t, "5/3/2026", ShortDate(d))
}
