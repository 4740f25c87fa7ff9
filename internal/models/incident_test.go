package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSeverity(t *testing.T) {
	cases := map[string]Severity{
		"high":      SeverityHigh,
		" Medium ":  SeverityMedium,
		"LOW":       SeverityLow,
		"Critical":  Severity("Critical"),
		"  unknown": Severity("unknown"),
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseSeverity(in), in)
	}
}

func TestSeverity_LabelAndClass(t *testing.T) {
	assert.Equal(t, "Alta", SeverityHigh.Label())
	assert.Equal(t, "Media", Severity("medium").Label())
	assert.Equal(t, "Baja", SeverityLow.Label())
	assert.Equal(t, "Critical", Severity("Critical").Label())

	assert.Equal(t, "severity-medium", SeverityMedium.Class())
	assert.True(t, SeverityHigh.Known())
	assert.False(t, Severity("Critical").Known())
}
