package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound возвращается репозиториями, когда запись не найдена
var ErrNotFound = errors.New("not found")

// Severity - уровень серьезности инцидента
type Severity string

const (
	SeverityLow    Severity = "Low"
	SeverityMedium Severity = "Medium"
	SeverityHigh   Severity = "High"
)

// ParseSeverity нормализует входное значение без учета регистра.
// Неизвестные значения возвращаются как есть (без пробелов по краям).
func ParseSeverity(raw string) Severity {
	value := strings.TrimSpace(raw)
	switch strings.ToLower(value) {
	case "low":
		return SeverityLow
	case "medium":
		return SeverityMedium
	case "high":
		return SeverityHigh
	}
	return Severity(value)
}

// Known сообщает, входит ли значение в перечисление Low/Medium/High
func (s Severity) Known() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}
	return false
}

// Label возвращает испаноязычную метку для отчетов и бейджей
func (s Severity) Label() string {
	switch ParseSeverity(string(s)) {
	case SeverityHigh:
		return "Alta"
	case SeverityMedium:
		return "Media"
	case SeverityLow:
		return "Baja"
	}
	return string(s)
}

// Class возвращает CSS-класс вида severity-<уровень>
func (s Severity) Class() string {
	return "severity-" + strings.ToLower(string(s))
}

// Incident - инцидент, принадлежащий одной локации. После создания не изменяется.
type Incident struct {
	ID              uuid.UUID `json:"id"`
	LocationID      uuid.UUID `json:"location_id"`
	LocationName    string    `json:"location_name,omitempty"`
	LocationAddress string    `json:"location_address,omitempty"`
	Summary         string    `json:"summary"`
	Severity        Severity  `json:"severity"`
	Category        string    `json:"category,omitempty"`
	HTMLReport      string    `json:"html_report"`
	CreatedAt       time.Time `json:"created_at"`
}

// IncidentFilter ограничивает выборку для сводок и PDF-отчетов.
// Пустые поля не применяются, границы периода включительные.
type IncidentFilter struct {
	LocationName string
	From         *time.Time
	To           *time.Time
}

// IncidentSubmission - входящий отчет об инциденте (вебхук или пример из админки)
type IncidentSubmission struct {
	LocationName string
	Severity     string
	Summary      string
	Report       string
	Category     string
}

// BatchResult - итог пакетной вставки. Ошибки отдельных элементов не прерывают пакет.
type BatchResult struct {
	Success    int
	Errors     int
	Created    []*Incident
	ErrorsList []string
}

// PDFDocument - готовый PDF-файл для скачивания
type PDFDocument struct {
	FileName string
	Content  []byte
}

// LocationCount - число инцидентов одной локации
type LocationCount struct {
	LocationName string
	Count        int64
}

// IncidentStats - агрегаты для панели статистики
type IncidentStats struct {
	Total      int64
	Recent     int64
	BySeverity map[string]int64
	ByLocation []LocationCount
}
