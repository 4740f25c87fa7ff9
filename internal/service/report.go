package service

//go:generate mockgen -source=report.go -destination=mocks/report_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jellydator/ttlcache/v3"
	"github.com/shenikar/incident_map_dashboard/internal/export"
	"github.com/shenikar/incident_map_dashboard/internal/models"
	"github.com/shenikar/incident_map_dashboard/internal/report"
	"github.com/sirupsen/logrus"
)

// Summarizer - внешний генератор текстовой сводки (LLM)
type Summarizer interface {
	Summarize(ctx context.Context, incidents []*models.Incident) (string, error)
}

// PDFRenderer печатает HTML-документ в PDF формата A4
type PDFRenderer interface {
	Render(ctx context.Context, html string) ([]byte, error)
}

// ReportService - сводки и PDF-отчеты по инцидентам
type ReportService interface {
	Summary(ctx context.Context, filter models.IncidentFilter) (string, error)
	ReportPDF(ctx context.Context, filter models.IncidentFilter, template string) (*models.PDFDocument, error)
	IncidentReportHTML(ctx context.Context, id uuid.UUID) (string, error)
	ExportIncidentPDF(ctx context.Context, id uuid.UUID) (*models.PDFDocument, error)
}

type reportService struct {
	incidents  IncidentRepository
	summarizer Summarizer // nil, если LLM не настроен
	renderer   PDFRenderer
	summaries  *ttlcache.Cache[string, string]
	logger     *logrus.Logger
	now        func() time.Time
}

// summaryCacheCapacity - максимум сводок в памяти, старые вытесняются первыми
const summaryCacheCapacity = 128

func NewReportService(incidents IncidentRepository, summarizer Summarizer, renderer PDFRenderer, summaryTTL time.Duration, logger *logrus.Logger) ReportService {
	summaries := ttlcache.New(
		ttlcache.WithTTL[string, string](summaryTTL),
		ttlcache.WithCapacity[string, string](summaryCacheCapacity),
	)
	return &reportService{
		incidents:  incidents,
		summarizer: summarizer,
		renderer:   renderer,
		summaries:  summaries,
		logger:     logger,
		now:        time.Now,
	}
}

// Summary возвращает сводку по отфильтрованным инцидентам
func (s *reportService) Summary(ctx context.Context, filter models.IncidentFilter) (string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "report",
		"method":   "Summary",
		"location": filter.LocationName,
	})

	incidents, err := s.incidents.List(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents for summary")
		return "", fmt.Errorf("service: could not list incidents: %w", err)
	}

	summary := s.summarize(ctx, log, filter, incidents)
	log.WithField("count", len(incidents)).Info("Summary generated")
	return summary, nil
}

// summarize никогда не возвращает ошибку: при сбое LLM используется статистическая сводка
func (s *reportService) summarize(ctx context.Context, log *logrus.Entry, filter models.IncidentFilter, incidents []*models.Incident) string {
	if len(incidents) == 0 {
		return report.NoIncidentsSummary
	}
	if s.summarizer == nil {
		return report.FallbackSummary(incidents)
	}

	key := summaryKey(filter, incidents)
	if item := s.summaries.Get(key); item != nil {
		return item.Value()
	}

	summary, err := s.summarizer.Summarize(ctx, incidents)
	if err != nil || summary == "" {
		log.WithError(err).Warn("Summarizer failed, using fallback summary")
		return report.FallbackSummary(incidents)
	}

	// Ключи меняются с каждым новым инцидентом, истекшие записи чистятся при записи
	s.summaries.DeleteExpired()
	s.summaries.Set(key, summary, ttlcache.DefaultTTL)
	return summary
}

// ReportPDF формирует сводный PDF-отчет по фильтру
func (s *reportService) ReportPDF(ctx context.Context, filter models.IncidentFilter, template string) (*models.PDFDocument, error) {
	template = report.NormalizeTemplate(template)
	log := s.logger.WithFields(logrus.Fields{
		"service":  "report",
		"method":   "ReportPDF",
		"location": filter.LocationName,
		"template": template,
	})
	log.Info("Generating PDF report")

	incidents, err := s.incidents.List(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents for report")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	now := s.now()
	doc := report.Document{
		Template:    template,
		GeneratedAt: now,
		Incidents:   incidents,
	}
	// Шаблон minimal не содержит сводки, LLM не вызывается
	if template == report.TemplateDefault {
		doc.Summary = s.summarize(ctx, log, filter, incidents)
	}

	html, err := report.RenderDocumentHTML(doc)
	if err != nil {
		log.WithError(err).Error("Failed to render report html")
		return nil, fmt.Errorf("service: could not render report: %w", err)
	}

	content, err := s.renderer.Render(ctx, html)
	if err != nil {
		log.WithError(err).Error("Failed to render report pdf")
		return nil, fmt.Errorf("service: could not render pdf: %w", err)
	}

	log.WithField("bytes", len(content)).Info("PDF report generated")
	return &models.PDFDocument{
		FileName: fmt.Sprintf("informe-incidencias-%s.pdf", now.Format("2006-01-02")),
		Content:  content,
	}, nil
}

// IncidentReportHTML возвращает нормализованный HTML отчета инцидента для печати
func (s *reportService) IncidentReportHTML(ctx context.Context, id uuid.UUID) (string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "report",
		"method":      "IncidentReportHTML",
		"incident_id": id,
	})

	incident, err := s.incidents.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident for export")
		return "", fmt.Errorf("service: could not get incident: %w", err)
	}

	doc, err := export.Normalize(incident.HTMLReport)
	if err != nil {
		log.WithError(err).Warn("Incident report cannot be normalized")
		return "", fmt.Errorf("service: could not normalize report: %w", err)
	}

	html, err := export.Compose(doc)
	if err != nil {
		log.WithError(err).Error("Failed to compose export document")
		return "", fmt.Errorf("service: could not compose report: %w", err)
	}
	return html, nil
}

// ExportIncidentPDF печатает отчет одного инцидента в PDF
func (s *reportService) ExportIncidentPDF(ctx context.Context, id uuid.UUID) (*models.PDFDocument, error) {
	html, err := s.IncidentReportHTML(ctx, id)
	if err != nil {
		return nil, err
	}

	content, err := s.renderer.Render(ctx, html)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":     "report",
			"method":      "ExportIncidentPDF",
			"incident_id": id,
		}).WithError(err).Error("Failed to render incident pdf")
		return nil, fmt.Errorf("service: could not render pdf: %w", err)
	}

	return &models.PDFDocument{
		FileName: export.FileName(id, s.now()),
		Content:  content,
	}, nil
}

// summaryKey учитывает фильтр и состав выборки, чтобы новые инциденты сбрасывали сводку
func summaryKey(filter models.IncidentFilter, incidents []*models.Incident) string {
	var from, to string
	if filter.From != nil && filter.To != nil {
		from = filter.From.UTC().Format(time.RFC3339)
		to = filter.To.UTC().Format(time.RFC3339)
	}
	return fmt.Sprintf("%s|%s|%s|%d|%s", filter.LocationName, from, to, len(incidents), incidents[0].ID)
}
