package service

//go:generate mockgen -source=incident.go -destination=mocks/incident_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/incident_map_dashboard/internal/config"
	"github.com/shenikar/incident_map_dashboard/internal/export"
	"github.com/shenikar/incident_map_dashboard/internal/models"
	"github.com/shenikar/incident_map_dashboard/internal/report"
	"github.com/sirupsen/logrus"
)

// IncidentRepository определяет контракт для работы с бд инцидентов
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	List(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error)
	DeleteAll(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// IncidentService определяет контракт приема инцидентов через вебхук
type IncidentService interface {
	Ingest(ctx context.Context, submission *models.IncidentSubmission) (*models.Incident, error)
	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
}

type incidentService struct {
	repo       IncidentRepository
	locations  LocationRepository
	cache      LocationCache
	reportMode string
	logger     *logrus.Logger
	now        func() time.Time
}

func NewIncidentService(repo IncidentRepository, locations LocationRepository, cache LocationCache, cfg *config.Config, logger *logrus.Logger) IncidentService {
	return &incidentService{
		repo:       repo,
		locations:  locations,
		cache:      cache,
		reportMode: cfg.ReportHTMLMode,
		logger:     logger,
		now:        time.Now,
	}
}

// Ingest привязывает отчет к локации по имени и сохраняет инцидент
func (s *incidentService) Ingest(ctx context.Context, submission *models.IncidentSubmission) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "incident",
		"method":   "Ingest",
		"location": submission.LocationName,
	})
	log.Info("Attempting to ingest a new incident")

	location, err := s.locations.FindByName(ctx, submission.LocationName)
	if err != nil {
		log.WithError(err).Warn("Location lookup failed")
		return nil, fmt.Errorf("service: could not resolve location: %w", err)
	}

	severity := models.ParseSeverity(submission.Severity)
	htmlReport, err := s.buildReport(location, severity, submission)
	if err != nil {
		log.WithError(err).Error("Failed to build incident report")
		return nil, fmt.Errorf("service: could not build report: %w", err)
	}

	incident := &models.Incident{
		LocationID:      location.ID,
		LocationName:    location.Name,
		LocationAddress: location.Address,
		Summary:         submission.Summary,
		Severity:        severity,
		Category:        strings.TrimSpace(submission.Category),
		HTMLReport:      htmlReport,
	}
	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return nil, fmt.Errorf("service: could not create incident: %w", err)
	}

	if err := s.cache.Invalidate(ctx); err != nil {
		log.WithError(err).Warn("Failed to invalidate locations cache")
	}

	log.WithField("incident_id", incident.ID).Info("Incident created successfully")
	return incident, nil
}

// buildReport в текстовом режиме экранирует текст и оборачивает его в шаблон,
// в режиме html очищает присланную разметку вместе с ее стилями.
func (s *incidentService) buildReport(location *models.Location, severity models.Severity, submission *models.IncidentSubmission) (string, error) {
	if s.reportMode == config.ReportModeHTML {
		return export.SanitizeReportDocument(submission.Report), nil
	}
	return report.RenderIncidentHTML(report.IncidentReport{
		LocationName: location.Name,
		Severity:     severity,
		Summary:      submission.Summary,
		Body:         submission.Report,
		GeneratedAt:  s.now(),
	})
}

// GetIncident получает инцидент по ID
func (s *incidentService) GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})
	log.Info("Fetching incident by ID")

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to get incident in repository")
		return nil, fmt.Errorf("service: not get incident: %w", err)
	}

	log.Info("Incident fetched successfully")
	return incident, nil
}
