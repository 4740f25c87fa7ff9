package service

//go:generate mockgen -source=admin.go -destination=mocks/admin_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/shenikar/incident_map_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

// AdminService - операции обслуживания: примеры инцидентов и очистка
type AdminService interface {
	AddExampleIncidents(ctx context.Context) (*models.BatchResult, error)
	ClearIncidents(ctx context.Context) (int64, error)
	CountIncidents(ctx context.Context) (int64, error)
}

type adminService struct {
	incidents IncidentRepository
	locations LocationRepository
	cache     LocationCache
	examples  []models.IncidentSubmission
	logger    *logrus.Logger
}

func NewAdminService(incidents IncidentRepository, locations LocationRepository, cache LocationCache, examples []models.IncidentSubmission, logger *logrus.Logger) AdminService {
	return &adminService{
		incidents: incidents,
		locations: locations,
		cache:     cache,
		examples:  examples,
		logger:    logger,
	}
}

// AddExampleIncidents вставляет фиксированный набор примеров.
// Ошибка по одному элементу записывается в результат, пакет продолжается.
func (s *adminService) AddExampleIncidents(ctx context.Context) (*models.BatchResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "admin",
		"method":  "AddExampleIncidents",
		"total":   len(s.examples),
	})
	log.Info("Adding example incidents")

	result := &models.BatchResult{
		Created:    make([]*models.Incident, 0, len(s.examples)),
		ErrorsList: make([]string, 0),
	}
	for _, example := range s.examples {
		location, err := s.locations.FindByName(ctx, example.LocationName)
		if err != nil {
			result.Errors++
			if errors.Is(err, models.ErrNotFound) {
				result.ErrorsList = append(result.ErrorsList, fmt.Sprintf("Ubicación %q no encontrada", example.LocationName))
			} else {
				result.ErrorsList = append(result.ErrorsList, fmt.Sprintf("Error al crear incidente: %v", err))
			}
			log.WithError(err).WithField("location", example.LocationName).Warn("Skipping example incident")
			continue
		}

		incident := &models.Incident{
			LocationID:      location.ID,
			LocationName:    location.Name,
			LocationAddress: location.Address,
			Summary:         example.Summary,
			Severity:        models.ParseSeverity(example.Severity),
			Category:        example.Category,
			HTMLReport:      example.Report,
		}
		if err := s.incidents.Create(ctx, incident); err != nil {
			result.Errors++
			result.ErrorsList = append(result.ErrorsList, fmt.Sprintf("Error al crear incidente: %v", err))
			log.WithError(err).WithField("location", example.LocationName).Warn("Failed to create example incident")
			continue
		}

		result.Success++
		result.Created = append(result.Created, incident)
	}

	if result.Success > 0 {
		if err := s.cache.Invalidate(ctx); err != nil {
			log.WithError(err).Warn("Failed to invalidate locations cache")
		}
	}

	log.WithFields(logrus.Fields{
		"success": result.Success,
		"errors":  result.Errors,
	}).Info("Example incidents processed")
	return result, nil
}

// ClearIncidents удаляет все инциденты, локации остаются
func (s *adminService) ClearIncidents(ctx context.Context) (int64, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "admin",
		"method":  "ClearIncidents",
	})
	log.Warn("Deleting all incidents")

	deleted, err := s.incidents.DeleteAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to delete incidents")
		return 0, fmt.Errorf("service: could not clear incidents: %w", err)
	}

	if err := s.cache.Invalidate(ctx); err != nil {
		log.WithError(err).Warn("Failed to invalidate locations cache")
	}

	log.WithField("deleted", deleted).Info("Incidents deleted")
	return deleted, nil
}

// CountIncidents возвращает количество инцидентов без изменений данных
func (s *adminService) CountIncidents(ctx context.Context) (int64, error) {
	count, err := s.incidents.Count(ctx)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "admin",
			"method":  "CountIncidents",
		}).WithError(err).Error("Failed to count incidents")
		return 0, fmt.Errorf("service: could not count incidents: %w", err)
	}
	return count, nil
}
