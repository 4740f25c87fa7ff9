package service

//go:generate mockgen -source=location.go -destination=mocks/location_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sort"

	"github.com/shenikar/incident_map_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

// LocationRepository определяет контракт для работы с бд локаций
type LocationRepository interface {
	Create(ctx context.Context, location *models.Location) error
	FindByName(ctx context.Context, name string) (*models.Location, error)
	List(ctx context.Context) ([]*models.Location, error)
	Count(ctx context.Context) (int64, error)
}

// LocationCache - кэш снимка списка локаций. Промах возвращает (nil, nil).
type LocationCache interface {
	Get(ctx context.Context) ([]*models.Location, error)
	Set(ctx context.Context, locations []*models.Location) error
	Invalidate(ctx context.Context) error
}

// LocationService отдает локации с историей инцидентов для карты
type LocationService interface {
	ListLocations(ctx context.Context) ([]*models.Location, error)
}

type locationService struct {
	repo   LocationRepository
	cache  LocationCache
	logger *logrus.Logger
}

func NewLocationService(repo LocationRepository, cache LocationCache, logger *logrus.Logger) LocationService {
	return &locationService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// ListLocations возвращает все локации, инциденты внутри отсортированы от новых к старым
func (s *locationService) ListLocations(ctx context.Context) ([]*models.Location, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "location",
		"method":  "ListLocations",
	})

	cached, err := s.cache.Get(ctx)
	if err != nil {
		// Ошибка кэша не должна ломать чтение
		log.WithError(err).Warn("Failed to read locations from cache")
	} else if cached != nil {
		log.WithField("count", len(cached)).Debug("Locations served from cache")
		return cached, nil
	}

	locations, err := s.repo.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list locations from repository")
		return nil, fmt.Errorf("service: could not list locations: %w", err)
	}
	for _, location := range locations {
		sortNewestFirst(location.Incidents)
	}

	if err := s.cache.Set(ctx, locations); err != nil {
		log.WithError(err).Warn("Failed to store locations in cache")
	}

	log.WithField("count", len(locations)).Info("Locations listed successfully")
	return locations, nil
}

func sortNewestFirst(incidents []*models.Incident) {
	sort.SliceStable(incidents, func(i, j int) bool {
		return incidents[i].CreatedAt.After(incidents[j].CreatedAt)
	})
}
