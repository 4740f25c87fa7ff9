package seed

import (
	"context"
	"fmt"

	"github.com/shenikar/incident_map_dashboard/internal/service"
	"github.com/sirupsen/logrus"
)

// Seeder заполняет пустую базу локациями и примерами инцидентов
type Seeder struct {
	locations service.LocationRepository
	incidents service.IncidentRepository
	admin     service.AdminService
	logger    *logrus.Logger
}

func NewSeeder(locations service.LocationRepository, incidents service.IncidentRepository, admin service.AdminService, logger *logrus.Logger) *Seeder {
	return &Seeder{
		locations: locations,
		incidents: incidents,
		admin:     admin,
		logger:    logger,
	}
}

// Run ничего не делает, если в любой из таблиц уже есть данные.
// Возвращает true, если данные были вставлены.
func (s *Seeder) Run(ctx context.Context) (bool, error) {
	log := s.logger.WithField("component", "seed")

	locationCount, err := s.locations.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("seed: could not count locations: %w", err)
	}
	incidentCount, err := s.incidents.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("seed: could not count incidents: %w", err)
	}
	if locationCount > 0 || incidentCount > 0 {
		log.WithFields(logrus.Fields{
			"locations": locationCount,
			"incidents": incidentCount,
		}).Info("Database is not empty, skipping seed")
		return false, nil
	}

	for _, location := range Locations() {
		if err := s.locations.Create(ctx, location); err != nil {
			return false, fmt.Errorf("seed: could not create location %q: %w", location.Name, err)
		}
		log.WithField("location", location.Name).Info("Location created")
	}

	result, err := s.admin.AddExampleIncidents(ctx)
	if err != nil {
		return false, fmt.Errorf("seed: could not add example incidents: %w", err)
	}
	log.WithFields(logrus.Fields{
		"created": result.Success,
		"errors":  result.Errors,
	}).Info("Seed completed")
	return true, nil
}
