package service

//go:generate mockgen -source=stats.go -destination=mocks/stats_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/incident_map_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	// StatsRecentWindow - период для счетчика последних инцидентов
	StatsRecentWindow = 7 * 24 * time.Hour
	// StatsTopLocations - сколько локаций показывать в рейтинге
	StatsTopLocations = 3
)

// StatsRepository определяет контракт агрегатных запросов по инцидентам
type StatsRepository interface {
	Stats(ctx context.Context, since time.Time, topLocations int) (*models.IncidentStats, error)
}

// StatsService определяет контракт панели статистики
type StatsService interface {
	IncidentStats(ctx context.Context) (*models.IncidentStats, error)
}

type statsService struct {
	repo   StatsRepository
	logger *logrus.Logger
	now    func() time.Time
}

func NewStatsService(repo StatsRepository, logger *logrus.Logger) StatsService {
	return &statsService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// IncidentStats возвращает общее число, число за последние 7 дней,
// разбивку по серьезности и топ-3 локаций
func (s *statsService) IncidentStats(ctx context.Context) (*models.IncidentStats, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "stats",
		"method":  "IncidentStats",
	})

	stats, err := s.repo.Stats(ctx, s.now().Add(-StatsRecentWindow), StatsTopLocations)
	if err != nil {
		log.WithError(err).Error("Failed to get incident stats from repository")
		return nil, fmt.Errorf("service: could not get incident stats: %w", err)
	}

	if stats.BySeverity == nil {
		stats.BySeverity = map[string]int64{}
	}
	if stats.ByLocation == nil {
		stats.ByLocation = []models.LocationCount{}
	}
	if len(stats.ByLocation) > StatsTopLocations {
		stats.ByLocation = stats.ByLocation[:StatsTopLocations]
	}

	log.WithField("total", stats.Total).Debug("Incident stats calculated")
	return stats, nil
}
