package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/incident_map_dashboard/internal/models"
	"github.com/shenikar/incident_map_dashboard/internal/service"
)

// StatsRepository считает агрегаты по таблице инцидентов
type StatsRepository struct {
	db *pgxpool.Pool
}

func NewStatsRepository(db *pgxpool.Pool) service.StatsRepository {
	return &StatsRepository{db: db}
}

// Stats возвращает общее число инцидентов, число с момента since,
// разбивку по серьезности и topLocations локаций с наибольшим числом инцидентов
func (r *StatsRepository) Stats(ctx context.Context, since time.Time, topLocations int) (*models.IncidentStats, error) {
	stats := &models.IncidentStats{
		BySeverity: map[string]int64{},
		ByLocation: []models.LocationCount{},
	}

	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE created_at >= $1)
		FROM incidents;`, since).Scan(&stats.Total, &stats.Recent)
	if err != nil {
		return nil, fmt.Errorf("failed to count incidents: %w", err)
	}

	rows, err := r.db.Query(ctx, `SELECT severity, COUNT(*) FROM incidents GROUP BY severity;`)
	if err != nil {
		return nil, fmt.Errorf("failed to group incidents by severity: %w", err)
	}
	for rows.Next() {
		var severity string
		var count int64
		if err := rows.Scan(&severity, &count); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan severity row: %w", err)
		}
		stats.BySeverity[severity] = count
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error severity iteration: %w", err)
	}

	rows, err = r.db.Query(ctx, `
		SELECT l.name, COUNT(*) AS total
		FROM incidents i
		JOIN locations l ON l.id = i.location_id
		GROUP BY l.name
		ORDER BY total DESC, l.name ASC
		LIMIT $1;`, topLocations)
	if err != nil {
		return nil, fmt.Errorf("failed to group incidents by location: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var lc models.LocationCount
		if err := rows.Scan(&lc.LocationName, &lc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan location row: %w", err)
		}
		stats.ByLocation = append(stats.ByLocation, lc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error location iteration: %w", err)
	}

	return stats, nil
}
