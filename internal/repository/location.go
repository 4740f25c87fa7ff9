package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/incident_map_dashboard/internal/models"
	"github.com/shenikar/incident_map_dashboard/internal/service"
)

type LocationRepository struct {
	db *pgxpool.Pool
}

func NewLocationRepository(db *pgxpool.Pool) service.LocationRepository {
	return &LocationRepository{db: db}
}

// Create добавляет локацию
func (r *LocationRepository) Create(ctx context.Context, location *models.Location) error {
	query := `
		INSERT INTO locations (name, address, latitude, longitude)
		VALUES ($1, $2, $3, $4) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		location.Name,
		location.Address,
		location.Latitude,
		location.Longitude,
	).Scan(&location.ID, &location.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create location: %w", err)
	}
	return nil
}

// FindByName ищет локацию по точному имени. При дубликатах берется самая ранняя.
func (r *LocationRepository) FindByName(ctx context.Context, name string) (*models.Location, error) {
	query := `
		SELECT id, name, address, latitude, longitude, created_at
		FROM locations
		WHERE name = $1
		ORDER BY created_at ASC
		LIMIT 1;
	`
	location := &models.Location{}
	err := r.db.QueryRow(ctx, query, name).Scan(
		&location.ID,
		&location.Name,
		&location.Address,
		&location.Latitude,
		&location.Longitude,
		&location.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("location %q: %w", name, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find location by name: %w", err)
	}
	return location, nil
}

// List возвращает все локации с вложенными инцидентами (новые первыми)
func (r *LocationRepository) List(ctx context.Context) ([]*models.Location, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, address, latitude, longitude, created_at
		FROM locations
		ORDER BY name, created_at;
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	defer rows.Close()

	locations := make([]*models.Location, 0)
	byID := make(map[uuid.UUID]*models.Location)
	for rows.Next() {
		location := &models.Location{Incidents: make([]*models.Incident, 0)}
		if err := rows.Scan(
			&location.ID,
			&location.Name,
			&location.Address,
			&location.Latitude,
			&location.Longitude,
			&location.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan location row: %w", err)
		}
		locations = append(locations, location)
		byID[location.ID] = location
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error location iteration: %w", err)
	}

	incRows, err := r.db.Query(ctx, `SELECT`+incidentColumns+`
		FROM incidents i
		JOIN locations l ON l.id = i.location_id
		ORDER BY i.created_at DESC;
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list location incidents: %w", err)
	}
	defer incRows.Close()

	for incRows.Next() {
		incident, err := scanIncident(incRows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		if location, ok := byID[incident.LocationID]; ok {
			location.Incidents = append(location.Incidents, incident)
		}
	}
	if err := incRows.Err(); err != nil {
		return nil, fmt.Errorf("error incident iteration: %w", err)
	}
	return locations, nil
}

// Count возвращает количество локаций
func (r *LocationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM locations;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count locations: %w", err)
	}
	return count, nil
}
