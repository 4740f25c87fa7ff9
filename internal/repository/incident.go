package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/incident_map_dashboard/internal/models"
	"github.com/shenikar/incident_map_dashboard/internal/service"
)

const incidentColumns = `
	i.id,
	i.location_id,
	l.name,
	l.address,
	i.summary,
	i.severity,
	COALESCE(i.category, ''),
	i.html_report,
	i.created_at
`

type IncidentRepository struct {
	db *pgxpool.Pool
}

func NewIncidentRepository(db *pgxpool.Pool) service.IncidentRepository {
	return &IncidentRepository{db: db}
}

// Create создает новую запись об инциденте в бд
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	query := `
		INSERT INTO incidents (location_id, summary, severity, category, html_report)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		incident.LocationID,
		incident.Summary,
		string(incident.Severity),
		incident.Category,
		incident.HTMLReport,
	).Scan(&incident.ID, &incident.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// GetByID возвращает инцидент по его UUID вместе с именем и адресом локации
func (r *IncidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	query := `SELECT` + incidentColumns + `
		FROM incidents i
		JOIN locations l ON l.id = i.location_id
		WHERE i.id = $1;
	`
	incident, err := scanIncident(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

// List возвращает инциденты по фильтру, новые первыми
func (r *IncidentRepository) List(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error) {
	var (
		conditions []string
		args       []any
	)
	if filter.LocationName != "" {
		args = append(args, filter.LocationName)
		conditions = append(conditions, fmt.Sprintf("l.name = $%d", len(args)))
	}
	// Период применяется только если заданы обе границы
	if filter.From != nil && filter.To != nil {
		args = append(args, *filter.From, *filter.To)
		conditions = append(conditions, fmt.Sprintf("i.created_at BETWEEN $%d AND $%d", len(args)-1, len(args)))
	}

	query := `SELECT` + incidentColumns + `
		FROM incidents i
		JOIN locations l ON l.id = i.location_id`
	if len(conditions) > 0 {
		query += "\n\t\tWHERE " + strings.Join(conditions, " AND ")
	}
	query += "\n\t\tORDER BY i.created_at DESC;"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

// DeleteAll удаляет все инциденты и возвращает количество удаленных строк.
// Локации не затрагиваются.
func (r *IncidentRepository) DeleteAll(ctx context.Context) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM incidents;`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete incidents: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// Count возвращает общее количество инцидентов
func (r *IncidentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM incidents;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count incidents: %w", err)
	}
	return count, nil
}

func scanIncident(row pgx.Row) (*models.Incident, error) {
	incident := &models.Incident{}
	var severity string
	err := row.Scan(
		&incident.ID,
		&incident.LocationID,
		&incident.LocationName,
		&incident.LocationAddress,
		&incident.Summary,
		&severity,
		&incident.Category,
		&incident.HTMLReport,
		&incident.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	incident.Severity = models.Severity(severity)
	return incident, nil
}
