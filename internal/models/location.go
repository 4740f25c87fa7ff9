package models

import (
	"time"

	"github.com/google/uuid"
)

// Location - отслеживаемый магазин с координатами и историей инцидентов
type Location struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Address   string      `json:"address"`
	Latitude  float64     `json:"latitude"`
	Longitude float64     `json:"longitude"`
	CreatedAt time.Time   `json:"created_at"`
	Incidents []*Incident `json:"incidents"`
}
