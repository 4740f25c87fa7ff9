package seed

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shenikar/incident_map_dashboard/internal/models"
	"github.com/shenikar/incident_map_dashboard/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSeeder(t *testing.T) (*Seeder, *mocks.MockLocationRepository, *mocks.MockIncidentRepository, *mocks.MockAdminService) {
	ctrl := gomock.NewController(t)
	locationMock := mocks.NewMockLocationRepository(ctrl)
	incidentMock := mocks.NewMockIncidentRepository(ctrl)
	adminMock := mocks.NewMockAdminService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return NewSeeder(locationMock, incidentMock, adminMock, logger), locationMock, incidentMock, adminMock
}

func TestExampleIncidents(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	incidents := ExampleIncidents(now)

	require.Len(t, incidents, 3)
	names := make(map[string]bool)
	for _, inc := range incidents {
		names[inc.LocationName] = true
		assert.NotEmpty(t, inc.Summary)
		assert.NotEmpty(t, inc.Category)
		assert.Contains(t, inc.Report, "2026-10-18")
		assert.Contains(t, inc.Report, "<table")
	}
	for _, location := range Locations() {
		assert.True(t, names[location.Name], location.Name)
	}
	assert.Contains(t, incidents[0].Report, "<td style=\"border: 1px solid #000000; padding: 10px; color: #000000;\">Media</td>")
}

func TestRun_EmptyDatabase(t *testing.T) {
	// Подготовка
	seeder, locationMock, incidentMock, adminMock := newTestSeeder(t)
	ctx := context.Background()

	// Ожидания
	locationMock.EXPECT().Count(ctx).Return(int64(0), nil)
	incidentMock.EXPECT().Count(ctx).Return(int64(0), nil)
	locationMock.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(3)
	adminMock.EXPECT().AddExampleIncidents(ctx).Return(&models.BatchResult{Success: 3}, nil)

	// Действие
	seeded, err := seeder.Run(ctx)

	// Проверки
	require.NoError(t, err)
	assert.True(t, seeded)
}

func TestRun_SkipsWhenNotEmpty(t *testing.T) {
	// Подготовка
	seeder, locationMock, incidentMock, adminMock := newTestSeeder(t)
	ctx := context.Background()

	// Ожидания
	locationMock.EXPECT().Count(ctx).Return(int64(3), nil)
	incidentMock.EXPECT().Count(ctx).Return(int64(0), nil)
	locationMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
	adminMock.EXPECT().AddExampleIncidents(gomock.Any()).Times(0)

	// Действие
	seeded, err := seeder.Run(ctx)

	// Проверки
	require.NoError(t, err)
	assert.False(t, seeded)
}
