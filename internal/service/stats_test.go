package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shenikar/incident_map_dashboard/internal/models"
	"github.com/shenikar/incident_map_dashboard/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var statsNow = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func newTestStatsService(t *testing.T) (*statsService, *mocks.MockStatsRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockStatsRepository(ctrl)
	svc := NewStatsService(repoMock, newTestLogger()).(*statsService)
	svc.now = func() time.Time { return statsNow }
	return svc, repoMock
}

func TestIncidentStats_Success(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestStatsService(t)
	ctx := context.Background()
	expected := &models.IncidentStats{
		Total:      6,
		Recent:     2,
		BySeverity: map[string]int64{"High": 2, "Medium": 3, "Low": 1},
		ByLocation: []models.LocationCount{
			{LocationName: "Zara Serrano", Count: 3},
			{LocationName: "Zara Gran Via", Count: 2},
			{LocationName: "Zara Castellana", Count: 1},
		},
	}

	// Ожидания
	// Окно последних инцидентов - 7 дней, в рейтинге 3 локации
	repoMock.EXPECT().
		Stats(ctx, statsNow.Add(-7*24*time.Hour), 3).
		Return(expected, nil).
		Times(1)

	// Действие
	stats, err := svc.IncidentStats(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(6), stats.Total)
	assert.Equal(t, int64(2), stats.Recent)
	assert.Equal(t, int64(3), stats.BySeverity["Medium"])
	assert.Len(t, stats.ByLocation, 3)
	assert.Equal(t, "Zara Serrano", stats.ByLocation[0].LocationName)
}

func TestIncidentStats_EmptyDatabase(t *testing.T) {
	svc, repoMock := newTestStatsService(t)
	ctx := context.Background()

	repoMock.EXPECT().Stats(ctx, gomock.Any(), gomock.Any()).Return(&models.IncidentStats{}, nil)

	stats, err := svc.IncidentStats(ctx)

	require.NoError(t, err)
	assert.Zero(t, stats.Total)
	assert.NotNil(t, stats.BySeverity)
	assert.NotNil(t, stats.ByLocation)
}

func TestIncidentStats_TopLocationsAreCapped(t *testing.T) {
	svc, repoMock := newTestStatsService(t)
	ctx := context.Background()

	repoMock.EXPECT().Stats(ctx, gomock.Any(), gomock.Any()).Return(&models.IncidentStats{
		ByLocation: []models.LocationCount{
			{LocationName: "A", Count: 4},
			{LocationName: "B", Count: 3},
			{LocationName: "C", Count: 2},
			{LocationName: "D", Count: 1},
		},
	}, nil)

	stats, err := svc.IncidentStats(ctx)

	require.NoError(t, err)
	assert.Len(t, stats.ByLocation, 3)
}

func TestIncidentStats_RepositoryError(t *testing.T) {
	svc, repoMock := newTestStatsService(t)
	ctx := context.Background()
	dbError := fmt.Errorf("connection refused")

	repoMock.EXPECT().Stats(ctx, gomock.Any(), gomock.Any()).Return(nil, dbError)

	_, err := svc.IncidentStats(ctx)

	assert.ErrorIs(t, err, dbError)
}
