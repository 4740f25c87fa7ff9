package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/incident_map_dashboard/internal/models"
	"github.com/shenikar/incident_map_dashboard/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAdminService(t *testing.T, examples []models.IncidentSubmission) (AdminService, *mocks.MockIncidentRepository, *mocks.MockLocationRepository, *mocks.MockLocationCache) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockIncidentRepository(ctrl)
	locationMock := mocks.NewMockLocationRepository(ctrl)
	cacheMock := mocks.NewMockLocationCache(ctrl)
	svc := NewAdminService(repoMock, locationMock, cacheMock, examples, newTestLogger())
	return svc, repoMock, locationMock, cacheMock
}

func TestAddExampleIncidents_PartialFailure(t *testing.T) {
	// Подготовка
	examples := []models.IncidentSubmission{
		{LocationName: "A", Severity: "Medium", Summary: "Incidente A"},
		{LocationName: "B", Severity: "Low", Summary: "Incidente B"},
		{LocationName: "C", Severity: "High", Summary: "Incidente C"},
	}
	svc, repoMock, locationMock, cacheMock := newTestAdminService(t, examples)
	ctx := context.Background()

	// Ожидания
	// Существуют только локации A и B
	locationMock.EXPECT().FindByName(ctx, "A").Return(testLocation("A"), nil)
	locationMock.EXPECT().FindByName(ctx, "B").Return(testLocation("B"), nil)
	locationMock.EXPECT().
		FindByName(ctx, "C").
		Return(nil, fmt.Errorf("location %q: %w", "C", models.ErrNotFound))

	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, incident *models.Incident) error {
			incident.ID = uuid.New()
			return nil
		}).
		Times(2)

	cacheMock.EXPECT().Invalidate(ctx).Return(nil).Times(1)

	// Действие
	result, err := svc.AddExampleIncidents(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 2, result.Success)
	assert.Equal(t, 1, result.Errors)
	assert.Equal(t, []string{`Ubicación "C" no encontrada`}, result.ErrorsList)
	require.Len(t, result.Created, 2)
	assert.Equal(t, "A", result.Created[0].LocationName)
	assert.Equal(t, models.SeverityLow, result.Created[1].Severity)
}

func TestAddExampleIncidents_InsertFailureContinues(t *testing.T) {
	// Подготовка
	examples := []models.IncidentSubmission{
		{LocationName: "A", Severity: "Medium", Summary: "Incidente A"},
		{LocationName: "B", Severity: "Low", Summary: "Incidente B"},
	}
	svc, repoMock, locationMock, cacheMock := newTestAdminService(t, examples)
	ctx := context.Background()

	// Ожидания
	locationMock.EXPECT().FindByName(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, name string) (*models.Location, error) {
			return testLocation(name), nil
		}).
		Times(2)
	gomock.InOrder(
		repoMock.EXPECT().Create(ctx, gomock.Any()).Return(fmt.Errorf("constraint violation")),
		repoMock.EXPECT().Create(ctx, gomock.Any()).Return(nil),
	)
	cacheMock.EXPECT().Invalidate(ctx).Return(nil)

	// Действие
	result, err := svc.AddExampleIncidents(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 1, result.Success)
	assert.Equal(t, 1, result.Errors)
	assert.Equal(t, []string{"Error al crear incidente: constraint violation"}, result.ErrorsList)
}

func TestClearIncidents_Idempotent(t *testing.T) {
	// Подготовка
	svc, repoMock, _, cacheMock := newTestAdminService(t, nil)
	ctx := context.Background()

	// Ожидания
	gomock.InOrder(
		repoMock.EXPECT().DeleteAll(ctx).Return(int64(3), nil),
		repoMock.EXPECT().DeleteAll(ctx).Return(int64(0), nil),
	)
	cacheMock.EXPECT().Invalidate(ctx).Return(nil).Times(2)

	// Действие
	first, err1 := svc.ClearIncidents(ctx)
	second, err2 := svc.ClearIncidents(ctx)

	// Проверки
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, int64(3), first)
	assert.Equal(t, int64(0), second)
}

func TestClearIncidents_Error(t *testing.T) {
	// Подготовка
	svc, repoMock, _, _ := newTestAdminService(t, nil)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().DeleteAll(ctx).Return(int64(0), fmt.Errorf("connection refused"))

	// Действие
	deleted, err := svc.ClearIncidents(ctx)

	// Проверки
	require.Error(t, err)
	assert.Zero(t, deleted)
}

func TestCountIncidents(t *testing.T) {
	// Подготовка
	svc, repoMock, _, _ := newTestAdminService(t, nil)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().Count(ctx).Return(int64(7), nil)

	// Действие
	count, err := svc.CountIncidents(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
}
