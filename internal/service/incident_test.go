package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/incident_map_dashboard/internal/config"
	"github.com/shenikar/incident_map_dashboard/internal/export"
	"github.com/shenikar/incident_map_dashboard/internal/models"
	"github.com/shenikar/incident_map_dashboard/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

// newTestIncidentService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestIncidentService(t *testing.T, mode string) (*incidentService, *mocks.MockIncidentRepository, *mocks.MockLocationRepository, *mocks.MockLocationCache) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockIncidentRepository(ctrl)
	locationMock := mocks.NewMockLocationRepository(ctrl)
	cacheMock := mocks.NewMockLocationCache(ctrl)

	cfg := &config.Config{ReportHTMLMode: mode}

	svc := NewIncidentService(repoMock, locationMock, cacheMock, cfg, newTestLogger()).(*incidentService)
	svc.now = func() time.Time { return time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC) }
	return svc, repoMock, locationMock, cacheMock
}

func testLocation(name string) *models.Location {
	return &models.Location{
		ID:      uuid.New(),
		Name:    name,
		Address: "Calle de Serrano, 23, 28001 Madrid, España",
	}
}

func TestIngest_TextMode_Success(t *testing.T) {
	// Подготовка
	svc, repoMock, locationMock, cacheMock := newTestIncidentService(t, config.ReportModeText)
	ctx := context.Background()
	location := testLocation("Zara Serrano")
	incidentID := uuid.New()
	submission := &models.IncidentSubmission{
		LocationName: "Zara Serrano",
		Severity:     "medium",
		Summary:      "Incendio controlado en almacén",
		Report:       "Humo en el <almacén>.\n\nSe notificó a los bomberos.",
		Category:     " Incendio ",
	}

	// Ожидания
	locationMock.EXPECT().
		FindByName(ctx, "Zara Serrano").
		Return(location, nil).
		Times(1)

	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, incident *models.Incident) error {
			incident.ID = incidentID
			return nil
		}).
		Times(1)

	cacheMock.EXPECT().
		Invalidate(ctx).
		Return(nil).
		Times(1)

	// Действие
	incident, err := svc.Ingest(ctx, submission)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, incidentID, incident.ID)
	assert.Equal(t, location.ID, incident.LocationID)
	assert.Equal(t, location.Address, incident.LocationAddress)
	assert.Equal(t, models.SeverityMedium, incident.Severity)
	assert.Equal(t, "Incendio", incident.Category)
	assert.Contains(t, incident.HTMLReport, "Humo en el &lt;almacén&gt;.")
	assert.Contains(t, incident.HTMLReport, "Media")
	assert.Contains(t, incident.HTMLReport, "18 de octubre de 2026")
	assert.NotContains(t, incident.HTMLReport, "<almacén>")
}

func TestIngest_HTMLMode_Sanitizes(t *testing.T) {
	// Подготовка
	svc, repoMock, locationMock, cacheMock := newTestIncidentService(t, config.ReportModeHTML)
	ctx := context.Background()
	submission := &models.IncidentSubmission{
		LocationName: "Zara Serrano",
		Severity:     "High",
		Summary:      "Robo",
		Report:       `<p style="color: #000000">Robo en caja</p><script>alert(1)</script>`,
	}
	var stored *models.Incident

	// Ожидания
	locationMock.EXPECT().FindByName(ctx, "Zara Serrano").Return(testLocation("Zara Serrano"), nil)
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, incident *models.Incident) error {
			stored = incident
			return nil
		})
	cacheMock.EXPECT().Invalidate(ctx).Return(nil)

	// Действие
	_, err := svc.Ingest(ctx, submission)

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Contains(t, stored.HTMLReport, `<p style="color: #000000">Robo en caja</p>`)
	assert.NotContains(t, stored.HTMLReport, "script")
	assert.Equal(t, models.SeverityHigh, stored.Severity)
}

func TestIngest_HTMLMode_KeepsStyles(t *testing.T) {
	// Подготовка
	svc, repoMock, locationMock, cacheMock := newTestIncidentService(t, config.ReportModeHTML)
	ctx := context.Background()
	submission := &models.IncidentSubmission{
		LocationName: "Zara Serrano",
		Severity:     "High",
		Summary:      "Robo",
		Report: `<!DOCTYPE html><html><head><title>Informe</title>
<style>.severity-high { background: #e74c3c; color: #fff; } body { background: url(https://evil.example/x.png); }</style>
</head><body><table><tr><td class="severity-high">Alta</td></tr></table><script>alert(1)</script></body></html>`,
	}
	var stored *models.Incident

	// Ожидания
	locationMock.EXPECT().FindByName(ctx, "Zara Serrano").Return(testLocation("Zara Serrano"), nil)
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, incident *models.Incident) error {
			stored = incident
			return nil
		})
	cacheMock.EXPECT().Invalidate(ctx).Return(nil)

	// Действие
	_, err := svc.Ingest(ctx, submission)

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Contains(t, stored.HTMLReport, ".severity-high { background: #e74c3c; color: #fff; }")
	assert.Contains(t, stored.HTMLReport, `<td class="severity-high">Alta</td>`)
	assert.NotContains(t, stored.HTMLReport, "evil.example")
	assert.NotContains(t, stored.HTMLReport, "script")
	assert.NotContains(t, stored.HTMLReport, "<title>")

	// Стили доходят до экспорта
	doc, err := export.Normalize(stored.HTMLReport)
	require.NoError(t, err)
	require.Len(t, doc.Styles, 1)
	assert.Contains(t, doc.Styles[0], ".severity-high")
}

func TestIngest_UnknownLocation(t *testing.T) {
	// Подготовка
	svc, repoMock, locationMock, _ := newTestIncidentService(t, config.ReportModeText)
	ctx := context.Background()
	submission := &models.IncidentSubmission{
		LocationName: "Zara Desconocida",
		Severity:     "Low",
		Summary:      "Alarma",
		Report:       "Falsa alarma",
	}

	// Ожидания
	locationMock.EXPECT().
		FindByName(ctx, "Zara Desconocida").
		Return(nil, fmt.Errorf("location %q: %w", "Zara Desconocida", models.ErrNotFound)).
		Times(1)

	// Инцидент не должен создаваться
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	incident, err := svc.Ingest(ctx, submission)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, incident)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestIngest_CreateFails(t *testing.T) {
	// Подготовка
	svc, repoMock, locationMock, _ := newTestIncidentService(t, config.ReportModeText)
	ctx := context.Background()
	dbError := fmt.Errorf("connection refused")

	// Ожидания
	locationMock.EXPECT().FindByName(ctx, "Zara Serrano").Return(testLocation("Zara Serrano"), nil)
	repoMock.EXPECT().Create(ctx, gomock.Any()).Return(dbError)
	// Кэш не инвалидируется, если записи не было

	// Действие
	_, err := svc.Ingest(ctx, &models.IncidentSubmission{
		LocationName: "Zara Serrano",
		Severity:     "Low",
		Summary:      "Alarma",
		Report:       "Falsa alarma",
	})

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, dbError)
	assert.NotErrorIs(t, err, models.ErrNotFound)
}

func TestIngest_CacheFailureIsNotFatal(t *testing.T) {
	// Подготовка
	svc, repoMock, locationMock, cacheMock := newTestIncidentService(t, config.ReportModeText)
	ctx := context.Background()

	// Ожидания
	locationMock.EXPECT().FindByName(ctx, "Zara Serrano").Return(testLocation("Zara Serrano"), nil)
	repoMock.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	cacheMock.EXPECT().Invalidate(ctx).Return(fmt.Errorf("redis down"))

	// Действие
	incident, err := svc.Ingest(ctx, &models.IncidentSubmission{
		LocationName: "Zara Serrano",
		Severity:     "Critical",
		Summary:      "Corte de luz",
		Report:       "Sin suministro",
	})

	// Проверки
	require.NoError(t, err)
	// Неизвестная серьезность сохраняется как есть
	assert.Equal(t, models.Severity("Critical"), incident.Severity)
}

func TestGetIncident(t *testing.T) {
	// Подготовка
	svc, repoMock, _, _ := newTestIncidentService(t, config.ReportModeText)
	ctx := context.Background()
	incidentID := uuid.New()
	expected := &models.Incident{ID: incidentID, Summary: "Robo"}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(expected, nil).Times(1)

	// Действие
	incident, err := svc.GetIncident(ctx, incidentID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, incident)
}

func TestGetIncident_NotFound(t *testing.T) {
	// Подготовка
	svc, repoMock, _, _ := newTestIncidentService(t, config.ReportModeText)
	ctx := context.Background()
	incidentID := uuid.New()

	// Ожидания
	repoMock.EXPECT().
		GetByID(ctx, incidentID).
		Return(nil, fmt.Errorf("incident with id %s: %w", incidentID, models.ErrNotFound))

	// Действие
	incident, err := svc.GetIncident(ctx, incidentID)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, incident)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
