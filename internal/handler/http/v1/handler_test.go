package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch/internal/config"
	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/shenikar/emergency_dispatch/internal/service"
	"github.com/shenikar/emergency_dispatch/internal/service/mocks"
	"github.com/shenikar/emergency_dispatch/pkg/e"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var authHeader = map[string]string{"X-API-Key": "test-api-key"}

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockDispatchService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockDispatchService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys:        []string{"test-api-key"},
		StorageBackend: config.StorageMemory,
	}

	handler := NewHandler(mockService, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func ptr[T any](v T) *T { return &v }

func TestAuth_MissingAndInvalidKey(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/alerts", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")

	w = makeRequest(router, http.MethodGet, "/api/v1/alerts", nil, map[string]string{"X-API-Key": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestAuth_BearerToken(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().ListStations(gomock.Any()).Return([]*models.Station{}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/stations", nil, map[string]string{"Authorization": "Bearer test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealthCheck_IsPublic(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","storage":"memory"}`, w.Body.String())
}

func TestCreateAlert_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reporter := uuid.New()
	alert, err := models.NewAlert(&reporter, 12.9710, 77.5940, "fire", models.Extensions{"floor": 3.0}, time.Now().UTC())
	require.NoError(t, err)

	mockService.EXPECT().
		CreateAlert(gomock.Any(), &reporter, 12.9710, 77.5940, "fire", models.Extensions{"floor": 3.0}).
		Return(alert, nil)

	body := jsonBody(t, CreateAlertRequest{
		ReporterID: &reporter,
		Latitude:   ptr(12.9710),
		Longitude:  ptr(77.5940),
		Category:   "fire",
		Metadata:   map[string]any{"floor": 3},
	})
	w := makeRequest(router, http.MethodPost, "/api/v1/alerts", body, authHeader)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp AlertResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, alert.ID, resp.ID)
	assert.Equal(t, "created", resp.Status)
	assert.Equal(t, alert.Cell.String(), resp.Cell)
}

func TestCreateAlert_ZeroCoordinatesAccepted(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	alert, err := models.NewAlert(nil, 0, 0, "medical", nil, time.Now())
	require.NoError(t, err)

	mockService.EXPECT().CreateAlert(gomock.Any(), nil, 0.0, 0.0, "medical", gomock.Any()).Return(alert, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/alerts",
		strings.NewReader(`{"latitude":0,"longitude":0,"category":"medical"}`), authHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateAlert_ValidationErrors(t *testing.T) {
	_, _, router := newTestHandler(t)

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"latitude":`},
		{"missing latitude", `{"longitude":1,"category":"fire"}`},
		{"latitude out of range", `{"latitude":91,"longitude":1,"category":"fire"}`},
		{"longitude out of range", `{"latitude":1,"longitude":-181,"category":"fire"}`},
		{"missing category", `{"latitude":1,"longitude":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := makeRequest(router, http.MethodPost, "/api/v1/alerts", strings.NewReader(tt.body), authHeader)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCreateAlert_ServiceRejectsMetadata(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().CreateAlert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("models.NewAlert: nested value: %w", e.ErrInvalidInput))

	w := makeRequest(router, http.MethodPost, "/api/v1/alerts",
		strings.NewReader(`{"latitude":1,"longitude":1,"category":"fire","metadata":{"a":{"b":1}}}`), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListAlerts(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	alert, err := models.NewAlert(nil, 1, 1, "fire", nil, time.Now())
	require.NoError(t, err)

	mockService.EXPECT().ListAlerts(gomock.Any(), models.AlertCreated, 2, 5).Return([]*models.Alert{alert}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/alerts?status=created&page=2&pageSize=5", nil, authHeader)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []AlertResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, alert.ID, resp[0].ID)
}

func TestListAlerts_InvalidStatus(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/alerts?status=burning", nil, authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAlert_Errors(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/alerts/not-a-uuid", nil, authHeader)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	id := uuid.New()
	mockService.EXPECT().GetAlert(gomock.Any(), id).Return(nil, e.Wrap("memory.AlertStore.Get", e.ErrNotFound))
	w = makeRequest(router, http.MethodGet, "/api/v1/alerts/"+id.String(), nil, authHeader)
	assert.Equal(t, http.StatusNotFound, w.Code)

	id = uuid.New()
	mockService.EXPECT().GetAlert(gomock.Any(), id).Return(nil, errors.New("connection reset"))
	w = makeRequest(router, http.MethodGet, "/api/v1/alerts/"+id.String(), nil, authHeader)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection reset")
}

func TestAssignAlert_Assigned(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	alertID, unitID, stationID := uuid.New(), uuid.New(), uuid.New()

	mockService.EXPECT().
		Assign(gomock.Any(), alertID, service.AssignOptions{RadiusMeters: 2500, MaxCandidates: 3, Require: map[string]any{"medical": true}}).
		Return(models.AssignResult{
			Status:         models.AssignStatusAssigned,
			AlertID:        alertID,
			UnitID:         unitID,
			StationID:      &stationID,
			DistanceMeters: 310.5,
			Attempts:       1,
		}, nil)

	body := strings.NewReader(`{"radius_meters":2500,"max_candidates":3,"require":{"medical":true}}`)
	w := makeRequest(router, http.MethodPost, "/api/v1/alerts/"+alertID.String()+"/assign", body, authHeader)

	require.Equal(t, http.StatusOK, w.Code)
	var resp AssignResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "assigned", resp.Status)
	require.NotNil(t, resp.UnitID)
	assert.Equal(t, unitID, *resp.UnitID)
	assert.Equal(t, &stationID, resp.StationID)
	assert.InDelta(t, 310.5, resp.DistanceMeters, 1e-9)
}

func TestAssignAlert_EmptyBodyUnassigned(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	alertID := uuid.New()

	mockService.EXPECT().Assign(gomock.Any(), alertID, service.AssignOptions{}).
		Return(models.AssignResult{Status: models.AssignStatusUnassigned, AlertID: alertID}, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/alerts/"+alertID.String()+"/assign", nil, authHeader)

	require.Equal(t, http.StatusOK, w.Code)
	var raw map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.Equal(t, "unassigned", raw["status"])
	assert.NotContains(t, raw, "unit_id")
}

func TestAssignAlert_InvalidOptions(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodPost, "/api/v1/alerts/"+uuid.NewString()+"/assign",
		strings.NewReader(`{"radius_meters":-5}`), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAssignAlert_NotAwaitingAssignment(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	alertID := uuid.New()

	mockService.EXPECT().Assign(gomock.Any(), alertID, gomock.Any()).
		Return(models.AssignResult{}, fmt.Errorf("service: alert is assigned: %w", e.ErrInvalidState))

	w := makeRequest(router, http.MethodPost, "/api/v1/alerts/"+alertID.String()+"/assign", nil, authHeader)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAlertTransitions(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	alertID, unitID := uuid.New(), uuid.New()
	accepted := &models.Alert{ID: alertID, Status: models.AlertAccepted, AssignedUnitID: &unitID}
	resolved := &models.Alert{ID: alertID, Status: models.AlertResolved, AssignedUnitID: &unitID}

	mockService.EXPECT().AcceptAlert(gomock.Any(), alertID).Return(accepted, nil)
	w := makeRequest(router, http.MethodPost, "/api/v1/alerts/"+alertID.String()+"/accept", nil, authHeader)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"accepted"`)

	// переход зафиксирован, ошибка освобождения только логируется
	mockService.EXPECT().ResolveAlert(gomock.Any(), alertID).Return(resolved, e.ErrConflict)
	w = makeRequest(router, http.MethodPost, "/api/v1/alerts/"+alertID.String()+"/resolve", nil, authHeader)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"resolved"`)

	mockService.EXPECT().CancelAlert(gomock.Any(), alertID).Return(nil, e.Wrap("memory.AlertStore.Transition", e.ErrInvalidTransition))
	w = makeRequest(router, http.MethodPost, "/api/v1/alerts/"+alertID.String()+"/cancel", nil, authHeader)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterUnit(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	stationID := uuid.New()

	mockService.EXPECT().RegisterUnit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, unit *models.Unit) error {
			assert.Equal(t, "dev-7", unit.DeviceID)
			assert.Equal(t, &stationID, unit.StationID)
			assert.Equal(t, models.Extensions{"medical": true}, unit.Capabilities)
			unit.ID = uuid.New()
			unit.Status = models.UnitAvailable
			unit.Version = 1
			return nil
		})

	body := jsonBody(t, RegisterUnitRequest{DeviceID: "dev-7", StationID: &stationID, Capabilities: map[string]any{"medical": true}})
	w := makeRequest(router, http.MethodPost, "/api/v1/units", body, authHeader)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp UnitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "available", resp.Status)
	assert.Nil(t, resp.LastHeartbeat)
}

func TestRegisterUnit_MissingDevice(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodPost, "/api/v1/units", strings.NewReader(`{"capabilities":{}}`), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateUnitLocation(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	ts := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	mockService.EXPECT().
		UpdateUnitLocation(gomock.Any(), models.Heartbeat{DeviceID: "dev-1", Latitude: 12.97, Longitude: 77.59, Timestamp: ts}).
		Return(&models.Unit{ID: uuid.New(), DeviceID: "dev-1", Latitude: 12.97, Longitude: 77.59, LastHeartbeat: ts, Status: models.UnitAvailable}, nil)

	body := strings.NewReader(`{"device_id":"dev-1","latitude":12.97,"longitude":77.59,"timestamp":"2026-10-01T12:00:00Z"}`)
	w := makeRequest(router, http.MethodPut, "/api/v1/units/location", body, authHeader)

	require.Equal(t, http.StatusOK, w.Code)
	var resp UnitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.LastHeartbeat)
	assert.True(t, ts.Equal(*resp.LastHeartbeat))
}

func TestUpdateUnitLocation_InvalidCoordinates(t *testing.T) {
	_, _, router := newTestHandler(t)

	body := strings.NewReader(`{"device_id":"dev-1","latitude":100,"longitude":0}`)
	w := makeRequest(router, http.MethodPut, "/api/v1/units/location", body, authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReleaseUnit(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	unitID, alertID := uuid.New(), uuid.New()

	mockService.EXPECT().ReleaseUnit(gomock.Any(), unitID, alertID).Return(nil)
	w := makeRequest(router, http.MethodPost, "/api/v1/units/"+unitID.String()+"/release",
		jsonBody(t, ReleaseUnitRequest{AlertID: alertID.String()}), authHeader)
	assert.Equal(t, http.StatusNoContent, w.Code)

	other := uuid.New()
	mockService.EXPECT().ReleaseUnit(gomock.Any(), unitID, other).Return(errors.Join(e.ErrInvalidState, e.ErrConflict))
	w = makeRequest(router, http.MethodPost, "/api/v1/units/"+unitID.String()+"/release",
		jsonBody(t, ReleaseUnitRequest{AlertID: other.String()}), authHeader)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = makeRequest(router, http.MethodPost, "/api/v1/units/"+unitID.String()+"/release",
		strings.NewReader(`{"alert_id":"nope"}`), authHeader)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetUnitDuty(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	unitID := uuid.New()

	mockService.EXPECT().SetUnitOffDuty(gomock.Any(), unitID, false).Return(nil)
	w := makeRequest(router, http.MethodPut, "/api/v1/units/"+unitID.String()+"/duty",
		strings.NewReader(`{"off_duty":false}`), authHeader)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = makeRequest(router, http.MethodPut, "/api/v1/units/"+unitID.String()+"/duty",
		strings.NewReader(`{}`), authHeader)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	mockService.EXPECT().SetUnitOffDuty(gomock.Any(), unitID, true).Return(e.Wrap("memory.UnitRegistry.SetOffDuty", e.ErrConflict))
	w = makeRequest(router, http.MethodPut, "/api/v1/units/"+unitID.String()+"/duty",
		strings.NewReader(`{"off_duty":true}`), authHeader)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetUnit_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	id := uuid.New()
	mockService.EXPECT().GetUnit(gomock.Any(), id).Return(nil, e.ErrNotFound)

	w := makeRequest(router, http.MethodGet, "/api/v1/units/"+id.String(), nil, authHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStations(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	station := &models.Station{ID: uuid.New(), Name: "Central", Latitude: 12.97, Longitude: 77.59}

	mockService.EXPECT().ListStations(gomock.Any()).Return([]*models.Station{station}, nil)
	w := makeRequest(router, http.MethodGet, "/api/v1/stations", nil, authHeader)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Central")

	mockService.EXPECT().GetStation(gomock.Any(), station.ID).Return(station, nil)
	w = makeRequest(router, http.MethodGet, "/api/v1/stations/"+station.ID.String(), nil, authHeader)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestQueryAuditLog(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	from := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)
	alertID := uuid.New()

	mockService.EXPECT().QueryAuditLog(gomock.Any(), from, to).Return([]*models.AssignmentRecord{
		{Seq: 1, AlertID: alertID, Outcome: models.OutcomeUnassigned, RecordedAt: from},
	}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/audit?from=2026-10-01T00:00:00Z&to=2026-10-02T00:00:00Z", nil, authHeader)

	require.Equal(t, http.StatusOK, w.Code)
	var raw []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	require.Len(t, raw, 1)
	assert.Equal(t, "unassigned", raw[0]["outcome"])
	assert.NotContains(t, raw[0], "unit_id")
}

func TestQueryAuditLog_BadRange(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/audit?from=yesterday", nil, authHeader)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	mockService.EXPECT().QueryAuditLog(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("service: from after to: %w", e.ErrInvalidInput))
	w = makeRequest(router, http.MethodGet, "/api/v1/audit?from=2026-10-02T00:00:00Z&to=2026-10-01T00:00:00Z", nil, authHeader)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
