package v1

import (
	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/shenikar/emergency_dispatch/internal/service"
)

// DTOToUnitModel преобразует запрос регистрации в доменную модель
func DTOToUnitModel(dto RegisterUnitRequest) *models.Unit {
	return &models.Unit{
		DeviceID:     dto.DeviceID,
		StationID:    dto.StationID,
		Capabilities: models.Extensions(dto.Capabilities),
	}
}

// DTOToHeartbeat преобразует запрос heartbeat; отсутствующее время заполнит сервис
func DTOToHeartbeat(dto HeartbeatRequest) models.Heartbeat {
	hb := models.Heartbeat{
		DeviceID:  dto.DeviceID,
		Latitude:  *dto.Latitude,
		Longitude: *dto.Longitude,
	}
	if dto.Timestamp != nil {
		hb.Timestamp = dto.Timestamp.UTC()
	}
	return hb
}

func DTOToAssignOptions(dto AssignRequest) service.AssignOptions {
	return service.AssignOptions{
		RadiusMeters:  dto.RadiusMeters,
		MaxCandidates: dto.MaxCandidates,
		Require:       dto.Require,
	}
}

// ModelToAlertResponse преобразует доменную модель в DTO для ответа
func ModelToAlertResponse(model *models.Alert) *AlertResponse {
	return &AlertResponse{
		ID:                model.ID,
		ReporterID:        model.ReporterID,
		Latitude:          model.Latitude,
		Longitude:         model.Longitude,
		Cell:              model.Cell.String(),
		Category:          model.Category,
		Status:            string(model.Status),
		AssignedUnitID:    model.AssignedUnitID,
		AssignedStationID: model.AssignedStationID,
		Metadata:          model.Metadata,
		Version:           model.Version,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}
}

// ModelsToAlertResponses преобразует слайс моделей в слайс DTO
func ModelsToAlertResponses(alerts []*models.Alert) []*AlertResponse {
	responses := make([]*AlertResponse, len(alerts))
	for i, model := range alerts {
		responses[i] = ModelToAlertResponse(model)
	}
	return responses
}

func ModelToAssignResponse(result models.AssignResult) *AssignResponse {
	resp := &AssignResponse{
		Status:   string(result.Status),
		AlertID:  result.AlertID,
		Attempts: result.Attempts,
	}
	if result.Assigned() {
		unitID := result.UnitID
		resp.UnitID = &unitID
		resp.StationID = result.StationID
		resp.DistanceMeters = result.DistanceMeters
	}
	return resp
}

func ModelToUnitResponse(model *models.Unit) *UnitResponse {
	resp := &UnitResponse{
		ID:             model.ID,
		DeviceID:       model.DeviceID,
		StationID:      model.StationID,
		Capabilities:   model.Capabilities,
		Latitude:       model.Latitude,
		Longitude:      model.Longitude,
		Status:         string(model.Status),
		CurrentAlertID: model.CurrentAlertID,
		Version:        model.Version,
	}
	if !model.LastHeartbeat.IsZero() {
		ts := model.LastHeartbeat
		resp.LastHeartbeat = &ts
	}
	return resp
}

func ModelsToStationResponses(stations []*models.Station) []*StationResponse {
	responses := make([]*StationResponse, len(stations))
	for i, st := range stations {
		responses[i] = ModelToStationResponse(st)
	}
	return responses
}

func ModelToStationResponse(st *models.Station) *StationResponse {
	return &StationResponse{
		ID:        st.ID,
		Name:      st.Name,
		Latitude:  st.Latitude,
		Longitude: st.Longitude,
		Contact:   st.Contact,
	}
}

// ModelsToAssignmentRecordResponses скрывает нулевой unit_id у записей unassigned
func ModelsToAssignmentRecordResponses(records []*models.AssignmentRecord) []*AssignmentRecordResponse {
	responses := make([]*AssignmentRecordResponse, len(records))
	for i, rec := range records {
		resp := &AssignmentRecordResponse{
			Seq:            rec.Seq,
			AlertID:        rec.AlertID,
			StationID:      rec.StationID,
			DistanceMeters: rec.DistanceMeters,
			Outcome:        string(rec.Outcome),
			RecordedAt:     rec.RecordedAt,
		}
		if rec.UnitID != uuid.Nil {
			unitID := rec.UnitID
			resp.UnitID = &unitID
		}
		responses[i] = resp
	}
	return responses
}
