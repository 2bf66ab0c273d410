package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary Register a unit
// @Description Register a responder unit or update its station and capabilities. Requires API key.
// @Tags Units
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param unit body RegisterUnitRequest true "Unit registration request"
// @Success 201 {object} UnitResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /units [post]
func (h *Handler) registerUnit(c *gin.Context) {
	var input RegisterUnitRequest
	log := h.logger.WithField("method", "registerUnit")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	unit := DTOToUnitModel(input)
	if err := h.dispatchService.RegisterUnit(c.Request.Context(), unit); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToUnitResponse(unit))
}

// @Summary Get unit by ID
// @Description Get a unit with its current status and location. Requires API key.
// @Tags Units
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Unit ID"
// @Success 200 {object} UnitResponse
// @Failure 400 {object} map[string]string "Invalid unit ID"
// @Failure 404 {object} map[string]string "Unit not found"
// @Router /units/{id} [get]
func (h *Handler) getUnit(c *gin.Context) {
	id, ok := parseID(c, "unit")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getUnit").WithField("id", id)

	unit, err := h.dispatchService.GetUnit(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToUnitResponse(unit))
}

// @Summary Report unit location
// @Description Heartbeat from a unit device. The first heartbeat of an unknown device registers it. Requires API key.
// @Tags Units
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param heartbeat body HeartbeatRequest true "Location update"
// @Success 200 {object} UnitResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /units/location [put]
func (h *Handler) updateUnitLocation(c *gin.Context) {
	var input HeartbeatRequest
	log := h.logger.WithField("method", "updateUnitLocation")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	unit, err := h.dispatchService.UpdateUnitLocation(c.Request.Context(), DTOToHeartbeat(input))
	if err != nil {
		h.respondError(c, log.WithField("device_id", input.DeviceID), err)
		return
	}
	c.JSON(http.StatusOK, ModelToUnitResponse(unit))
}

// @Summary Release a unit
// @Description Return a unit to the available pool. Only the alert that claimed it may release it. Requires API key.
// @Tags Units
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Unit ID"
// @Param release body ReleaseUnitRequest true "Claiming alert"
// @Success 204
// @Failure 400 {object} map[string]string "Invalid unit ID or request body"
// @Failure 404 {object} map[string]string "Unit not found"
// @Failure 409 {object} map[string]string "Unit is not held by this alert"
// @Router /units/{id}/release [post]
func (h *Handler) releaseUnit(c *gin.Context) {
	id, ok := parseID(c, "unit")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "releaseUnit").WithField("id", id)

	var input ReleaseUnitRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	alertID := uuid.MustParse(input.AlertID)

	if err := h.dispatchService.ReleaseUnit(c.Request.Context(), id, alertID); err != nil {
		h.respondError(c, log.WithField("alert_id", alertID), err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Change unit duty
// @Description Take a unit off duty or bring it back. An engaged unit cannot go off duty. Requires API key.
// @Tags Units
// @Accept json
// @Security ApiKeyAuth
// @Param id path string true "Unit ID"
// @Param duty body DutyRequest true "Duty flag"
// @Success 204
// @Failure 400 {object} map[string]string "Invalid unit ID or request body"
// @Failure 404 {object} map[string]string "Unit not found"
// @Failure 409 {object} map[string]string "Unit is engaged"
// @Router /units/{id}/duty [put]
func (h *Handler) setUnitDuty(c *gin.Context) {
	id, ok := parseID(c, "unit")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "setUnitDuty").WithField("id", id)

	var input DutyRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.dispatchService.SetUnitOffDuty(c.Request.Context(), id, *input.OffDuty); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List stations
// @Description Get all stations ordered by name. Requires API key.
// @Tags Stations
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} StationResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /stations [get]
func (h *Handler) listStations(c *gin.Context) {
	log := h.logger.WithField("method", "listStations")

	stations, err := h.dispatchService.ListStations(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToStationResponses(stations))
}

// @Summary Get station by ID
// @Tags Stations
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Station ID"
// @Success 200 {object} StationResponse
// @Failure 400 {object} map[string]string "Invalid station ID"
// @Failure 404 {object} map[string]string "Station not found"
// @Router /stations/{id} [get]
func (h *Handler) getStation(c *gin.Context) {
	id, ok := parseID(c, "station")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getStation").WithField("id", id)

	station, err := h.dispatchService.GetStation(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToStationResponse(station))
}

// @Summary Query the assignment log
// @Description Audit records with recorded_at in [from, to), ordered by sequence. Requires API key.
// @Tags Audit
// @Produce json
// @Security ApiKeyAuth
// @Param from query string false "Lower bound, RFC3339"
// @Param to query string false "Upper bound (exclusive), RFC3339"
// @Success 200 {array} AssignmentRecordResponse
// @Failure 400 {object} map[string]string "Invalid time range"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /audit [get]
func (h *Handler) queryAuditLog(c *gin.Context) {
	log := h.logger.WithField("method", "queryAuditLog")

	from, err := parseTimeQuery(c, "from")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'from' parameter, expected RFC3339"})
		return
	}
	to, err := parseTimeQuery(c, "to")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'to' parameter, expected RFC3339"})
		return
	}

	records, err := h.dispatchService.QueryAuditLog(c.Request.Context(), from, to)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToAssignmentRecordResponses(records))
}

func parseTimeQuery(c *gin.Context, key string) (time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, raw)
}
