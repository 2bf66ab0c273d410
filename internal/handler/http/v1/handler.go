package v1

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch/internal/config"
	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/shenikar/emergency_dispatch/internal/service"
	"github.com/shenikar/emergency_dispatch/pkg/e"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	dispatchService service.DispatchService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(dispatchService service.DispatchService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		dispatchService: dispatchService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// respondError переводит доменную ошибку сервиса в HTTP-статус
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, e.ErrInvalidInput):
		log.WithError(err).Warn("Rejected invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, e.ErrNotFound):
		log.WithError(err).Warn("Resource not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
	case errors.Is(err, e.ErrInvalidState),
		errors.Is(err, e.ErrInvalidTransition),
		errors.Is(err, e.ErrConflict):
		log.WithError(err).Warn("Operation not allowed in current state")
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, e.ErrDeadline):
		log.WithError(err).Error("Deadline exceeded")
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "deadline exceeded"})
	case errors.Is(err, e.ErrCanceled):
		log.WithError(err).Info("Request canceled by client")
		c.JSON(http.StatusRequestTimeout, gin.H{"error": "request canceled"})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func parseID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + " ID"})
		return uuid.Nil, false
	}
	return id, true
}

// @Summary Create a new alert
// @Description Register an emergency alert at a location. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param alert body CreateAlertRequest true "Alert creation request"
// @Success 201 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts [post]
func (h *Handler) createAlert(c *gin.Context) {
	var input CreateAlertRequest
	log := h.logger.WithField("method", "createAlert")

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

	alert, err := h.dispatchService.CreateAlert(c.Request.Context(),
		input.ReporterID, *input.Latitude, *input.Longitude, input.Category, models.Extensions(input.Metadata))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToAlertResponse(alert))
}

// @Summary Get a list of alerts
// @Description Get a paginated list of alerts, newest first. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param status query string false "Filter by status" Enums(created, assigned, accepted, resolved, cancelled)
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {array} AlertResponse
// @Failure 400 {object} map[string]string "Invalid status filter"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts [get]
func (h *Handler) listAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "listAlerts")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	status := models.AlertStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status filter"})
		return
	}

	alerts, err := h.dispatchService.ListAlerts(c.Request.Context(), status, page, pageSize)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToAlertResponses(alerts))
}

// @Summary Get alert by ID
// @Description Get a single alert by its ID. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Alert ID"
// @Success 200 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid alert ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/{id} [get]
func (h *Handler) getAlert(c *gin.Context) {
	id, ok := parseID(c, "alert")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getAlert").WithField("id", id)

	alert, err := h.dispatchService.GetAlert(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToAlertResponse(alert))
}

// @Summary Dispatch the nearest available unit
// @Description Claim the nearest eligible unit for a created alert. An empty result is not an error. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Alert ID"
// @Param options body AssignRequest false "Assignment options"
// @Success 200 {object} AssignResponse
// @Failure 400 {object} map[string]string "Invalid alert ID or options"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 409 {object} map[string]string "Alert is not awaiting assignment"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/{id}/assign [post]
func (h *Handler) assignAlert(c *gin.Context) {
	id, ok := parseID(c, "alert")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "assignAlert").WithField("id", id)

	var input AssignRequest
	if c.Request.ContentLength != 0 {
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
	}

	result, err := h.dispatchService.Assign(c.Request.Context(), id, DTOToAssignOptions(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToAssignResponse(result))
}

// @Summary Accept an assigned alert
// @Description Unit acknowledges the assignment and becomes busy. Requires API key.
// @Tags Alerts
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Alert ID"
// @Success 200 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid alert ID"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 409 {object} map[string]string "Transition not allowed"
// @Router /alerts/{id}/accept [post]
func (h *Handler) acceptAlert(c *gin.Context) {
	h.transitionAlert(c, "acceptAlert", h.dispatchService.AcceptAlert)
}

// @Summary Resolve an alert
// @Description Close the alert and release its unit. Requires API key.
// @Tags Alerts
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Alert ID"
// @Success 200 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid alert ID"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 409 {object} map[string]string "Transition not allowed"
// @Router /alerts/{id}/resolve [post]
func (h *Handler) resolveAlert(c *gin.Context) {
	h.transitionAlert(c, "resolveAlert", h.dispatchService.ResolveAlert)
}

// @Summary Cancel an alert
// @Description Cancel a created or assigned alert; an assigned unit is released. Requires API key.
// @Tags Alerts
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Alert ID"
// @Success 200 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid alert ID"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 409 {object} map[string]string "Transition not allowed"
// @Router /alerts/{id}/cancel [post]
func (h *Handler) cancelAlert(c *gin.Context) {
	h.transitionAlert(c, "cancelAlert", h.dispatchService.CancelAlert)
}

type alertTransitionFunc func(ctx context.Context, id uuid.UUID) (*models.Alert, error)

// transitionAlert отдает 200 с тревогой, даже если освобождение подразделения
// завершилось ошибкой: переход уже зафиксирован, ошибка только логируется
func (h *Handler) transitionAlert(c *gin.Context, method string, fn alertTransitionFunc) {
	id, ok := parseID(c, "alert")
	if !ok {
		return
	}
	log := h.logger.WithField("method", method).WithField("id", id)

	alert, err := fn(c.Request.Context(), id)
	if err != nil && alert == nil {
		h.respondError(c, log, err)
		return
	}
	if err != nil {
		log.WithError(err).Error("Alert transitioned but unit release failed")
	}
	c.JSON(http.StatusOK, ModelToAlertResponse(alert))
}

// @Summary Health check
// @Description Check the health of the service
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "storage": h.cfg.StorageBackend})
}
