package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"sensor-api/internal/apierror"
	"sensor-api/internal/models"
	"sensor-api/internal/realtime"
	"sensor-api/internal/service"

	"github.com/gin-gonic/gin"
)

// SensorHandler exposes the sensor service over HTTP. It owns input shape
// validation and the mapping of service outcomes to status codes; all store
// and cache logic lives in the service.
type SensorHandler struct {
	svc *service.SensorService
}

// NewSensorHandler returns a handler backed by the given service.
func NewSensorHandler(svc *service.SensorService) *SensorHandler {
	return &SensorHandler{svc: svc}
}

// parseSensorID extracts and validates the :id path parameter. On a
// non-numeric or non-positive id it writes a 400 and reports false, so the
// service is never reached with an invalid id.
func parseSensorID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, apierror.Response{
			Code:    apierror.CodeInvalidID,
			Message: "Sensor id must be a positive integer.",
		})
		return 0, false
	}
	return id, true
}

// GetSensors handles GET /api/sensors
// Returns all active sensors. Archived sensors are excluded from the list.
func (h *SensorHandler) GetSensors(c *gin.Context) {
	views, err := h.svc.ListActive()
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.Response{
			Code:    apierror.CodeInternalError,
			Message: "Failed to fetch sensors.",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

// GetSensorByID handles GET /api/sensors/:id
// Returns a single sensor by id, archived or not.
func (h *SensorHandler) GetSensorByID(c *gin.Context) {
	id, ok := parseSensorID(c)
	if !ok {
		return
	}

	view, err := h.svc.GetByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.Response{
			Code:    apierror.CodeInternalError,
			Message: "Failed to fetch sensor.",
			Details: err.Error(),
		})
		return
	}
	if view == nil {
		c.JSON(http.StatusNotFound, apierror.Response{
			Code:    apierror.CodeNotFound,
			Message: fmt.Sprintf("Sensor with id %d was not found.", id),
		})
		return
	}

	c.JSON(http.StatusOK, view)
}

// CreateSensor handles POST /api/sensors
// Creates a new active sensor and returns it with its assigned id.
func (h *SensorHandler) CreateSensor(c *gin.Context) {
	var input models.SensorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, apierror.Response{
			Code:    apierror.CodeInvalidData,
			Message: "The sensor data provided is invalid.",
			Details: err.Error(),
		})
		return
	}

	view, err := h.svc.Create(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.Response{
			Code:    apierror.CodeInternalError,
			Message: "Failed to create sensor.",
			Details: err.Error(),
		})
		return
	}

	realtime.GetHub().Broadcast(realtime.EventSensorCreated, view.ID)
	c.JSON(http.StatusCreated, view)
}

// UpdateSensor handles PUT /api/sensors/:id
// Overwrites the name and description of an existing sensor.
func (h *SensorHandler) UpdateSensor(c *gin.Context) {
	id, ok := parseSensorID(c)
	if !ok {
		return
	}

	var input models.SensorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, apierror.Response{
			Code:    apierror.CodeInvalidData,
			Message: "The sensor data provided is invalid.",
			Details: err.Error(),
		})
		return
	}

	updated, err := h.svc.Update(id, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.Response{
			Code:    apierror.CodeInternalError,
			Message: "Failed to update sensor.",
			Details: err.Error(),
		})
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, apierror.Response{
			Code:    apierror.CodeNotFound,
			Message: fmt.Sprintf("Sensor with id %d was not found.", id),
		})
		return
	}

	realtime.GetHub().Broadcast(realtime.EventSensorUpdated, id)
	c.Status(http.StatusNoContent)
}

// DeleteSensor handles DELETE /api/sensors/:id
// Hard-deletes a sensor regardless of its active flag.
func (h *SensorHandler) DeleteSensor(c *gin.Context) {
	id, ok := parseSensorID(c)
	if !ok {
		return
	}

	deleted, err := h.svc.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.Response{
			Code:    apierror.CodeInternalError,
			Message: "Failed to delete sensor.",
			Details: err.Error(),
		})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, apierror.Response{
			Code:    apierror.CodeNotFound,
			Message: fmt.Sprintf("Sensor with id %d was not found.", id),
		})
		return
	}

	realtime.GetHub().Broadcast(realtime.EventSensorDeleted, id)
	c.Status(http.StatusNoContent)
}
