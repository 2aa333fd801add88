package handlers

import (
	"fmt"
	"net/http"

	"sensor-api/internal/apierror"
	"sensor-api/internal/realtime"

	"github.com/gin-gonic/gin"
)

// The v2 surface replaces hard deletion with an archive/restore lifecycle.
// It shares the same service as v1; only the delete semantics differ.

// ArchiveSensor handles DELETE /api/v2/sensors/:id
// Soft-deletes a sensor by marking it inactive. The record stays readable
// through GET /api/sensors/:id and can be restored later.
func (h *SensorHandler) ArchiveSensor(c *gin.Context) {
	id, ok := parseSensorID(c)
	if !ok {
		return
	}

	archived, err := h.svc.Archive(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.Response{
			Code:    apierror.CodeInternalError,
			Message: "Failed to archive sensor.",
			Details: err.Error(),
		})
		return
	}
	if !archived {
		c.JSON(http.StatusNotFound, apierror.Response{
			Code:    apierror.CodeNotFound,
			Message: fmt.Sprintf("Sensor with id %d was not found or is already archived.", id),
		})
		return
	}

	realtime.GetHub().Broadcast(realtime.EventSensorArchived, id)
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Sensor with id %d has been archived.", id),
	})
}

// RestoreSensor handles PUT /api/v2/sensors/:id/restore
// Reactivates an archived sensor.
func (h *SensorHandler) RestoreSensor(c *gin.Context) {
	id, ok := parseSensorID(c)
	if !ok {
		return
	}

	restored, err := h.svc.Restore(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.Response{
			Code:    apierror.CodeInternalError,
			Message: "Failed to restore sensor.",
			Details: err.Error(),
		})
		return
	}
	if !restored {
		c.JSON(http.StatusNotFound, apierror.Response{
			Code:    apierror.CodeNotFound,
			Message: fmt.Sprintf("Sensor with id %d was not found or is already active.", id),
		})
		return
	}

	realtime.GetHub().Broadcast(realtime.EventSensorRestored, id)
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Sensor with id %d has been restored.", id),
	})
}
