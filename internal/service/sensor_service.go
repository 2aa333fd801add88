package service

import (
	"errors"
	"fmt"
	"time"

	"sensor-api/internal/cache"
	"sensor-api/internal/models"

	"gorm.io/gorm"
)

const (
	// allSensorsKey caches the projected list of active sensors.
	allSensorsKey = "__ALL_SENSORS__"
	// sensorKeyFormat caches a single sensor projection by id.
	sensorKeyFormat = "__SENSOR_%d__"

	cacheTTL = 10 * time.Minute
)

// errNoTransition aborts a lifecycle transaction when the sensor is already
// in the requested state (archive on inactive, restore on active).
var errNoTransition = errors.New("sensor already in requested state")

// SensorService orchestrates the sensor store and the shared cache:
// read-through caching for queries, invalidate-on-write for mutations, and
// the active/inactive lifecycle. It holds no mutable state of its own beyond
// borrowed references, so a single instance serves all requests.
type SensorService struct {
	db    *gorm.DB
	cache cache.Cache[string, any]
}

// NewSensorService returns a service backed by the given store and cache.
func NewSensorService(db *gorm.DB, c cache.Cache[string, any]) *SensorService {
	return &SensorService{db: db, cache: c}
}

func sensorKey(id int) string {
	return fmt.Sprintf(sensorKeyFormat, id)
}

// ListActive returns the views of all active sensors, serving from the cache
// when possible. On a miss the store is queried and the result cached for
// ten minutes. Ordering is the store's natural order.
func (s *SensorService) ListActive() ([]models.SensorView, error) {
	if v, ok := s.cache.Get(allSensorsKey); ok {
		if views, ok := v.([]models.SensorView); ok {
			return views, nil
		}
	}

	var sensors []models.Sensor
	if err := s.db.Where("active = ?", true).Find(&sensors).Error; err != nil {
		return nil, err
	}

	views := make([]models.SensorView, 0, len(sensors))
	for _, sensor := range sensors {
		views = append(views, sensor.View())
	}

	s.cache.Set(allSensorsKey, views, cacheTTL)
	return views, nil
}

// GetByID returns the view of a single sensor, or nil if no row exists for
// the id. Archived sensors are still returned; only ListActive filters on
// the active flag.
func (s *SensorService) GetByID(id int) (*models.SensorView, error) {
	key := sensorKey(id)
	if v, ok := s.cache.Get(key); ok {
		if view, ok := v.(models.SensorView); ok {
			return &view, nil
		}
	}

	var sensor models.Sensor
	if err := s.db.First(&sensor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	view := sensor.View()
	s.cache.Set(key, view, cacheTTL)
	return &view, nil
}

// Create inserts a new active sensor inside a transaction and returns its
// view including the store-assigned id. On success the list cache is
// invalidated and the single-sensor key populated; on failure the
// transaction is rolled back and the cache left untouched.
func (s *SensorService) Create(input models.SensorInput) (models.SensorView, error) {
	sensor := models.Sensor{
		Name:        input.Name,
		Description: input.Description,
		Active:      true,
	}

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&sensor).Error
	}); err != nil {
		return models.SensorView{}, err
	}

	view := sensor.View()
	s.cache.Delete(allSensorsKey)
	s.cache.Set(sensorKey(sensor.ID), view, cacheTTL)
	return view, nil
}

// Update overwrites the name and description of an existing sensor inside a
// transaction, leaving the active flag alone. It returns false when no row
// exists for the id. On success both cache keys are invalidated and the
// single-sensor key repopulated with the new values.
func (s *SensorService) Update(id int, input models.SensorInput) (bool, error) {
	var sensor models.Sensor
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&sensor, id).Error; err != nil {
			return err
		}
		sensor.Name = input.Name
		sensor.Description = input.Description
		return tx.Save(&sensor).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	view := sensor.View()
	s.cache.Delete(allSensorsKey)
	s.cache.Delete(sensorKey(id))
	s.cache.Set(sensorKey(id), view, cacheTTL)
	return true, nil
}

// Delete removes the row unconditionally, archived or not. It returns false
// when no row exists for the id. Both cache keys are invalidated on success.
func (s *SensorService) Delete(id int) (bool, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var sensor models.Sensor
		if err := tx.First(&sensor, id).Error; err != nil {
			return err
		}
		return tx.Delete(&sensor).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	s.cache.Delete(allSensorsKey)
	s.cache.Delete(sensorKey(id))
	return true, nil
}

// Archive marks a sensor inactive. It returns false when the sensor is
// absent or already inactive. Both cache keys are invalidated on success;
// the single-sensor key is not repopulated, so the next GetByID re-reads the
// now-inactive row from the store.
func (s *SensorService) Archive(id int) (bool, error) {
	return s.setActive(id, false)
}

// Restore marks an archived sensor active again. It returns false when the
// sensor is absent or already active.
func (s *SensorService) Restore(id int) (bool, error) {
	return s.setActive(id, true)
}

func (s *SensorService) setActive(id int, active bool) (bool, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var sensor models.Sensor
		if err := tx.First(&sensor, id).Error; err != nil {
			return err
		}
		if sensor.Active == active {
			return errNoTransition
		}
		sensor.Active = active
		return tx.Save(&sensor).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, errNoTransition) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	s.cache.Delete(allSensorsKey)
	s.cache.Delete(sensorKey(id))
	return true, nil
}
