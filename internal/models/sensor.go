package models

import (
	"time"
)

// Sensor represents a sensor record in the system.
//
// Soft delete is modeled explicitly with the Active flag; the row itself is
// only removed by a hard delete. GORM's DeletedAt soft-delete is deliberately
// not used here, since archived sensors must stay visible to lookups by id.
type Sensor struct {
	ID          int       `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:100;not null"`
	Description string    `json:"description" gorm:"size:500"`
	Active      bool      `json:"active" gorm:"not null;default:true"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// TableName specifies the table name for the Sensor model
func (Sensor) TableName() string {
	return "sensors"
}

// SensorView is the externally visible projection of a Sensor. It omits the
// Active flag and timestamps; cache entries hold SensorViews only.
type SensorView struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// View projects the sensor to its external representation.
func (s Sensor) View() SensorView {
	return SensorView{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
	}
}

// SensorInput carries the writable fields of a sensor for create and update.
type SensorInput struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
}
