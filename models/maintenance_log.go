package models

import "time"

// MaintenanceLog records one past intervention on a monitored device.
// Entries are seeded sample data and read-only through the API.
type MaintenanceLog struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	DeviceID    string    `gorm:"index;not null" json:"device_id"`
	Date        string    `gorm:"not null" json:"date"` // YYYY-MM-DD
	Description string    `gorm:"not null" json:"description"`
	Technician  string    `gorm:"not null" json:"technician"`
	Cost        *float64  `json:"cost,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for the MaintenanceLog model
func (MaintenanceLog) TableName() string {
	return "maintenance_logs"
}
