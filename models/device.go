package models

import "time"

// Device statuses on the monitoring dashboard
const (
	DeviceStatusOnline      = "online"
	DeviceStatusOffline     = "offline"
	DeviceStatusMaintenance = "maintenance"
)

// Device represents a monitored piece of infrastructure (camera, DVR, server...).
// The inventory is seeded sample data and is read-only through the API.
type Device struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Type      string    `gorm:"not null" json:"type"` // Câmera, PC, Servidor, Roteador, DVR/NVR, Notebook, Smartphone, Outro
	IPAddress *string   `json:"ip_address,omitempty"`
	Status    string    `gorm:"not null" json:"status"` // online, offline, maintenance
	LastSeen  string    `json:"last_seen"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Device model
func (Device) TableName() string {
	return "devices"
}
