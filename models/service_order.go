package models

import (
	"time"

	"gorm.io/gorm"
)

// Service order statuses. Any status is settable from any other; there is
// no transition graph.
const (
	OSStatusPendente        = "Pendente"
	OSStatusEmAnalise       = "Em Análise"
	OSStatusAguardandoPecas = "Aguardando Peças"
	OSStatusPronto          = "Pronto"
	OSStatusEntregue        = "Entregue"
	OSStatusCancelado       = "Cancelado"
)

// Service order priorities
const (
	PriorityBaixa = "Baixa"
	PriorityMedia = "Média"
	PriorityAlta  = "Alta"
)

// OSStatuses lists every valid service order status, in display order.
var OSStatuses = []string{
	OSStatusPendente,
	OSStatusEmAnalise,
	OSStatusAguardandoPecas,
	OSStatusPronto,
	OSStatusEntregue,
	OSStatusCancelado,
}

// Priorities lists every valid service order priority.
var Priorities = []string{PriorityBaixa, PriorityMedia, PriorityAlta}

// ServiceOrder represents one repair ticket (Ordem de Serviço).
// Code is the public identifier in the OS-#### format; the numeric primary
// key orders listings so that the newest order always comes first.
// Calendar fields hold ISO dates (YYYY-MM-DD) so they compare lexicographically.
type ServiceOrder struct {
	ID                    uint           `gorm:"primaryKey" json:"-"`
	Code                  string         `gorm:"uniqueIndex;not null" json:"id"` // e.g. OS-1042
	ClientName            string         `gorm:"not null" json:"client_name"`
	ClientPhone           string         `json:"client_phone"`
	ClientAddress         *string        `json:"client_address,omitempty"`
	DeviceModel           string         `gorm:"not null" json:"device_model"`
	IssueDescription      string         `json:"issue_description"`
	EntryDate             string         `gorm:"not null" json:"entry_date"`
	EstimatedDeliveryDate *string        `json:"estimated_delivery_date,omitempty"`
	Status                string         `gorm:"not null;default:'Pendente'" json:"status"`
	Priority              string         `gorm:"not null;default:'Média'" json:"priority"`
	EstimatedCost         *float64       `json:"estimated_cost,omitempty"` // nullable, "A DEFINIR" until quoted
	Technician            string         `gorm:"not null" json:"technician"`
	CreatedAt             time.Time      `json:"created_at"`
	UpdatedAt             time.Time      `json:"updated_at"`
	DeletedAt             gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the ServiceOrder model
func (ServiceOrder) TableName() string {
	return "service_orders"
}

// IsValidOSStatus reports whether s is a member of the status enum.
func IsValidOSStatus(s string) bool {
	for _, v := range OSStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// IsValidPriority reports whether p is a member of the priority enum.
func IsValidPriority(p string) bool {
	for _, v := range Priorities {
		if v == p {
			return true
		}
	}
	return false
}
