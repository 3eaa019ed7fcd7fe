package models

import (
	"time"

	"gorm.io/gorm"
)

// Quote statuses
const (
	QuoteStatusAberto   = "Aberto"
	QuoteStatusAprovado = "Aprovado"
	QuoteStatusRecusado = "Recusado"
)

// QuoteStatuses lists every valid quote status.
var QuoteStatuses = []string{QuoteStatusAberto, QuoteStatusAprovado, QuoteStatusRecusado}

// Quote represents a commercial proposal (orçamento) sent to a client.
// Total is a snapshot computed once when the quote is saved; it is never
// recomputed from the items afterwards.
type Quote struct {
	ID          uint           `gorm:"primaryKey" json:"-"`
	Code        string         `gorm:"uniqueIndex;not null" json:"id"` // e.g. ORC-3317
	ClientName  string         `gorm:"not null" json:"client_name"`
	ClientPhone string         `json:"client_phone"`
	Date        string         `gorm:"not null" json:"date"`
	ValidUntil  string         `gorm:"not null" json:"valid_until"`
	Items       []QuoteItem    `gorm:"foreignKey:QuoteID;constraint:OnDelete:CASCADE" json:"items"`
	Total       float64        `gorm:"not null" json:"total"`
	Status      string         `gorm:"not null;default:'Aberto'" json:"status"`
	Technician  string         `gorm:"not null" json:"technician"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Quote model
func (Quote) TableName() string {
	return "quotes"
}

// QuoteItem is one priced line of a quote.
type QuoteItem struct {
	ID          string  `gorm:"primaryKey" json:"id"` // uuid
	QuoteID     uint    `gorm:"index" json:"-"`
	Description string  `gorm:"not null" json:"description"`
	Quantity    int     `gorm:"not null;check:quantity > 0" json:"quantity"`
	UnitPrice   float64 `gorm:"not null" json:"unit_price"`
}

// TableName specifies the table name for the QuoteItem model
func (QuoteItem) TableName() string {
	return "quote_items"
}

// IsValidQuoteStatus reports whether s is a member of the quote status enum.
func IsValidQuoteStatus(s string) bool {
	for _, v := range QuoteStatuses {
		if v == s {
			return true
		}
	}
	return false
}
