package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment methods accepted at checkout
const (
	PaymentCartao   = "Cartão"
	PaymentDinheiro = "Dinheiro"
	PaymentPIX      = "PIX"
)

// PaymentMethods lists every accepted payment method.
var PaymentMethods = []string{PaymentCartao, PaymentDinheiro, PaymentPIX}

// Sale is a finalized PDV checkout. Total is snapshotted from the cart at
// checkout time.
type Sale struct {
	ID            uint           `gorm:"primaryKey" json:"-"`
	Code          string         `gorm:"uniqueIndex;not null" json:"id"` // e.g. VND-2208
	Items         []SaleItem     `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE" json:"items"`
	Total         float64        `gorm:"not null" json:"total"`
	PaymentMethod string         `gorm:"not null" json:"payment_method"`
	Operator      string         `gorm:"not null" json:"operator"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// SaleItem is one sold line, copied from the cart at checkout.
type SaleItem struct {
	ID        string  `gorm:"primaryKey" json:"id"` // uuid
	SaleID    uint    `gorm:"index" json:"-"`
	Name      string  `gorm:"not null" json:"name"`
	UnitPrice float64 `gorm:"not null" json:"unit_price"`
	Quantity  int     `gorm:"not null" json:"quantity"`
}

// TableName specifies the table name for the SaleItem model
func (SaleItem) TableName() string {
	return "sale_items"
}

// IsValidPaymentMethod reports whether m is an accepted payment method.
func IsValidPaymentMethod(m string) bool {
	for _, v := range PaymentMethods {
		if v == m {
			return true
		}
	}
	return false
}
