package models

import "time"

// CartItem is one line of an operator's open PDV cart. Catalog lines point at
// a product; manual lines (ad hoc services) carry only a name and price.
type CartItem struct {
	ID        string    `gorm:"primaryKey" json:"id"` // uuid
	UserID    uint      `gorm:"index;not null" json:"-"`
	ProductID *string   `json:"product_id,omitempty"`
	Name      string    `gorm:"not null" json:"name"`
	UnitPrice float64   `gorm:"not null" json:"unit_price"`
	Quantity  int       `gorm:"not null;check:quantity > 0" json:"quantity"`
	Manual    bool      `gorm:"not null;default:false" json:"manual"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the CartItem model
func (CartItem) TableName() string {
	return "cart_items"
}

// Subtotal returns quantity × unit price for this line.
func (i CartItem) Subtotal() float64 {
	return float64(i.Quantity) * i.UnitPrice
}
