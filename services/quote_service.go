package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/techguardpro/techguard-api/models"
)

// defaultValidUntil is the proposal form's default expiry: seven days out.
func defaultValidUntil() string {
	return time.Now().Add(7 * 24 * time.Hour).Format("2006-01-02")
}

var (
	// ErrQuoteNoClient is returned when a quote draft has no client name.
	ErrQuoteNoClient = errors.New("quote draft has no client name")
	// ErrQuoteNoItems is returned when a quote draft has no items.
	ErrQuoteNoItems = errors.New("quote draft has no items")
)

// QuoteDraft accumulates items for a quote before it is saved. Invalid items
// are silently ignored, mirroring the proposal form's behavior: adding an
// incomplete line is a no-op, not an error.
type QuoteDraft struct {
	ClientName  string
	ClientPhone string
	Date        string
	ValidUntil  string
	Items       []models.QuoteItem
}

// AddItem appends an item to the draft and reports whether it was accepted.
// Empty descriptions and non-positive quantities or unit prices are rejected.
func (d *QuoteDraft) AddItem(description string, quantity int, unitPrice float64) bool {
	if strings.TrimSpace(description) == "" || quantity <= 0 || unitPrice <= 0 {
		return false
	}

	d.Items = append(d.Items, models.QuoteItem{
		ID:          uuid.NewString(),
		Description: description,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
	})
	return true
}

// RemoveItem removes the item with the given id from the draft. Unknown ids
// are a no-op.
func (d *QuoteDraft) RemoveItem(itemID string) {
	for i, item := range d.Items {
		if item.ID == itemID {
			d.Items = append(d.Items[:i], d.Items[i+1:]...)
			return
		}
	}
}

// Total sums quantity × unit price over the draft's items.
func (d *QuoteDraft) Total() float64 {
	var total float64
	for _, item := range d.Items {
		total += float64(item.Quantity) * item.UnitPrice
	}
	return total
}

// Build materializes the draft into a quote for the given technician. The
// returned quote carries the total as computed right now; it is a snapshot and
// is never recomputed after the quote is saved.
func (d *QuoteDraft) Build(code, technician string) (models.Quote, error) {
	if strings.TrimSpace(d.ClientName) == "" {
		return models.Quote{}, ErrQuoteNoClient
	}
	if len(d.Items) == 0 {
		return models.Quote{}, ErrQuoteNoItems
	}

	date := d.Date
	if date == "" {
		date = Today()
	}
	validUntil := d.ValidUntil
	if validUntil == "" {
		validUntil = defaultValidUntil()
	}

	return models.Quote{
		Code:        code,
		ClientName:  d.ClientName,
		ClientPhone: d.ClientPhone,
		Date:        date,
		ValidUntil:  validUntil,
		Items:       d.Items,
		Total:       d.Total(),
		Status:      models.QuoteStatusAberto,
		Technician:  technician,
	}, nil
}
