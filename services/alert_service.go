package services

import (
	"time"

	"github.com/techguardpro/techguard-api/models"
)

// DeadlineClass is the deadline classification of a service order for a given day.
type DeadlineClass string

const (
	DeadlineNone    DeadlineClass = "none"
	DeadlineToday   DeadlineClass = "today"
	DeadlineOverdue DeadlineClass = "overdue"
)

// Statuses that never alert, regardless of deadline. Finished or
// ready-for-pickup orders have nothing left to rush.
var alertExemptStatuses = map[string]bool{
	models.OSStatusEntregue:  true,
	models.OSStatusCancelado: true,
	models.OSStatusPronto:    true,
}

// Today returns the current calendar date as an ISO date string.
func Today() string {
	return time.Now().Format("2006-01-02")
}

// ClassifyDeadline classifies an order's estimated delivery date against the
// given day. Dates are ISO strings (YYYY-MM-DD), so they compare
// lexicographically.
func ClassifyDeadline(order models.ServiceOrder, today string) DeadlineClass {
	if order.EstimatedDeliveryDate == nil || *order.EstimatedDeliveryDate == "" {
		return DeadlineNone
	}

	switch {
	case *order.EstimatedDeliveryDate < today:
		return DeadlineOverdue
	case *order.EstimatedDeliveryDate == today:
		return DeadlineToday
	default:
		return DeadlineNone
	}
}

// IsAlertWorthy reports whether an order counts toward the notification badge:
// its deadline is today or already past, and its status is still one that can
// be rushed.
func IsAlertWorthy(order models.ServiceOrder, today string) bool {
	if alertExemptStatuses[order.Status] {
		return false
	}
	class := ClassifyDeadline(order, today)
	return class == DeadlineToday || class == DeadlineOverdue
}

// FilterAlertWorthy returns the alert-worthy subset of orders, preserving the
// input order. The result is derived on every call; "today" moves, so the
// classification is never cached.
func FilterAlertWorthy(orders []models.ServiceOrder, today string) []models.ServiceOrder {
	alerts := make([]models.ServiceOrder, 0)
	for _, order := range orders {
		if IsAlertWorthy(order, today) {
			alerts = append(alerts, order)
		}
	}
	return alerts
}
