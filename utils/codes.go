package utils

import (
	"fmt"
	"math/rand"
)

// Document code prefixes
const (
	OrderCodePrefix = "OS"
	QuoteCodePrefix = "ORC"
	SaleCodePrefix  = "VND"
)

// GenerateCode builds a document code like OS-1042: the prefix plus a 4-digit
// suffix drawn uniformly from [1000,9999]. The suffix space is small, so
// callers that need uniqueness must check the store and redraw on collision.
func GenerateCode(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, 1000+rand.Intn(9000))
}
