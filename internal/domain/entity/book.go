package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Book is a catalog record.
type Book struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// MaxBookPrice is the largest price a numeric(10,2) column holds.
const MaxBookPrice = 99999999.99

// RoundPrice rounds p to cents, the precision prices are stored at.
func RoundPrice(p float64) float64 {
	return math.Round(p*100) / 100
}

// ValidPrice reports whether p, once rounded to cents, fits the stored range.
func ValidPrice(p float64) bool {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return false
	}
	rounded := RoundPrice(p)

	return rounded >= 0 && rounded <= MaxBookPrice
}
