package entity

import (
	"fmt"
	"time"
)

// City is a delivery destination. Its ID has the form city-NNN.
type City struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CityID formats a sequence number as a zero-padded city identifier.
func CityID(seq int64) string {
	return fmt.Sprintf("city-%03d", seq)
}
