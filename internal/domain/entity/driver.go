package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Driver is a courier who carries orders to recipients.
type Driver struct {
	ID             uuid.UUID `json:"id"`
	DriverName     string    `json:"driver_name"`
	DriverPhone    string    `json:"driver_phone"`
	DriverIDNumber string    `json:"driver_id_number"`
	AssignedAreas  []string  `json:"assigned_areas"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NormalizeAreas trims, drops blanks and removes case-insensitive duplicates,
// keeping the first occurrence order.
func NormalizeAreas(areas []string) []string {
	seen := make(map[string]struct{}, len(areas))
	result := make([]string, 0, len(areas))
	for _, area := range areas {
		area = strings.TrimSpace(area)
		if area == "" {
			continue
		}
		key := strings.ToLower(area)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, area)
	}

	return result
}

// DriverFilter narrows driver listings.
type DriverFilter struct {
	Search string
}

// DriverChanges is a partial update; nil fields are left untouched.
type DriverChanges struct {
	DriverName     *string
	DriverPhone    *string
	DriverIDNumber *string
	AssignedAreas  *[]string
}
