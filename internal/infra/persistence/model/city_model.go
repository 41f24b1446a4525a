package model

import "time"

const (
	// CitySequence backs the human-readable city ids.
	CitySequence = "city_code_seq"
	// CityIDPrefix precedes the zero-padded sequence number.
	CityIDPrefix = "city-"
)

// CityModel mirrors the 'cities' table. Name uniqueness is case-insensitive
// and enforced by the idx_cities_name_lower expression index.
type CityModel struct {
	ID        string `gorm:"type:varchar(20);primaryKey"`
	Name      string `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CityModel) TableName() string {
	return "cities"
}
