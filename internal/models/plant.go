package models

const DefaultWaterIntervalDays = 7

type Plant struct {
	ID                uint   `gorm:"primaryKey" json:"id"`
	Name              string `gorm:"not null" json:"name"`
	Species           string `json:"species"`
	Location          string `json:"location"`
	WaterIntervalDays int    `gorm:"not null;default:7" json:"water_interval_days"`
	Notes             string `json:"notes"`
	CreatedAt         string `gorm:"not null" json:"created_at"`
	UpdatedAt         string `gorm:"not null" json:"updated_at"`
}
