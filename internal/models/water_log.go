package models

// WaterLog rows are append-only: they are created when a watering is logged
// and removed only when the owning plant is deleted or on a bulk clear.
type WaterLog struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	PlantID   uint   `gorm:"not null;index" json:"plant_id"`
	WateredAt string `gorm:"not null" json:"watered_at"`
	Note      string `json:"note"`
}
