package services

import (
	"strconv"

	"github.com/ottocompiler/plantmon/internal/models"
)

// ExportHeaders is the fixed CSV column order of the plant export.
var ExportHeaders = []string{
	"id",
	"name",
	"species",
	"location",
	"water_interval_days",
	"created_at",
	"updated_at",
	"last_watered",
	"next_watering",
}

// ExportRow serializes one plant. Timestamps are written verbatim as stored
// or derived UTC strings; absent last/next watering values stay empty.
func ExportRow(plant models.Plant, lastWatered string, nextWatering string) []string {
	return []string{
		strconv.FormatUint(uint64(plant.ID), 10),
		plant.Name,
		plant.Species,
		plant.Location,
		strconv.Itoa(plant.WaterIntervalDays),
		plant.CreatedAt,
		plant.UpdatedAt,
		lastWatered,
		nextWatering,
	}
}
