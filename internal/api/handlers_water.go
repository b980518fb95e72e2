package api

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ottocompiler/plantmon/internal/models"
	"github.com/ottocompiler/plantmon/internal/services"
)

const backdatedNote = "backdated"

func (handler *Handler) LogWater(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.SendStatus(fiber.StatusNotFound)
	}
	plant, found, err := handler.repos.Plants.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load plant")
	}
	if !found {
		return c.SendStatus(fiber.StatusNotFound)
	}

	entry := models.WaterLog{
		PlantID:   plant.ID,
		WateredAt: normalizeWateredAt(c.FormValue("watered_at")),
		Note:      c.FormValue("note"),
	}
	if err := handler.repos.WaterLogs.Create(&entry); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to log watering")
	}
	return c.Redirect(fmt.Sprintf("/?detail=%d", plant.ID), fiber.StatusSeeOther)
}

func (handler *Handler) LogWaterBackdated(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.SendStatus(fiber.StatusNotFound)
	}
	plant, found, err := handler.repos.Plants.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load plant")
	}
	if !found {
		return c.SendStatus(fiber.StatusNotFound)
	}

	note := c.FormValue("note")
	if note == "" {
		note = backdatedNote
	}
	entry := models.WaterLog{
		PlantID:   plant.ID,
		WateredAt: backdatedInstant(c.FormValue("date")),
		Note:      note,
	}
	if err := handler.repos.WaterLogs.Create(&entry); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to log watering")
	}
	return c.Redirect(fmt.Sprintf("/?detail=%d", plant.ID), fiber.StatusSeeOther)
}

// normalizeWateredAt re-serializes a parsable submitted timestamp to UTC and
// substitutes the current instant for anything missing or malformed.
func normalizeWateredAt(raw string) string {
	if parsed, ok := services.ParseTimestamp(raw); ok {
		return services.FormatTimestamp(parsed)
	}
	return services.NowUTC()
}

// backdatedInstant turns a calendar date into the instant at UTC midnight of
// that date. Missing or unparsable dates fall back to now.
func backdatedInstant(raw string) string {
	parsed, err := time.Parse(displayDateLayout, strings.TrimSpace(raw))
	if err != nil {
		return services.NowUTC()
	}
	return services.FormatTimestamp(parsed)
}
