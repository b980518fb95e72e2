package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ottocompiler/plantmon/internal/models"
)

// LogWaterAPI accepts a JSON or form-encoded body. A missing or malformed
// timestamp is replaced with the current UTC instant; the note defaults to
// empty, unlike the backdated form flow.
func (handler *Handler) LogWaterAPI(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	plant, found, err := handler.repos.Plants.FindByID(id)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load plant")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "not found")
	}

	input := waterLogInput{}
	_ = c.BodyParser(&input)

	entry := models.WaterLog{
		PlantID:   plant.ID,
		WateredAt: normalizeWateredAt(input.WateredAt),
		Note:      input.Note,
	}
	if err := handler.repos.WaterLogs.Create(&entry); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to log watering")
	}
	return c.JSON(fiber.Map{"ok": true})
}
