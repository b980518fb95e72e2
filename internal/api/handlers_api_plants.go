package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ottocompiler/plantmon/internal/models"
	"github.com/ottocompiler/plantmon/internal/services"
)

// plantPayload mirrors a stored plant plus the derived watering fields.
// Absent derived values serialize as null.
type plantPayload struct {
	models.Plant
	LastWatered  *string `json:"last_watered"`
	NextWatering *string `json:"next_watering"`
}

func plantPayloadFromCard(card PlantCard) plantPayload {
	payload := plantPayload{Plant: card.Plant}
	if card.HasLastWatered {
		value := card.LastWatered
		payload.LastWatered = &value
	}
	if card.HasNextWatering {
		value := card.NextWatering
		payload.NextWatering = &value
	}
	return payload
}

func (handler *Handler) ListPlantsAPI(c *fiber.Ctx) error {
	cards, err := handler.buildPlantCards(time.Now().UTC())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load plants")
	}

	payloads := make([]plantPayload, 0, len(cards))
	for _, card := range cards {
		payloads = append(payloads, plantPayloadFromCard(card))
	}
	return c.JSON(payloads)
}

func (handler *Handler) CreatePlantAPI(c *fiber.Ctx) error {
	input := plantInput{}
	_ = c.BodyParser(&input) // best-effort; absent fields default below

	name := strings.TrimSpace(stringOr(input.Name, ""))
	if name == "" {
		return apiError(c, fiber.StatusBadRequest, "name required")
	}

	now := services.NowUTC()
	plant := models.Plant{
		Name:              name,
		Species:           stringOr(input.Species, ""),
		Location:          stringOr(input.Location, ""),
		WaterIntervalDays: resolveInterval(input.WaterIntervalDays, models.DefaultWaterIntervalDays),
		Notes:             stringOr(input.Notes, ""),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := handler.repos.Plants.Create(&plant); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create plant")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": plant.ID})
}

func (handler *Handler) GetPlantAPI(c *fiber.Ctx) error {
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

	card, err := handler.buildPlantCard(plant, time.Now().UTC())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load plant")
	}
	return c.JSON(plantPayloadFromCard(card))
}

// UpdatePlantAPI applies a partial update: every absent field keeps its
// stored value, an empty or absent name keeps the stored name.
func (handler *Handler) UpdatePlantAPI(c *fiber.Ctx) error {
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

	input := plantInput{}
	_ = c.BodyParser(&input)

	if name := strings.TrimSpace(stringOr(input.Name, "")); name != "" {
		plant.Name = name
	}
	if input.Species != nil {
		plant.Species = *input.Species
	}
	if input.Location != nil {
		plant.Location = *input.Location
	}
	if input.Notes != nil {
		plant.Notes = *input.Notes
	}
	plant.WaterIntervalDays = resolveInterval(input.WaterIntervalDays, plant.WaterIntervalDays)
	plant.UpdatedAt = services.NowUTC()

	if err := handler.repos.Plants.Save(&plant); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update plant")
	}
	return c.JSON(fiber.Map{"ok": true})
}

// DeletePlantAPI is idempotent, matching the page handler: a missing
// identifier still acknowledges success.
func (handler *Handler) DeletePlantAPI(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	if err := handler.repos.Plants.DeleteWithLogs(id); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete plant")
	}
	return c.JSON(fiber.Map{"ok": true})
}
