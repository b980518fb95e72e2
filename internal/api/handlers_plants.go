package api

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ottocompiler/plantmon/internal/models"
	"github.com/ottocompiler/plantmon/internal/services"
)

func (handler *Handler) NewPlant(c *fiber.Ctx) error {
	return c.Redirect("/#new", fiber.StatusSeeOther)
}

// CreatePlant handles the quick-add form. An empty name is a silent no-op:
// the form flow never surfaces validation errors, it just redirects.
func (handler *Handler) CreatePlant(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.FormValue("name"))
	if name == "" {
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	now := services.NowUTC()
	plant := models.Plant{
		Name:              name,
		Species:           strings.TrimSpace(c.FormValue("species")),
		Location:          strings.TrimSpace(c.FormValue("location")),
		WaterIntervalDays: parseIntervalField(c.FormValue("water_interval_days"), models.DefaultWaterIntervalDays),
		Notes:             c.FormValue("notes"),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := handler.repos.Plants.Create(&plant); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to create plant")
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (handler *Handler) ShowPlant(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.SendStatus(fiber.StatusNotFound)
	}
	_, found, err := handler.repos.Plants.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load plant")
	}
	if !found {
		return c.SendStatus(fiber.StatusNotFound)
	}
	return c.Redirect(fmt.Sprintf("/?detail=%d", id), fiber.StatusSeeOther)
}

func (handler *Handler) ShowEditPlant(c *fiber.Ctx) error {
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

	card, err := handler.buildPlantCard(plant, time.Now().UTC())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load plant")
	}
	return handler.render(c, "edit", fiber.Map{"Plant": card})
}

func (handler *Handler) UpdatePlant(c *fiber.Ctx) error {
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

	// Empty name keeps the stored one; the name invariant survives updates.
	if name := strings.TrimSpace(c.FormValue("name")); name != "" {
		plant.Name = name
	}
	plant.Species = strings.TrimSpace(c.FormValue("species"))
	plant.Location = strings.TrimSpace(c.FormValue("location"))
	plant.WaterIntervalDays = parseIntervalField(c.FormValue("water_interval_days"), plant.WaterIntervalDays)
	plant.Notes = c.FormValue("notes")
	plant.UpdatedAt = services.NowUTC()

	if err := handler.repos.Plants.Save(&plant); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to update plant")
	}
	return c.Redirect(fmt.Sprintf("/?detail=%d", plant.ID), fiber.StatusSeeOther)
}

// DeletePlant is idempotent: deleting an identifier that no longer exists
// still redirects home without an error.
func (handler *Handler) DeletePlant(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.SendStatus(fiber.StatusNotFound)
	}
	if err := handler.repos.Plants.DeleteWithLogs(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to delete plant")
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}
