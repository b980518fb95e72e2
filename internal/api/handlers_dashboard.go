package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ottocompiler/plantmon/internal/services"
)

func (handler *Handler) ShowDashboard(c *fiber.Ctx) error {
	now := time.Now().UTC()

	cards, err := handler.buildPlantCards(now)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load plants")
	}

	query := strings.TrimSpace(c.Query("q"))
	show := services.NormalizeShow(c.Query("show"))
	filtered := filterPlantCards(cards, query, show)

	data := fiber.Map{
		"Plants":       filtered,
		"Total":        len(cards),
		"ShowingCount": len(filtered),
		"Query":        query,
		"Show":         show,
		"NowDisplay":   now.In(handler.location).Format(displayDateTimeLayout),
		"NowISO":       services.FormatTimestamp(now),
		"TodayDate":    now.In(handler.location).Format(displayDateLayout),
	}

	if detailID, ok := parseQueryID(c, "detail"); ok {
		plant, found, err := handler.repos.Plants.FindByID(detailID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString("failed to load plant")
		}
		if found {
			detail, err := handler.buildPlantCard(plant, now)
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("failed to load plant")
			}
			logs, err := handler.buildWaterLogRows(plant.ID)
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("failed to load watering log")
			}
			data["Detail"] = detail
			data["Logs"] = logs
		}
	}

	return handler.render(c, "dashboard", data)
}
