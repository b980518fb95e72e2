package api

import (
	"bytes"
	"encoding/csv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ottocompiler/plantmon/internal/services"
)

// ExportCSV writes one row per plant, ordered by name, with the raw stored
// and derived UTC timestamps verbatim. No timezone conversion applies here.
func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	cards, err := handler.buildPlantCards(time.Now().UTC())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to build export")
	}

	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	if err := writer.Write(services.ExportHeaders); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to build export")
	}
	for _, card := range cards {
		if err := writer.Write(services.ExportRow(card.Plant, card.LastWatered, card.NextWatering)); err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString("failed to build export")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to build export")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="plants_export.csv"`)
	return c.Send(output.Bytes())
}
