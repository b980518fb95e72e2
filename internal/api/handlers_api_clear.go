package api

import "github.com/gofiber/fiber/v2"

// ClearAllAPI wipes every plant and every watering event. Irreversible;
// any confirmation lives in the UI, not here.
func (handler *Handler) ClearAllAPI(c *fiber.Ctx) error {
	deletedPlants, deletedLogs, err := handler.repos.ClearAll()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to clear data")
	}
	return c.JSON(fiber.Map{
		"status":         "ok",
		"deleted_plants": deletedPlants,
		"deleted_logs":   deletedLogs,
	})
}
