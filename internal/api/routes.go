package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	registerPageRoutes(app, handler)
	registerAPIRoutes(app, handler)
}

func registerPageRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	app.Get("/", handler.ShowDashboard)
	app.Get("/export.csv", handler.ExportCSV)
	app.Get("/plants/new", handler.NewPlant)
	app.Post("/plants/create", handler.CreatePlant)
	app.Get("/plants/:id", handler.ShowPlant)
	app.Get("/plants/:id/edit", handler.ShowEditPlant)
	app.Post("/plants/:id/update", handler.UpdatePlant)
	app.Post("/plants/:id/delete", handler.DeletePlant)
	app.Post("/plants/:id/water", handler.LogWater)
	app.Post("/plants/:id/water/date", handler.LogWaterBackdated)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	plants := api.Group("/plants")
	plants.Get("", handler.ListPlantsAPI)
	plants.Post("", handler.CreatePlantAPI)
	plants.Get("/:id", handler.GetPlantAPI)
	plants.Put("/:id", handler.UpdatePlantAPI)
	plants.Delete("/:id", handler.DeletePlantAPI)
	plants.Post("/:id/water", handler.LogWaterAPI)

	api.Post("/clear", handler.ClearAllAPI)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
