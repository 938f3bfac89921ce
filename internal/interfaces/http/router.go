package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/finca-pro/internal/application/agenda"
	"github.com/tu-usuario/finca-pro/internal/application/analytics"
	"github.com/tu-usuario/finca-pro/internal/application/inventory"
	"github.com/tu-usuario/finca-pro/internal/application/registry"
	"github.com/tu-usuario/finca-pro/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InventorySvc *inventory.Service
	AnimalUC     *registry.AnimalUseCase
	EventUC      *agenda.EventUseCase
	DashboardUC  *analytics.DashboardUseCase
	Log          *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo de insumos + libro de movimientos
	supplies := api.Group("/supplies")
	supplyHandler := NewSupplyHandler(deps.InventorySvc, deps.Log)
	movementHandler := NewMovementHandler(deps.InventorySvc, deps.Log)
	supplies.Post("/", supplyHandler.Register)
	supplies.Get("/", supplyHandler.List)
	supplies.Get("/:id", supplyHandler.GetByID)
	supplies.Get("/:id/movements", movementHandler.History)
	supplies.Get("/:id/reconcile", movementHandler.Reconcile)
	supplies.Post("/:id/purchases", movementHandler.Purchase)
	supplies.Post("/:id/uses", movementHandler.Use)
	supplies.Post("/:id/adjustments", movementHandler.Adjust)

	// Consultas agregadas de inventario
	reports := api.Group("/inventory")
	reportHandler := NewReportHandler(deps.InventorySvc, deps.Log)
	reports.Get("/value", reportHandler.Value)
	reports.Get("/expiring", reportHandler.Expiring)

	// Registro de animales
	animals := api.Group("/animals")
	animalHandler := NewAnimalHandler(deps.AnimalUC, deps.Log)
	animals.Post("/", animalHandler.Register)
	animals.Get("/", animalHandler.List)
	animals.Get("/:id", animalHandler.GetByID)

	// Agenda de eventos
	events := api.Group("/events")
	eventHandler := NewEventHandler(deps.EventUC, deps.Log)
	events.Post("/", eventHandler.Register)
	events.Get("/", eventHandler.List)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Log)
	api.Get("/dashboard", dashboardHandler.Summary)
}
