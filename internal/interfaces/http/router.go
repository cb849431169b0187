package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dmolina/planta-api/internal/application/auth"
	"github.com/dmolina/planta-api/internal/application/inventory"
	"github.com/dmolina/planta-api/internal/application/usecase"
	"github.com/dmolina/planta-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC    *usecase.ProductUseCase
	MachineUC    *usecase.MachineUseCase
	AdjustmentUC *inventory.AdjustmentUseCase
	ProductionUC *inventory.ProductionRunUseCase
	StockUC      *inventory.StockQueryUseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo solo lo modifica personal de planta con mando; operarios leen.
	adminOrSupervisor := RequireRole(entity.RoleAdmin, entity.RoleSupervisor)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", adminOrSupervisor, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", adminOrSupervisor, productHandler.Update)

	// Machines (protegido)
	machines := protected.Group("/machines")
	machineHandler := NewMachineHandler(deps.MachineUC)
	machines.Post("/", adminOrSupervisor, machineHandler.Create)
	machines.Get("/", machineHandler.List)
	machines.Get("/:id", machineHandler.GetByID)
	machines.Put("/:id", adminOrSupervisor, machineHandler.Update)

	// Inventario: ajustes manuales solo admin/supervisor; consultas para todos.
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.AdjustmentUC, deps.StockUC)
	invGroup.Post("/adjustments", adminOrSupervisor, inventoryHandler.RegisterAdjustment)
	invGroup.Get("/stock", inventoryHandler.ListStock)
	invGroup.Get("/ledger/product/:id", inventoryHandler.LedgerByProduct)
	invGroup.Get("/ledger/source/:id", inventoryHandler.LedgerBySource)
	invGroup.Get("/audit", inventoryHandler.Audit)

	// Órdenes de producción: el operario de turno registra la suya.
	runs := protected.Group("/production-runs")
	productionHandler := NewProductionHandler(deps.ProductionUC)
	runs.Post("/", productionHandler.Create)
	runs.Get("/", productionHandler.List)
	runs.Get("/:id", productionHandler.GetByID)
	runs.Get("/:id/verify", productionHandler.Verify)
}
