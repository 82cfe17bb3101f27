package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/inventory"
	"github.com/jhoicas/estoque-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase
	ItemUC     *usecase.ItemUseCase
	UserUC     *usecase.UserUseCase
	MovementUC *inventory.MovementUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Categories
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)

	// Products. Las rutas fijas van antes de /:id para que Fiber no las
	// capture como parámetro.
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	itemHandler := NewItemHandler(deps.ItemUC)
	products.Get("/active", productHandler.ListActive)
	products.Get("/inactive", productHandler.ListInactive)
	products.Get("/low-stock", productHandler.ListLowStock)
	products.Get("/by-sku/:sku", productHandler.GetBySKU)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Get("/:productId/items", itemHandler.ListByProduct)
	products.Post("/:productId/items", itemHandler.Create)

	// Items
	items := api.Group("/items")
	movementHandler := NewMovementHandler(deps.MovementUC)
	items.Get("/expiring", itemHandler.ListExpiring)
	items.Get("/reports/expiration", itemHandler.ExpirationReport)
	items.Get("/reports/expired", itemHandler.ExpiredReport)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Deactivate)
	items.Get("/:itemId/movements", movementHandler.GetByItem)

	// Movements
	movements := api.Group("/movements")
	movements.Get("/", movementHandler.GetByPeriod)
	movements.Post("/", movementHandler.Register)

	// Users
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/:id", userHandler.GetByID)
}
