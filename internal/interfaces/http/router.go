// Package http wires the Fiber handlers, middleware and routes.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ZachChoo/grocery-inventory/internal/application/auth"
	"github.com/ZachChoo/grocery-inventory/internal/application/usecase"
	"github.com/ZachChoo/grocery-inventory/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	UserUC    *usecase.UserUseCase
	ProductUC *usecase.ProductUseCase
	SaleUC    *usecase.SaleUseCase
	Notifier  Notifier
	JWTSecret string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Users (register/login public, management protected)
	users := api.Group("/users")
	authHandler := NewAuthHandler(deps.AuthUC)
	users.Post("/register", authHandler.Register)
	users.Post("/login", authHandler.Login)

	// Protected routes (Bearer token required)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	userHandler := NewUserHandler(deps.UserUC)
	protectedUsers := protected.Group("/users")
	protectedUsers.Get("/", userHandler.List)
	protectedUsers.Get("/:id", userHandler.GetByID)
	protectedUsers.Delete("/:id", RequireRole(entity.RoleManager), userHandler.Delete)

	// Products (protected)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/low-stock", productHandler.ListLowStock)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleManager), productHandler.Delete)

	// Sales (protected)
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Delete("/:id", RequireRole(entity.RoleManager), saleHandler.Delete)

	// Admin (protected, manager only)
	admin := protected.Group("/admin", RequireRole(entity.RoleManager))
	adminHandler := NewAdminHandler(deps.Notifier)
	admin.Post("/notify-sales", adminHandler.NotifySales)
}
