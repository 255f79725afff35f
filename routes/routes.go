package routes

import (
	"restaurant-orders-api/handlers"
	"restaurant-orders-api/middleware"
	"restaurant-orders-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		public.GET("/restaurants", handlers.ListRestaurants)

		// Order creation carries no auth, matching the original surface.
		public.POST("/orders", handlers.CreateOrder)

		// Bare user CRUD kept for testing
		public.POST("/users", handlers.CreateUser)
		public.GET("/users", handlers.ListUsers)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/auth/profile", handlers.GetProfile)
		auth.PATCH("/orders/:orderId/status", handlers.UpdateOrderStatus)
	}

	// ── Restaurant owner routes ────────────────────────────────────
	owner := r.Group("/api")
	owner.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleRestaurant))
	{
		owner.GET("/orders", handlers.ListOwnerOrders)

		// Restaurant management
		owner.POST("/restaurants", handlers.CreateRestaurant)
		owner.GET("/restaurants/owner-restaurants", handlers.OwnerRestaurants)
		owner.PUT("/restaurants/:restaurantId", handlers.UpdateRestaurant)
		owner.DELETE("/restaurants/:restaurantId", handlers.DeleteRestaurant)

		// Menu management
		owner.GET("/restaurants/:restaurantId/menu-items", handlers.ListMenuItems)
		owner.POST("/restaurants/:restaurantId/menu-items", handlers.AddMenuItem)
		owner.PUT("/menu-items/:menuItemId", handlers.UpdateMenuItem)
		owner.DELETE("/menu-items/:menuItemId", handlers.DeleteMenuItem)

		// Analytics
		owner.POST("/sales-report", handlers.SalesReport)
		owner.POST("/popular-items", handlers.PopularItems)
		owner.POST("/export-data", handlers.ExportData)
	}
}
