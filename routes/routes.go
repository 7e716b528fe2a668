package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ruban71/Slooze-Food-App/handlers"
	"github.com/ruban71/Slooze-Food-App/middleware"
	"github.com/ruban71/Slooze-Food-App/policy"
)

// Setup registers all routes. Handlers receive the store handle at
// construction; nothing reaches for globals.
func Setup(r *gin.Engine, db *gorm.DB, auth *middleware.Auth) {
	authHandler := handlers.NewAuthHandler(db, auth)
	restaurantHandler := handlers.NewRestaurantHandler(db)
	orderHandler := handlers.NewOrderHandler(db)
	paymentHandler := handlers.NewPaymentHandler(db)
	userHandler := handlers.NewUserHandler(db)

	// ── Public routes ──────────────────────────────────────────────
	r.POST("/auth/login", authHandler.Login)
	r.POST("/auth/register", authHandler.Register)
	r.GET("/orders/state-machine", orderHandler.StateMachineInfo)

	// ── Authenticated routes ───────────────────────────────────────
	authed := r.Group("/")
	authed.Use(auth.AuthRequired())
	{
		authed.GET("/auth/profile", authHandler.Profile)

		// Catalog
		authed.GET("/restaurants", middleware.Authorize(policy.RestaurantRead), restaurantHandler.List)
		authed.GET("/restaurants/:id", middleware.Authorize(policy.RestaurantRead), restaurantHandler.Get)

		write := middleware.Authorize(policy.RestaurantWrite)
		authed.POST("/restaurants", write, restaurantHandler.Create)
		authed.PATCH("/restaurants/:id", write, restaurantHandler.Update)
		authed.DELETE("/restaurants/:id", write, restaurantHandler.Delete)
		authed.POST("/restaurants/:id/menu", write, restaurantHandler.AddMenuItem)
		authed.PATCH("/restaurants/:id/menu/:itemId", write, restaurantHandler.UpdateMenuItem)
		authed.DELETE("/restaurants/:id/menu/:itemId", write, restaurantHandler.DeleteMenuItem)

		// Orders
		authed.POST("/orders", middleware.Authorize(policy.OrderCreate), orderHandler.Create)
		authed.GET("/orders", middleware.Authorize(policy.OrderList), orderHandler.List)
		authed.GET("/orders/:id", middleware.Authorize(policy.OrderList), orderHandler.Get)
		authed.PATCH("/orders/:id/cancel", middleware.Authorize(policy.OrderManage), orderHandler.Cancel)
		authed.PATCH("/orders/:id/status", middleware.Authorize(policy.OrderManage), orderHandler.UpdateStatus)

		// Payment profiles
		payments := middleware.Authorize(policy.PaymentManage)
		authed.GET("/payments", payments, paymentHandler.List)
		authed.POST("/payments", payments, paymentHandler.Create)
		authed.GET("/payments/:id", payments, paymentHandler.Get)
		authed.PATCH("/payments/:id", payments, paymentHandler.Update)
		authed.DELETE("/payments/:id", payments, paymentHandler.Delete)
		authed.PATCH("/payments/:id/set-default", payments, paymentHandler.SetDefault)

		// Users
		authed.GET("/users", middleware.Authorize(policy.UserList), userHandler.List)
	}
}
