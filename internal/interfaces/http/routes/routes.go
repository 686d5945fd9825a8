// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/your-org/webshop-backend/internal/config"
	"github.com/your-org/webshop-backend/internal/interfaces/http/handlers"
	"github.com/your-org/webshop-backend/internal/interfaces/http/middleware"
	"gorm.io/gorm"
)

// SetupRoutes wires all API routes
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	SetupAuthRoutes(rg, db, cfg)
	SetupOrderRoutes(rg, db, cfg)
	SetupCouponRoutes(rg, db, cfg)
	SetupNewsletterRoutes(rg, db, cfg)
	SetupAdminRoutes(rg, db, redisClient, cfg)
}

// SetupAuthRoutes sets up authentication related routes
func SetupAuthRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(db, cfg)

	auth := rg.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.RefreshToken)

		protected := auth.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			protected.GET("/profile", authHandler.GetProfile)
		}
	}
}

// SetupOrderRoutes sets up customer-facing order routes
func SetupOrderRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	orderHandler := handlers.NewOrderHandler(db, cfg)

	orders := rg.Group("/orders")
	orders.Use(middleware.OptionalAuthMiddleware(cfg)) // Guest checkout is allowed
	{
		orders.POST("", orderHandler.CreateOrder)
	}

	authenticated := rg.Group("/orders")
	authenticated.Use(middleware.AuthMiddleware(cfg))
	{
		authenticated.GET("/:id", orderHandler.GetOrder)
		authenticated.PUT("/:id/cancel", orderHandler.CancelOrder)
	}
}

// SetupCouponRoutes sets up coupon validation routes
func SetupCouponRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	couponHandler := handlers.NewCouponHandler(db, cfg)

	coupons := rg.Group("/coupons")
	{
		coupons.POST("/validate", couponHandler.ValidateCoupon)
	}
}

// SetupNewsletterRoutes sets up newsletter routes
func SetupNewsletterRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	newsletterHandler := handlers.NewNewsletterHandler(db, cfg)

	news := rg.Group("/newsletter")
	{
		news.POST("/subscribe", newsletterHandler.Subscribe)
		news.POST("/unsubscribe", newsletterHandler.Unsubscribe)
	}
}

// SetupAdminRoutes sets up admin related routes
func SetupAdminRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	reportHandler := handlers.NewReportHandler(db, redisClient, cfg)
	orderHandler := handlers.NewOrderHandler(db, cfg)
	couponHandler := handlers.NewCouponHandler(db, cfg)
	inventoryHandler := handlers.NewInventoryHandler(db, cfg)

	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg))
	admin.Use(middleware.AdminMiddleware())
	{
		// Reports
		admin.GET("/reports", reportHandler.GetReport)
		admin.POST("/reports/email", reportHandler.EmailReport)

		// Orders
		admin.GET("/orders", orderHandler.ListOrders)
		admin.PUT("/orders/:id/status", orderHandler.UpdateOrderStatus)
		admin.GET("/orders/:id/invoice", orderHandler.DownloadInvoice)

		// Coupons
		admin.GET("/coupons", couponHandler.ListCoupons)
		admin.POST("/coupons", couponHandler.CreateCoupon)
		admin.PUT("/coupons/:id/deactivate", couponHandler.DeactivateCoupon)

		// Inventory
		admin.POST("/inventory/adjust", inventoryHandler.Adjust)
		admin.POST("/inventory/restock", inventoryHandler.Restock)
		admin.GET("/inventory/low-stock", inventoryHandler.LowStock)
		admin.GET("/inventory/:productId/history", inventoryHandler.History)
	}
}
