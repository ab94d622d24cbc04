package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/asha-tailors/tailorshop-api/config"
	"github.com/asha-tailors/tailorshop-api/controllers"
	"github.com/asha-tailors/tailorshop-api/services"
)

func main() {
	// Basic logging
	log.Println("Starting Tailor Shop API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	if err := config.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	// Initialize Gin router with all routes
	router := setupRouter(db, cfg)

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter wires every controller onto a Gin engine. The database handle
// and config are passed in explicitly so tests can supply their own.
func setupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())

	orderService := services.NewOrderService(db)
	imageService := services.NewImageService(db, cfg.OrderImageCap)

	customerCtrl := controllers.NewCustomerController(db)
	employeeCtrl := controllers.NewEmployeeController(db)
	orderCtrl := controllers.NewOrderController(orderService)
	imageCtrl := controllers.NewImageController(imageService)
	dashboardCtrl := controllers.NewDashboardController(db)

	v1 := router.Group("/api/v1")
	{
		// Health check endpoint
		v1.GET("/health", healthCheck)

		// Database status endpoint
		v1.GET("/database/status", databaseStatus(db))

		customers := v1.Group("/customers")
		{
			customers.GET("", customerCtrl.List)
			customers.POST("", customerCtrl.Create)
			customers.GET("/:id", customerCtrl.Get)
			customers.PUT("/:id", customerCtrl.Update)
			customers.DELETE("/:id", customerCtrl.Delete)

			customers.GET("/:id/images", imageCtrl.ListCustomerImages)
			customers.POST("/:id/images", imageCtrl.UploadCustomerImage)
			customers.GET("/:id/images/:imageId", imageCtrl.GetCustomerImage)
			customers.DELETE("/:id/images/:imageId", imageCtrl.DeleteCustomerImage)
		}

		employees := v1.Group("/employees")
		{
			employees.GET("", employeeCtrl.List)
			employees.POST("", employeeCtrl.Create)
			employees.GET("/:id", employeeCtrl.Get)
			employees.PUT("/:id", employeeCtrl.Update)
			employees.DELETE("/:id", employeeCtrl.Delete)

			employees.GET("/:id/payments", employeeCtrl.ListPayments)
			employees.POST("/:id/payments", employeeCtrl.CreatePayment)
		}

		orders := v1.Group("/orders")
		{
			orders.GET("", orderCtrl.List)
			orders.POST("", orderCtrl.Create)
			orders.GET("/:id", orderCtrl.Get)
			orders.PUT("/:id", orderCtrl.Update)
			orders.DELETE("/:id", orderCtrl.Delete)
			orders.PATCH("/:id/status", orderCtrl.UpdateStatus)
			orders.PATCH("/:id/mark-as-paid", orderCtrl.MarkAsPaid)

			orders.GET("/:id/images", imageCtrl.ListOrderImages)
			orders.POST("/:id/images", imageCtrl.UploadOrderImages)
			orders.GET("/:id/images/:imageId", imageCtrl.GetOrderImage)
			orders.DELETE("/:id/images/:imageId", imageCtrl.DeleteOrderImage)
		}

		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/orders", dashboardCtrl.Orders)
			dashboard.GET("/employees", dashboardCtrl.Employees)
			dashboard.GET("/summary", dashboardCtrl.Summary)
		}
	}

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Tailor Shop API is running",
	})
}

// databaseStatus checks database connectivity
func databaseStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_ERROR",
					"message": "Failed to get database instance",
				},
			})
			return
		}

		if err := sqlDB.Ping(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_CONNECTION_ERROR",
					"message": "Database connection failed",
				},
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Database connected",
		})
	}
}
