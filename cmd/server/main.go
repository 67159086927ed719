package main

import (
	"log"
	"time"

	"dealer_manager/internal/config"
	"dealer_manager/internal/database"
	"dealer_manager/internal/handlers"
	"dealer_manager/internal/middleware"
	"dealer_manager/internal/migrations"
	"dealer_manager/internal/models"
	"dealer_manager/internal/redis"
	"dealer_manager/internal/repository"
	"dealer_manager/internal/services"
	"dealer_manager/pkg/token"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if cfg.SeedDefaultData {
		if err := migrations.RunMigrations(db); err != nil {
			log.Fatal("Failed to run migrations:", err)
		}
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(
		cfg.RedisURL,
		time.Duration(cfg.SessionTimeout)*time.Second,
		time.Duration(cfg.DebtCacheTTL)*time.Second,
	)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// Token manager for bearer auth
	tokens := token.NewManager(cfg.JWTSecret, time.Duration(cfg.TokenTTL)*time.Second)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	dealerRepo := repository.NewDealerRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	promotionRepo := repository.NewPromotionRepository(db)
	testDriveRepo := repository.NewTestDriveRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, tokens, redisClient)
	userService := services.NewUserService(userRepo)
	dealerService := services.NewDealerService(dealerRepo)
	customerService := services.NewCustomerService(customerRepo)
	vehicleService := services.NewVehicleService(vehicleRepo)
	orderService := services.NewOrderService(orderRepo, vehicleRepo)
	paymentService := services.NewPaymentService(orderRepo, paymentRepo, userRepo, promotionRepo, redisClient)
	promotionService := services.NewPromotionService(promotionRepo)
	testDriveService := services.NewTestDriveService(testDriveRepo)
	reportService := services.NewReportService(orderRepo, paymentRepo, userRepo, customerRepo, redisClient)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	dealerHandler := handlers.NewDealerHandler(dealerService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	vehicleHandler := handlers.NewVehicleHandler(vehicleService)
	orderHandler := handlers.NewOrderHandler(orderService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	promotionHandler := handlers.NewPromotionHandler(promotionService)
	testDriveHandler := handlers.NewTestDriveHandler(testDriveService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Path-prefix to role lookup table; unlisted prefixes only require a
	// valid token.
	rules := []middleware.RouteRule{
		{Prefix: "/api/users", Roles: []string{string(models.RoleAdmin)}},
		{Prefix: "/api/dealers", Roles: []string{string(models.RoleAdmin)}},
		{Prefix: "/api/promotions", Roles: []string{string(models.RoleAdmin), string(models.RoleManager)}},
		{Prefix: "/api/reports", Roles: []string{string(models.RoleAdmin), string(models.RoleManager)}},
	}

	// Setup routes
	router := gin.Default()
	router.Use(middleware.CORS())

	router.POST("/api/auth/login", authHandler.Login)

	api := router.Group("/api")
	api.Use(middleware.AuthRequired(tokens, redisClient, rules))
	{
		api.POST("/auth/logout", authHandler.Logout)

		api.POST("/users", userHandler.CreateUser)
		api.GET("/users", userHandler.ListUsers)
		api.GET("/users/:id", userHandler.GetUser)
		api.PUT("/users/:id", userHandler.UpdateUser)
		api.DELETE("/users/:id", userHandler.DeactivateUser)

		api.POST("/dealers", dealerHandler.CreateDealer)
		api.GET("/dealers", dealerHandler.ListDealers)
		api.GET("/dealers/:id", dealerHandler.GetDealer)
		api.PUT("/dealers/:id", dealerHandler.UpdateDealer)
		api.DELETE("/dealers/:id", dealerHandler.DeleteDealer)

		api.POST("/customers", customerHandler.CreateCustomer)
		api.GET("/customers", customerHandler.ListCustomers)
		api.GET("/customers/:id", customerHandler.GetCustomer)
		api.PUT("/customers/:id", customerHandler.UpdateCustomer)
		api.DELETE("/customers/:id", customerHandler.DeleteCustomer)

		api.POST("/vehicles/models", vehicleHandler.CreateModel)
		api.GET("/vehicles/models", vehicleHandler.ListModels)
		api.DELETE("/vehicles/models/:id", vehicleHandler.DeactivateModel)
		api.POST("/vehicles/variants", vehicleHandler.CreateVariant)
		api.GET("/vehicles/models/:model_id/variants", vehicleHandler.ListVariants)
		api.DELETE("/vehicles/variants/:id", vehicleHandler.DeactivateVariant)
		api.POST("/vehicles/serials", vehicleHandler.RegisterSerial)
		api.GET("/vehicles/variants/:variant_id/serials", vehicleHandler.ListSerials)

		api.POST("/orders", orderHandler.CreateOrder)
		api.GET("/orders", orderHandler.ListOrders)
		api.GET("/orders/:id", orderHandler.GetOrder)
		api.POST("/orders/:id/approve", orderHandler.ApproveOrder)
		api.POST("/orders/:id/cancel", orderHandler.CancelOrder)

		api.POST("/payments", paymentHandler.CreatePayment)
		api.GET("/payments", paymentHandler.ListPayments)
		api.GET("/payments/order/:order_id", paymentHandler.GetPaymentByOrder)

		api.POST("/promotions", promotionHandler.CreatePromotion)
		api.GET("/promotions", promotionHandler.ListPromotions)
		api.GET("/promotions/:id", promotionHandler.GetPromotion)
		api.PUT("/promotions/:id", promotionHandler.UpdatePromotion)
		api.DELETE("/promotions/:id", promotionHandler.DeletePromotion)
		api.POST("/promotions/assign", promotionHandler.AssignToDealer)

		api.POST("/testdrives", testDriveHandler.Schedule)
		api.PUT("/testdrives/:id/status", testDriveHandler.UpdateStatus)
		api.GET("/testdrives/staff/:staff_id", testDriveHandler.ListByStaff)
		api.GET("/testdrives/customer/:customer_id", testDriveHandler.ListByCustomer)

		api.GET("/reports/debt/:customer_id", reportHandler.CustomerDebt)
		api.GET("/reports/sales/staff/:staff_id", reportHandler.SalesByStaff)
		api.GET("/reports/sales/dealer/:dealer_id", reportHandler.SalesByDealer)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
