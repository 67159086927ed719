package main

import (
	"fmt"
	"log"

	"dealer_manager/internal/config"
	"dealer_manager/internal/database"
	"dealer_manager/internal/models"
	"dealer_manager/internal/repository"
	"dealer_manager/internal/services"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Force recreate all tables
	fmt.Println("Dropping existing tables...")
	err = db.Migrator().DropTable(
		&models.User{},
		&models.Customer{},
		&models.Dealer{},
		&models.DealerPromotion{},
		&models.VehicleModel{},
		&models.VehicleVariant{},
		&models.VehicleSerial{},
		&models.Order{},
		&models.OrderDetail{},
		&models.Confirmation{},
		&models.Payment{},
		&models.InstallmentPlan{},
		&models.Promotion{},
		&models.TestDrive{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	// Recreate and migrate
	fmt.Println("Creating tables...")
	db, err = database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Create default admin user
	fmt.Println("Creating default admin user...")
	userRepo := repository.NewUserRepository(db)
	userService := services.NewUserService(userRepo)
	dealerRepo := repository.NewDealerRepository(db)

	dealer := &models.Dealer{
		Name:        "Head Office",
		Address:     "1 Showroom Road",
		PhoneNumber: "0800000000",
	}
	if err := dealerRepo.Create(dealer); err != nil {
		log.Fatal("Failed to create default dealer:", err)
	}

	admin := &models.User{
		Username: "admin",
		Email:    "admin@dealer.local",
		FullName: "System Administrator",
		Role:     string(models.RoleAdmin),
		DealerID: dealer.ID,
		IsActive: true,
	}
	if err := userService.CreateUser(admin, "admin123"); err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
	} else {
		fmt.Println("Admin user created successfully")
		fmt.Println("Username: admin")
		fmt.Println("Password: admin123")
	}

	// Create a sample vehicle catalog
	fmt.Println("Creating sample vehicle catalog...")
	vehicleRepo := repository.NewVehicleRepository(db)
	model := &models.VehicleModel{
		Name:      "Falcon X",
		Brand:     "Falcon",
		ListPrice: 25000,
		IsActive:  true,
	}
	if err := vehicleRepo.CreateModel(model); err != nil {
		log.Printf("Warning: Failed to create sample model: %v", err)
	} else {
		variant := &models.VehicleVariant{
			ModelID:     model.ID,
			VersionName: "Falcon X GT",
			Color:       "Red",
			Price:       27500,
			IsActive:    true,
		}
		if err := vehicleRepo.CreateVariant(variant); err != nil {
			log.Printf("Warning: Failed to create sample variant: %v", err)
		}
	}

	fmt.Println("Database initialization completed!")
}
