package migrations

import (
	"log"

	"dealer_manager/internal/models"
	"dealer_manager/internal/repository"
	"dealer_manager/internal/services"

	"gorm.io/gorm"
)

// RunMigrations creates the default dealer and admin account when the
// database is empty.
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	if err := createDefaultData(db); err != nil {
		log.Printf("Warning: Failed to create default data: %v", err)
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

func createDefaultData(db *gorm.DB) error {
	log.Println("Creating default data...")

	userRepo := repository.NewUserRepository(db)
	userService := services.NewUserService(userRepo)
	dealerRepo := repository.NewDealerRepository(db)

	// Check if the admin already exists
	existingUser, err := userService.GetUserByUsername("admin")
	if err == nil && existingUser != nil {
		log.Println("Admin user already exists")
		return nil
	}

	dealer := &models.Dealer{
		Name:    "Head Office",
		Address: "1 Showroom Road",
	}
	if err := dealerRepo.Create(dealer); err != nil {
		return err
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
		return err
	}

	log.Println("Default admin user created (admin/admin123)")
	return nil
}
