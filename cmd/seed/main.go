package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"vehiclerental/internal/database"
	"vehiclerental/internal/domain"
	"vehiclerental/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// Dev fixtures: an admin, a customer and a small fleet.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "rental.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM vehicles")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	vehicles := repository.NewVehicleRepository(db)

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := &domain.User{
		Name:         "Fleet Admin",
		Email:        "admin@rental.local",
		Phone:        "+10000000001",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Fatal(err)
	}
	log.Println("Admin created: admin@rental.local / admin123")

	customerHash, _ := bcrypt.GenerateFromPassword([]byte("customer123"), bcrypt.DefaultCost)
	customer := &domain.User{
		Name:         "Demo Customer",
		Email:        "customer@rental.local",
		Phone:        "+10000000002",
		PasswordHash: string(customerHash),
		Role:         domain.RoleCustomer,
	}
	if err := users.Create(ctx, customer); err != nil {
		log.Fatal(err)
	}
	log.Println("Customer created: customer@rental.local / customer123")

	fleet := []domain.Vehicle{
		{Name: "Toyota Corolla", Category: domain.CategoryCar, DailyRentPrice: 50},
		{Name: "Honda CB500", Category: domain.CategoryBike, DailyRentPrice: 30},
		{Name: "Ford Transit", Category: domain.CategoryVan, DailyRentPrice: 80},
		{Name: "Hyundai Tucson", Category: domain.CategorySUV, DailyRentPrice: 70},
	}
	for i := range fleet {
		fleet[i].RegistrationNumber = fmt.Sprintf("REG-%04d", i+1)
		fleet[i].AvailabilityStatus = domain.VehicleAvailable
		if err := vehicles.Create(ctx, &fleet[i]); err != nil {
			log.Fatal(err)
		}
	}
	log.Printf("Seeded %d vehicles", len(fleet))
}
