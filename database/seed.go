package database

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yeremiapane/store-order-api/models"
)

// Seed loads the demo data set: one admin, one shopper, and a delivery order
// assigned to the shopper with two items. It is a no-op when employees
// already exist.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Employee{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("changeme"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	mike := models.Employee{
		Name:         "Mike",
		Email:        "mike@store.com",
		PasswordHash: string(hashed),
		Role:         models.RoleAdmin,
	}
	if err := db.Create(&mike).Error; err != nil {
		return err
	}

	sarah := models.Employee{
		Name:         "Sarah",
		Email:        "sarah@store.com",
		PasswordHash: string(hashed),
		Role:         models.RoleShopper,
	}
	if err := db.Create(&sarah).Error; err != nil {
		return err
	}

	pickup := "3:00"
	order := models.Order{
		CustomerName: "John Doe",
		PickupTime:   &pickup,
		IsDelivery:   true,
		Status:       "pending",
		EmployeeID:   &sarah.ID,
	}
	if err := db.Create(&order).Error; err != nil {
		return err
	}

	items := []models.Item{
		{Name: "Milk", Price: 3.99, InStock: true, OrderID: &order.ID},
		{Name: "Bread", Price: 2.50, InStock: true, OrderID: &order.ID},
	}
	return db.Create(&items).Error
}
