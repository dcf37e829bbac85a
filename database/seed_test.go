package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/store-order-api/models"
)

func TestSeed(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.Employee{}, &models.Order{}, &models.Item{}))

	assert.NoError(t, Seed(db))

	var admin models.Employee
	assert.NoError(t, db.Where("email = ?", "mike@store.com").First(&admin).Error)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.NotEmpty(t, admin.PasswordHash)

	var sarah models.Employee
	assert.NoError(t, db.Where("email = ?", "sarah@store.com").First(&sarah).Error)
	assert.Equal(t, models.RoleShopper, sarah.Role)

	var order models.Order
	assert.NoError(t, db.Preload("Items").First(&order).Error)
	assert.Equal(t, "John Doe", order.CustomerName)
	assert.True(t, order.IsDelivery)
	assert.NotNil(t, order.EmployeeID)
	assert.Equal(t, sarah.ID, *order.EmployeeID)
	assert.Len(t, order.Items, 2)

	// Running it again against populated data changes nothing.
	assert.NoError(t, Seed(db))
	var count int64
	assert.NoError(t, db.Model(&models.Employee{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}
