package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/store-order-api/models"
)

func strPtr(v string) *string { return &v }

func TestListScopeAdmin(t *testing.T) {
	admin := Identity{EmployeeID: 1, Role: models.RoleAdmin}

	scope := ListScope(admin, OrderFilters{})
	assert.Empty(t, scope.Conditions())

	scope = ListScope(admin, OrderFilters{Status: strPtr("pending")})
	assert.Equal(t, map[string]interface{}{"status": "pending"}, scope.Conditions())
}

func TestListScopeShopperPinnedToOwnOrders(t *testing.T) {
	shopper := Identity{EmployeeID: 7, Role: models.RoleShopper}

	scope := ListScope(shopper, OrderFilters{Status: strPtr("pending"), IsDelivery: strPtr("true")})
	assert.Equal(t, map[string]interface{}{
		"employee_id": uint(7),
		"status":      "pending",
		"is_delivery": true,
	}, scope.Conditions())
}

func TestListScopeIsDeliveryCoercion(t *testing.T) {
	admin := Identity{EmployeeID: 1, Role: models.RoleAdmin}

	tests := []struct {
		literal string
		want    bool
	}{
		{"true", true},
		{"false", false},
		{"TRUE", false},
		{"1", false},
		{"yes", false},
		{"", false},
	}
	for _, tt := range tests {
		scope := ListScope(admin, OrderFilters{IsDelivery: &tt.literal})
		assert.Equal(t, tt.want, scope.Conditions()["is_delivery"], "literal %q", tt.literal)
	}
}

func TestScopeApplyNarrowsQuery(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.Employee{}, &models.Order{}, &models.Item{}))

	sarah := uint(2)
	orders := []models.Order{
		{CustomerName: "A", Status: "pending", EmployeeID: &sarah},
		{CustomerName: "B", Status: "ready", EmployeeID: &sarah, IsDelivery: true},
		{CustomerName: "C", Status: "pending"},
	}
	assert.NoError(t, db.Create(&orders).Error)

	shopper := Identity{EmployeeID: sarah, Role: models.RoleShopper}

	var got []models.Order
	assert.NoError(t, ListScope(shopper, OrderFilters{}).Apply(db).Find(&got).Error)
	assert.Len(t, got, 2)

	got = nil
	assert.NoError(t, ListScope(shopper, OrderFilters{Status: strPtr("pending")}).Apply(db).Find(&got).Error)
	assert.Len(t, got, 1)
	assert.Equal(t, "A", got[0].CustomerName)

	// Unassigned orders stay invisible even when the filter matches them.
	got = nil
	admin := Identity{EmployeeID: 1, Role: models.RoleAdmin}
	assert.NoError(t, ListScope(admin, OrderFilters{Status: strPtr("pending")}).Apply(db).Find(&got).Error)
	assert.Len(t, got, 2)
}
