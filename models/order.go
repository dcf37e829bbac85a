package models

import "time"

type Order struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	CustomerName string  `gorm:"type:varchar(255);not null" json:"customerName"`
	PickupTime   *string `gorm:"type:varchar(255)" json:"pickupTime"`
	IsDelivery   bool    `gorm:"not null;default:false" json:"isDelivery"`
	Status       string  `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	// EmployeeID is nullable: an order stays unassigned until an admin
	// patches an employee onto it.
	EmployeeID *uint     `gorm:"index" json:"employeeId"`
	Employee   *Employee `gorm:"foreignKey:EmployeeID" json:"-"`
	Items      []Item    `gorm:"foreignKey:OrderID" json:"items"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
