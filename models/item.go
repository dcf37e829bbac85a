package models

import "time"

type Item struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	Name       string  `gorm:"type:varchar(255);not null" json:"name"`
	Price      float64 `json:"price"`
	Department *string `gorm:"type:varchar(255)" json:"department"`
	InStock    bool    `gorm:"not null;default:true" json:"inStock"`
	// OrderID is nullable: items may exist standalone before being placed
	// on an order.
	OrderID   *uint     `gorm:"index" json:"orderId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
