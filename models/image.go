package models

import (
	"time"
)

// OrderImage is a reference photo attached to an order, stored inline as a
// binary column. Images are immutable once created: they are only ever
// deleted and replaced by a new row with a new id.
type OrderImage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrderID   uint      `gorm:"not null;index" json:"order_id"`
	Image     []byte    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for the OrderImage model
func (OrderImage) TableName() string {
	return "order_images"
}

// CustomerImage is a reference photo attached to a customer (measurements,
// design samples). Same storage and immutability rules as OrderImage.
type CustomerImage struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CustomerID uint      `gorm:"not null;index" json:"customer_id"`
	Image      []byte    `gorm:"not null" json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName specifies the table name for the CustomerImage model
func (CustomerImage) TableName() string {
	return "customer_images"
}

// ImageMeta is the listing shape for attachment collections: metadata only,
// blob bytes excluded so listings stay small.
type ImageMeta struct {
	ID        uint      `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// All returns every model for database migration.
func All() []interface{} {
	return []interface{}{
		&Customer{},
		&Employee{},
		&EmployeePayment{},
		&Order{},
		&OrderItem{},
		&OrderImage{},
		&CustomerImage{},
	}
}
