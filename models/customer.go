package models

import (
	"time"
)

// Customer represents a customer of the shop
type Customer struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Nickname     *string   `json:"nickname"`
	Email        *string   `gorm:"uniqueIndex" json:"email"` // optional, unique when present
	Phone        string    `gorm:"not null" json:"phone"`
	Address      *string   `json:"address"`
	PaperCutting bool      `gorm:"not null;default:false" json:"paper_cutting"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Orders []Order         `gorm:"foreignKey:CustomerID" json:"-"`
	Images []CustomerImage `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
