package models

import (
	"time"
)

// Order statuses
const (
	StatusPending   = "PENDING"
	StatusPaid      = "PAID"
	StatusCancelled = "CANCELLED"
)

// Payment methods (set when an order is marked as paid)
const (
	PaymentMethodCash = "CASH"
	PaymentMethodCard = "CARD"
	PaymentMethodUPI  = "UPI"
)

// Order item work types
const (
	WorkTypeSimple  = "SIMPLE_WORK"
	WorkTypeHand    = "HAND_WORK"
	WorkTypeMachine = "MACHINE_WORK"
)

// Order item statuses
const (
	ItemStatusDone    = "DONE"
	ItemStatusNotDone = "NOT_DONE"
)

// Order represents a tailoring order placed by a customer.
// TotalAmount is always recomputed from the order's items whenever the item
// set changes; it is never accepted from the client as-is.
type Order struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	OrderID       *int       `json:"order_id"` // human-facing sequence number, distinct from the surrogate key
	CustomerID    uint       `gorm:"not null;index" json:"customer_id"`
	Customer      Customer   `gorm:"foreignKey:CustomerID" json:"customer"`
	EmployeeID    *uint      `gorm:"index" json:"employee_id"`
	Employee      *Employee  `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	Status        string     `gorm:"not null;default:'PENDING'" json:"status"` // PENDING, PAID, CANCELLED
	PaymentMethod *string    `json:"payment_method"`                           // CASH, CARD, UPI
	TotalAmount   int        `gorm:"not null;default:0" json:"total_amount"`
	AdvanceAmount int        `gorm:"not null;default:0" json:"advance_amount"`
	RemainingDue  int        `gorm:"-" json:"remaining_due"` // derived at read time, never persisted
	Notes         *string    `json:"notes"`
	DueDate       *time.Time `json:"due_date"`
	CreatedAt     time.Time  `json:"created_at"`

	Items    []OrderItem  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Images   []OrderImage `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`
	ImageIDs []uint       `gorm:"-" json:"image_ids"` // identifiers only, blobs served per-id
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderItem is a line item belonging to an order. Items are only ever written
// as a full set under their order; there is no field-level item patching.
type OrderItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	OrderID     uint    `gorm:"not null;index" json:"order_id"`
	Description string  `gorm:"not null" json:"description"`
	Quantity    int     `gorm:"not null;check:quantity > 0" json:"quantity"`
	Price       int     `gorm:"not null;check:price > 0" json:"price"` // per-unit
	WorkType    string  `gorm:"not null;default:'SIMPLE_WORK'" json:"work_type"`
	ItemNotes   *string `json:"item_notes"`
	ItemStatus  string  `gorm:"not null;default:'NOT_DONE'" json:"item_status"`
}

// TableName specifies the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}

// ValidStatus reports whether s is one of the three order statuses.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusPaid || s == StatusCancelled
}

// ValidPaymentMethod reports whether m is an accepted payment method.
func ValidPaymentMethod(m string) bool {
	return m == PaymentMethodCash || m == PaymentMethodCard || m == PaymentMethodUPI
}

// ValidWorkType reports whether w is a known work type.
func ValidWorkType(w string) bool {
	return w == WorkTypeSimple || w == WorkTypeHand || w == WorkTypeMachine
}
