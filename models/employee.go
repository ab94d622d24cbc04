package models

import (
	"time"
)

// Employee roles
const (
	RoleAdmin    = "ADMIN"
	RoleEmployee = "EMPLOYEE"
)

// Employee payment types
const (
	PaymentTypeSalary    = "SALARY"
	PaymentTypePettyCash = "PETTY_CASH"
	PaymentTypeOther     = "OTHER"
)

// Employee represents a staff member who can be assigned to orders
type Employee struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Phone     string    `gorm:"not null" json:"phone"`
	Role      string    `gorm:"not null;default:'EMPLOYEE'" json:"role"` // ADMIN or EMPLOYEE
	CreatedAt time.Time `json:"created_at"`

	Orders   []Order           `gorm:"foreignKey:EmployeeID" json:"-"`
	Payments []EmployeePayment `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for the Employee model
func (Employee) TableName() string {
	return "employees"
}

// EmployeePayment records a cash payment made to an employee.
// Payments are append-only: there is no update or delete operation.
type EmployeePayment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	EmployeeID  uint      `gorm:"not null;index" json:"employee_id"`
	Amount      int       `gorm:"not null;check:amount > 0" json:"amount"`
	Type        string    `gorm:"not null" json:"type"` // SALARY, PETTY_CASH, OTHER
	Notes       *string   `json:"notes"`
	PaymentDate time.Time `gorm:"not null" json:"payment_date"`
}

// TableName specifies the table name for the EmployeePayment model
func (EmployeePayment) TableName() string {
	return "employee_payments"
}
