package testutil

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/asha-tailors/tailorshop-api/models"
)

// NewTestDB opens an in-memory SQLite database with all models migrated.
// Each call returns a fresh, isolated database.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

// TruncateAll removes every row from every table, children first so foreign
// keys never get in the way. Use it in SetupTest for suites that share one
// database across tests.
func TruncateAll(db *gorm.DB) {
	for _, table := range []string{
		"order_images",
		"order_items",
		"orders",
		"customer_images",
		"employee_payments",
		"employees",
		"customers",
	} {
		db.Exec("DELETE FROM " + table)
	}
}

// SeedCustomer inserts a customer with sensible defaults
func SeedCustomer(t *testing.T, db *gorm.DB, name string) models.Customer {
	t.Helper()

	customer := models.Customer{Name: name, Phone: "9876543210"}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("Failed to seed customer: %v", err)
	}
	return customer
}

// SeedEmployee inserts an employee with a unique email derived from the name
func SeedEmployee(t *testing.T, db *gorm.DB, name, email string) models.Employee {
	t.Helper()

	employee := models.Employee{Name: name, Email: email, Phone: "9876500000", Role: models.RoleEmployee}
	if err := db.Create(&employee).Error; err != nil {
		t.Fatalf("Failed to seed employee: %v", err)
	}
	return employee
}
