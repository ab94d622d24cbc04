package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableNames(t *testing.T) {
	assert.Equal(t, "orders", Order{}.TableName())
	assert.Equal(t, "order_items", OrderItem{}.TableName())
	assert.Equal(t, "customers", Customer{}.TableName())
	assert.Equal(t, "employees", Employee{}.TableName())
	assert.Equal(t, "employee_payments", EmployeePayment{}.TableName())
	assert.Equal(t, "order_images", OrderImage{}.TableName())
	assert.Equal(t, "customer_images", CustomerImage{}.TableName())
}

func TestValidStatus(t *testing.T) {
	tests := []struct {
		name   string
		status string
		valid  bool
	}{
		{"pending", StatusPending, true},
		{"paid", StatusPaid, true},
		{"cancelled", StatusCancelled, true},
		{"lowercase rejected", "pending", false},
		{"unknown rejected", "SHIPPED", false},
		{"empty rejected", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidStatus(tt.status))
		})
	}
}

func TestValidPaymentMethod(t *testing.T) {
	assert.True(t, ValidPaymentMethod(PaymentMethodCash))
	assert.True(t, ValidPaymentMethod(PaymentMethodCard))
	assert.True(t, ValidPaymentMethod(PaymentMethodUPI))
	assert.False(t, ValidPaymentMethod("CHEQUE"))
	assert.False(t, ValidPaymentMethod(""))
}

func TestValidWorkType(t *testing.T) {
	assert.True(t, ValidWorkType(WorkTypeSimple))
	assert.True(t, ValidWorkType(WorkTypeHand))
	assert.True(t, ValidWorkType(WorkTypeMachine))
	assert.False(t, ValidWorkType("EMBROIDERY"))
}

func TestAllListsEveryModel(t *testing.T) {
	// Migration covers all seven tables
	assert.Len(t, All(), 7)
}
