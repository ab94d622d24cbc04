package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fieldMessages(verr *ValidationError) map[string]string {
	out := make(map[string]string, len(verr.Fields))
	for _, f := range verr.Fields {
		out[f.Field] = f.Message
	}
	return out
}

func TestValidateCollectsAllViolations(t *testing.T) {
	req := CustomerRequest{
		Name:  "A",     // too short
		Phone: "12345", // too short
	}

	verr := Validate(req)
	assert.NotNil(t, verr)
	assert.Len(t, verr.Fields, 2, "every violation must be reported, not just the first")

	msgs := fieldMessages(verr)
	assert.Equal(t, "must be at least 2 characters", msgs["name"])
	assert.Equal(t, "must be at least 10 characters", msgs["phone"])
}

func TestValidateUsesJSONFieldNames(t *testing.T) {
	req := MarkAsPaidRequest{PaymentMethod: "CHEQUE"}

	verr := Validate(req)
	assert.NotNil(t, verr)
	assert.Equal(t, "payment_method", verr.Fields[0].Field)
	assert.Equal(t, "must be one of: CASH, CARD, UPI", verr.Fields[0].Message)
}

func TestValidateNestedItems(t *testing.T) {
	req := CreateOrderRequest{
		CustomerID: 1,
		Items: []OrderItemRequest{
			{Description: "Blouse", Quantity: 2, Price: 100},
			{Description: "", Quantity: 0, Price: -5},
		},
	}

	verr := Validate(req)
	assert.NotNil(t, verr)

	msgs := fieldMessages(verr)
	assert.Contains(t, msgs, "items[1].description")
	assert.Contains(t, msgs, "items[1].quantity")
	assert.Contains(t, msgs, "items[1].price")
	assert.NotContains(t, msgs, "items[0].description")
}

func TestValidateRejectsEmptyItemSetOnCreate(t *testing.T) {
	req := CreateOrderRequest{CustomerID: 1, Items: []OrderItemRequest{}}

	verr := Validate(req)
	assert.NotNil(t, verr)
	msgs := fieldMessages(verr)
	assert.Contains(t, msgs, "items")
}

func TestValidateAllowsEmptyItemSetOnUpdate(t *testing.T) {
	req := UpdateOrderRequest{Items: []OrderItemRequest{}}
	assert.Nil(t, Validate(req))
}

func TestValidateOptionalEmail(t *testing.T) {
	bad := "not-an-email"
	req := CustomerRequest{Name: "Meena", Phone: "9876543210", Email: &bad}
	verr := Validate(req)
	assert.NotNil(t, verr)
	assert.Equal(t, "email", verr.Fields[0].Field)

	// Absent email is fine
	req.Email = nil
	assert.Nil(t, Validate(req))
}

func TestValidatePaymentRequest(t *testing.T) {
	verr := Validate(EmployeePaymentRequest{Amount: -10, Type: "BONUS"})
	assert.NotNil(t, verr)
	msgs := fieldMessages(verr)
	assert.Contains(t, msgs, "amount")
	assert.Equal(t, "must be one of: SALARY, PETTY_CASH, OTHER", msgs["type"])

	assert.Nil(t, Validate(EmployeePaymentRequest{Amount: 5000, Type: "SALARY"}))
}
