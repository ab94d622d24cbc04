package validation

// CustomerRequest is the payload for creating or updating a customer.
type CustomerRequest struct {
	Name         string  `json:"name" validate:"required,min=2"`
	Nickname     *string `json:"nickname"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Phone        string  `json:"phone" validate:"required,min=10"`
	Address      *string `json:"address"`
	PaperCutting bool    `json:"paper_cutting"`
}

// EmployeeRequest is the payload for creating or updating an employee.
type EmployeeRequest struct {
	Name  string `json:"name" validate:"required,min=2"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,min=10"`
	Role  string `json:"role" validate:"omitempty,oneof=ADMIN EMPLOYEE"`
}

// EmployeePaymentRequest records one cash payment to an employee.
type EmployeePaymentRequest struct {
	Amount int     `json:"amount" validate:"required,gt=0"`
	Type   string  `json:"type" validate:"required,oneof=SALARY PETTY_CASH OTHER"`
	Notes  *string `json:"notes"`
}

// OrderItemRequest is one line item inside an order submission. WorkType is
// not constrained here: unknown values fall back to SIMPLE_WORK downstream.
type OrderItemRequest struct {
	Description string  `json:"description" validate:"required,min=1"`
	Quantity    int     `json:"quantity" validate:"required,gt=0"`
	Price       int     `json:"price" validate:"required,gt=0"`
	WorkType    string  `json:"work_type"`
	ItemNotes   *string `json:"item_notes"`
	ItemStatus  string  `json:"item_status"`
}

// CreateOrderRequest is the JSON part of the multipart order-create payload.
type CreateOrderRequest struct {
	OrderID       *int               `json:"order_id"`
	CustomerID    uint               `json:"customer_id" validate:"required,gt=0"`
	EmployeeID    *uint              `json:"employee_id"`
	Notes         *string            `json:"notes"`
	DueDate       *string            `json:"due_date"`
	AdvanceAmount int                `json:"advance_amount" validate:"gte=0"`
	Items         []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateOrderRequest is the JSON part of the multipart order-update payload.
// The item set replaces the order's items wholesale; an empty set is allowed
// and leaves the order with a zero total.
type UpdateOrderRequest struct {
	EmployeeID    *uint              `json:"employee_id"`
	Notes         *string            `json:"notes"`
	DueDate       *string            `json:"due_date"`
	AdvanceAmount int                `json:"advance_amount" validate:"gte=0"`
	Items         []OrderItemRequest `json:"items" validate:"dive"`
}

// UpdateStatusRequest is the body of PATCH /orders/{id}/status.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING PAID CANCELLED"`
}

// MarkAsPaidRequest is the body of PATCH /orders/{id}/mark-as-paid.
type MarkAsPaidRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required,oneof=CASH CARD UPI"`
}
