package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/asha-tailors/tailorshop-api/models"
)

// OrderItemInput is one line item in a create or update submission. The item
// set is always written whole: an update replaces every existing item.
type OrderItemInput struct {
	Description string
	Quantity    int
	Price       int
	WorkType    string
	ItemNotes   *string
	ItemStatus  string
}

// CreateOrderInput carries everything needed to create an order aggregate.
type CreateOrderInput struct {
	OrderID       *int
	CustomerID    uint
	EmployeeID    *uint
	Notes         *string
	DueDate       *time.Time
	AdvanceAmount int
	Items         []OrderItemInput
	Images        [][]byte
}

// UpdateOrderInput carries an order update. Items replace the full item set;
// existing images whose ids are absent from ImageIDsToKeep are deleted.
type UpdateOrderInput struct {
	EmployeeID     *uint
	Notes          *string
	DueDate        *time.Time
	AdvanceAmount  int
	Items          []OrderItemInput
	ImageIDsToKeep []uint
	NewImages      [][]byte
}

// OrderService is the only component that mutates an order together with its
// items and images. Every multi-row write runs in a single transaction.
type OrderService struct {
	db *gorm.DB
}

// NewOrderService creates an OrderService backed by the given database handle
func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// toItemAmounts adapts inputs for the amount calculator
func toItemAmounts(items []OrderItemInput) []ItemAmount {
	amounts := make([]ItemAmount, len(items))
	for i, item := range items {
		amounts[i] = ItemAmount{Quantity: item.Quantity, Price: item.Price}
	}
	return amounts
}

// buildItems converts validated inputs into rows, applying the work-type and
// item-status defaults.
func buildItems(orderID uint, items []OrderItemInput) []models.OrderItem {
	rows := make([]models.OrderItem, len(items))
	for i, item := range items {
		workType := item.WorkType
		if !models.ValidWorkType(workType) {
			workType = models.WorkTypeSimple
		}
		itemStatus := item.ItemStatus
		if itemStatus != models.ItemStatusDone {
			itemStatus = models.ItemStatusNotDone
		}
		rows[i] = models.OrderItem{
			OrderID:     orderID,
			Description: item.Description,
			Quantity:    item.Quantity,
			Price:       item.Price,
			WorkType:    workType,
			ItemNotes:   item.ItemNotes,
			ItemStatus:  itemStatus,
		}
	}
	return rows
}

// Create persists a new order, its line items and its images as one
// all-or-nothing transaction. The initial status is derived from the advance:
// an advance covering the total means the order is already PAID.
func (s *OrderService) Create(input CreateOrderInput) (*models.Order, error) {
	var customer models.Customer
	if err := s.db.First(&customer, input.CustomerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "customer", ID: input.CustomerID}
		}
		return nil, err
	}

	if input.EmployeeID != nil {
		var employee models.Employee
		if err := s.db.First(&employee, *input.EmployeeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &NotFoundError{Resource: "employee", ID: *input.EmployeeID}
			}
			return nil, err
		}
	}

	total := ComputeTotal(toItemAmounts(input.Items))

	order := models.Order{
		OrderID:       input.OrderID,
		CustomerID:    input.CustomerID,
		EmployeeID:    input.EmployeeID,
		Status:        DeriveStatus(input.AdvanceAmount, total),
		TotalAmount:   total,
		AdvanceAmount: input.AdvanceAmount,
		Notes:         input.Notes,
		DueDate:       input.DueDate,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		items := buildItems(order.ID, input.Items)
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}

		for _, blob := range input.Images {
			image := models.OrderImage{OrderID: order.ID, Image: blob}
			if err := tx.Create(&image).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(order.ID)
}

// Get loads an order with its customer, assignee and items. Image blobs are
// not loaded; only their identifiers are attached.
func (s *OrderService) Get(id uint) (*models.Order, error) {
	var order models.Order
	err := s.db.Preload("Customer").Preload("Employee").Preload("Items").
		First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "order", ID: id}
		}
		return nil, err
	}

	if err := s.attachDerived(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

// List returns orders newest-first, optionally filtered by status, with
// offset pagination. The second return value is the total row count for the
// filter, independent of the page.
func (s *OrderService) List(status string, page, pageSize int) ([]models.Order, int64, error) {
	query := s.db.Model(&models.Order{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	var orders []models.Order
	err := query.Preload("Customer").Preload("Employee").Preload("Items").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}

	for i := range orders {
		if err := s.attachDerived(&orders[i]); err != nil {
			return nil, 0, err
		}
	}
	return orders, count, nil
}

// Update applies a destructive-replace edit: images outside the keep-list are
// deleted, new images inserted, the entire item set replaced, the total
// recomputed, and the order's scalar fields updated — all in one transaction.
func (s *OrderService) Update(id uint, input UpdateOrderInput) (*models.Order, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "order", ID: id}
			}
			return err
		}

		// Diff existing image ids against the keep-list
		var existingIDs []uint
		if err := tx.Model(&models.OrderImage{}).Where("order_id = ?", id).
			Pluck("id", &existingIDs).Error; err != nil {
			return err
		}
		keep := make(map[uint]bool, len(input.ImageIDsToKeep))
		for _, imageID := range input.ImageIDsToKeep {
			keep[imageID] = true
		}
		var toDelete []uint
		for _, imageID := range existingIDs {
			if !keep[imageID] {
				toDelete = append(toDelete, imageID)
			}
		}
		if len(toDelete) > 0 {
			if err := tx.Where("id IN ?", toDelete).
				Delete(&models.OrderImage{}).Error; err != nil {
				return err
			}
		}

		for _, blob := range input.NewImages {
			image := models.OrderImage{OrderID: id, Image: blob}
			if err := tx.Create(&image).Error; err != nil {
				return err
			}
		}

		// Full item replacement: delete everything, insert the new set
		if err := tx.Where("order_id = ?", id).
			Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		items := buildItems(id, input.Items)
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}

		total := ComputeTotal(toItemAmounts(input.Items))
		updates := map[string]interface{}{
			"employee_id":    input.EmployeeID,
			"notes":          input.Notes,
			"due_date":       input.DueDate,
			"advance_amount": input.AdvanceAmount,
			"total_amount":   total,
		}
		return tx.Model(&order).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}

	return s.Get(id)
}

// Delete removes the order and cascade-deletes its items and images in one
// transaction. Deletion is final.
func (s *OrderService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "order", ID: id}
			}
			return err
		}

		if err := tx.Where("order_id = ?", id).
			Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", id).
			Delete(&models.OrderImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
}

// MarkAsPaid transitions the order to PAID and records how it was paid. The
// advance and total are left untouched.
func (s *OrderService) MarkAsPaid(id uint, paymentMethod string) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "order", ID: id}
		}
		return nil, err
	}

	updates := map[string]interface{}{
		"status":         models.StatusPaid,
		"payment_method": paymentMethod,
	}
	if err := s.db.Model(&order).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.Get(id)
}

// UpdateStatus sets the order's status. Any of the three statuses is
// reachable from any other; there is deliberately no transition guard.
func (s *OrderService) UpdateStatus(id uint, status string) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "order", ID: id}
		}
		return nil, err
	}

	if err := s.db.Model(&order).Update("status", status).Error; err != nil {
		return nil, err
	}
	return s.Get(id)
}

// attachDerived fills the read-time fields: remaining due and image ids.
func (s *OrderService) attachDerived(order *models.Order) error {
	order.RemainingDue = ComputeRemainingDue(order.TotalAmount, order.AdvanceAmount)

	var imageIDs []uint
	if err := s.db.Model(&models.OrderImage{}).Where("order_id = ?", order.ID).
		Order("created_at DESC").Pluck("id", &imageIDs).Error; err != nil {
		return err
	}
	order.ImageIDs = imageIDs
	return nil
}
