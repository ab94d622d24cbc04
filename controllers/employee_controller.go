package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/asha-tailors/tailorshop-api/models"
	"github.com/asha-tailors/tailorshop-api/services"
	"github.com/asha-tailors/tailorshop-api/validation"
)

// EmployeeController handles employee CRUD and payment endpoints
type EmployeeController struct {
	db *gorm.DB
}

// NewEmployeeController creates an EmployeeController backed by the given database
func NewEmployeeController(db *gorm.DB) *EmployeeController {
	return &EmployeeController{db: db}
}

// List handles GET /api/v1/employees - optionally filtered by role
func (ctrl *EmployeeController) List(c *gin.Context) {
	role := c.Query("role")
	if role != "" && role != models.RoleAdmin && role != models.RoleEmployee {
		respondError(c, http.StatusBadRequest, "INVALID_ROLE",
			"Invalid role. Must be either ADMIN or EMPLOYEE")
		return
	}

	query := ctrl.db.Order("created_at DESC")
	if role != "" {
		query = query.Where("role = ?", role)
	}

	var employees []models.Employee
	if err := query.Find(&employees).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    employees,
	})
}

// Create handles POST /api/v1/employees
func (ctrl *EmployeeController) Create(c *gin.Context) {
	var req validation.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON")
		return
	}
	if verr := validation.Validate(req); verr != nil {
		respondValidationError(c, verr)
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleEmployee
	}

	employee := models.Employee{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Role:  role,
	}

	if err := ctrl.db.Create(&employee).Error; err != nil {
		if services.IsUniqueViolation(err) {
			respondError(c, http.StatusConflict, "EMAIL_EXISTS", "An employee with this email already exists")
			return
		}
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    employee,
	})
}

// Get handles GET /api/v1/employees/:id
func (ctrl *EmployeeController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var employee models.Employee
	if err := ctrl.db.First(&employee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "NOT_FOUND", "Employee not found")
			return
		}
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    employee,
	})
}

// Update handles PUT /api/v1/employees/:id
func (ctrl *EmployeeController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req validation.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON")
		return
	}
	if verr := validation.Validate(req); verr != nil {
		respondValidationError(c, verr)
		return
	}

	var employee models.Employee
	if err := ctrl.db.First(&employee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "NOT_FOUND", "Employee not found")
			return
		}
		respondServiceError(c, err)
		return
	}

	updates := map[string]interface{}{
		"name":  req.Name,
		"email": req.Email,
		"phone": req.Phone,
	}
	if req.Role != "" {
		updates["role"] = req.Role
	}
	if err := ctrl.db.Model(&employee).Updates(updates).Error; err != nil {
		if services.IsUniqueViolation(err) {
			respondError(c, http.StatusConflict, "EMAIL_EXISTS", "An employee with this email already exists")
			return
		}
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    employee,
	})
}

// Delete handles DELETE /api/v1/employees/:id - blocked while any order is
// assigned to the employee.
func (ctrl *EmployeeController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var employee models.Employee
	if err := ctrl.db.First(&employee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "NOT_FOUND", "Employee not found")
			return
		}
		respondServiceError(c, err)
		return
	}

	var orderCount int64
	if err := ctrl.db.Model(&models.Order{}).
		Where("employee_id = ?", id).Count(&orderCount).Error; err != nil {
		respondServiceError(c, err)
		return
	}
	if orderCount > 0 {
		respondError(c, http.StatusBadRequest, "HAS_ORDERS",
			"Cannot delete employee while orders are assigned to them")
		return
	}

	err := ctrl.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employee_id = ?", id).
			Delete(&models.EmployeePayment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&employee).Error
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreatePayment handles POST /api/v1/employees/:id/payments. Payments are
// append-only; there is no update or delete.
func (ctrl *EmployeeController) CreatePayment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req validation.EmployeePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON")
		return
	}
	if verr := validation.Validate(req); verr != nil {
		respondValidationError(c, verr)
		return
	}

	var employee models.Employee
	if err := ctrl.db.First(&employee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "NOT_FOUND", "Employee not found")
			return
		}
		respondServiceError(c, err)
		return
	}

	payment := models.EmployeePayment{
		EmployeeID:  id,
		Amount:      req.Amount,
		Type:        req.Type,
		Notes:       req.Notes,
		PaymentDate: time.Now(),
	}
	if err := ctrl.db.Create(&payment).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    payment,
	})
}

// ListPayments handles GET /api/v1/employees/:id/payments - newest first
func (ctrl *EmployeeController) ListPayments(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var employee models.Employee
	if err := ctrl.db.First(&employee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "NOT_FOUND", "Employee not found")
			return
		}
		respondServiceError(c, err)
		return
	}

	var payments []models.EmployeePayment
	if err := ctrl.db.Where("employee_id = ?", id).
		Order("payment_date DESC").Find(&payments).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    payments,
	})
}
