package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/asha-tailors/tailorshop-api/models"
	"github.com/asha-tailors/tailorshop-api/services"
	"github.com/asha-tailors/tailorshop-api/validation"
)

// CustomerController handles customer CRUD endpoints
type CustomerController struct {
	db *gorm.DB
}

// NewCustomerController creates a CustomerController backed by the given database
func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{db: db}
}

// List handles GET /api/v1/customers - lists all customers, newest first
func (ctrl *CustomerController) List(c *gin.Context) {
	var customers []models.Customer
	if err := ctrl.db.Order("created_at DESC").Find(&customers).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    customers,
	})
}

// Create handles POST /api/v1/customers - creates a new customer
func (ctrl *CustomerController) Create(c *gin.Context) {
	var req validation.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON")
		return
	}
	if verr := validation.Validate(req); verr != nil {
		respondValidationError(c, verr)
		return
	}

	customer := models.Customer{
		Name:         req.Name,
		Nickname:     req.Nickname,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		PaperCutting: req.PaperCutting,
	}

	if err := ctrl.db.Create(&customer).Error; err != nil {
		if services.IsUniqueViolation(err) {
			respondError(c, http.StatusConflict, "EMAIL_EXISTS", "A customer with this email already exists")
			return
		}
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    customer,
	})
}

// Get handles GET /api/v1/customers/:id
func (ctrl *CustomerController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var customer models.Customer
	if err := ctrl.db.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "NOT_FOUND", "Customer not found")
			return
		}
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    customer,
	})
}

// Update handles PUT /api/v1/customers/:id - full field update
func (ctrl *CustomerController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req validation.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON")
		return
	}
	if verr := validation.Validate(req); verr != nil {
		respondValidationError(c, verr)
		return
	}

	var customer models.Customer
	if err := ctrl.db.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "NOT_FOUND", "Customer not found")
			return
		}
		respondServiceError(c, err)
		return
	}

	updates := map[string]interface{}{
		"name":          req.Name,
		"nickname":      req.Nickname,
		"email":         req.Email,
		"phone":         req.Phone,
		"address":       req.Address,
		"paper_cutting": req.PaperCutting,
	}
	if err := ctrl.db.Model(&customer).Updates(updates).Error; err != nil {
		if services.IsUniqueViolation(err) {
			respondError(c, http.StatusConflict, "EMAIL_EXISTS", "A customer with this email already exists")
			return
		}
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    customer,
	})
}

// Delete handles DELETE /api/v1/customers/:id - blocked while the customer
// still owns any order, because that is a business rule, not a constraint
// violation.
func (ctrl *CustomerController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var customer models.Customer
	if err := ctrl.db.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "NOT_FOUND", "Customer not found")
			return
		}
		respondServiceError(c, err)
		return
	}

	var orderCount int64
	if err := ctrl.db.Model(&models.Order{}).
		Where("customer_id = ?", id).Count(&orderCount).Error; err != nil {
		respondServiceError(c, err)
		return
	}
	if orderCount > 0 {
		respondError(c, http.StatusConflict, "HAS_ORDERS",
			"Cannot delete customer while they have existing orders")
		return
	}

	err := ctrl.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("customer_id = ?", id).
			Delete(&models.CustomerImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&customer).Error
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
