package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/asha-tailors/tailorshop-api/models"
	"github.com/asha-tailors/tailorshop-api/services"
	"github.com/asha-tailors/tailorshop-api/utils"
	"github.com/asha-tailors/tailorshop-api/validation"
)

// OrderController handles the order aggregate endpoints. All multi-row writes
// go through the OrderService so they stay transactional.
type OrderController struct {
	orders *services.OrderService
}

// NewOrderController creates an OrderController using the given service
func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// toItemInputs converts validated request items into service inputs
func toItemInputs(items []validation.OrderItemRequest) []services.OrderItemInput {
	inputs := make([]services.OrderItemInput, len(items))
	for i, item := range items {
		inputs[i] = services.OrderItemInput{
			Description: item.Description,
			Quantity:    item.Quantity,
			Price:       item.Price,
			WorkType:    item.WorkType,
			ItemNotes:   item.ItemNotes,
			ItemStatus:  item.ItemStatus,
		}
	}
	return inputs
}

// readUploadedImages reads every file in the form field "images" into memory
func readUploadedImages(c *gin.Context) ([][]byte, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}

	blobs := make([][]byte, 0, len(form.File["images"]))
	for _, fileHeader := range form.File["images"] {
		data, _, err := utils.ReadImageFile(fileHeader)
		if err != nil {
			return nil, err
		}
		blobs = append(blobs, data)
	}
	return blobs, nil
}

// List handles GET /api/v1/orders - newest first, with an optional status
// filter and offset pagination
func (ctrl *OrderController) List(c *gin.Context) {
	status := c.Query("status")
	if status != "" && !models.ValidStatus(status) {
		respondError(c, http.StatusBadRequest, "INVALID_STATUS",
			"Status must be one of PENDING, PAID, CANCELLED")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	orders, total, err := ctrl.orders.List(status, page, pageSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    orders,
		"total":   total,
	})
}

// Create handles POST /api/v1/orders. The payload is either plain JSON or a
// multipart form with a "data" JSON field plus optional "images" files, so
// an order and its reference photos land in one transaction.
func (ctrl *OrderController) Create(c *gin.Context) {
	var req validation.CreateOrderRequest
	var images [][]byte

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		data := c.PostForm("data")
		if data == "" {
			respondError(c, http.StatusBadRequest, "MISSING_DATA", "Form field 'data' is required")
			return
		}
		if err := json.Unmarshal([]byte(data), &req); err != nil {
			respondError(c, http.StatusBadRequest, "INVALID_JSON", "Form field 'data' must be valid JSON")
			return
		}
		var err error
		images, err = readUploadedImages(c)
		if err != nil {
			respondServiceError(c, err)
			return
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON")
			return
		}
	}

	if verr := validation.Validate(req); verr != nil {
		respondValidationError(c, verr)
		return
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_DATE", "Due date must be an RFC 3339 timestamp or YYYY-MM-DD")
		return
	}

	order, err := ctrl.orders.Create(services.CreateOrderInput{
		OrderID:       req.OrderID,
		CustomerID:    req.CustomerID,
		EmployeeID:    req.EmployeeID,
		Notes:         req.Notes,
		DueDate:       dueDate,
		AdvanceAmount: req.AdvanceAmount,
		Items:         toItemInputs(req.Items),
		Images:        images,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    order,
	})
}

// Get handles GET /api/v1/orders/:id
func (ctrl *OrderController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	order, err := ctrl.orders.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// Update handles PUT /api/v1/orders/:id. The multipart form carries a "data"
// JSON field, an "image_ids" keep-list, and new "images" files. Items are
// replaced wholesale and images outside the keep-list are deleted; none of it
// is a merge.
func (ctrl *OrderController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req validation.UpdateOrderRequest
	var keepIDs []uint
	var newImages [][]byte

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		data := c.PostForm("data")
		if data == "" {
			respondError(c, http.StatusBadRequest, "MISSING_DATA", "Form field 'data' is required")
			return
		}
		if err := json.Unmarshal([]byte(data), &req); err != nil {
			respondError(c, http.StatusBadRequest, "INVALID_JSON", "Form field 'data' must be valid JSON")
			return
		}

		if raw := c.PostForm("image_ids"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &keepIDs); err != nil {
				respondError(c, http.StatusBadRequest, "INVALID_JSON", "Form field 'image_ids' must be a JSON array of ids")
				return
			}
		}

		var err error
		newImages, err = readUploadedImages(c)
		if err != nil {
			respondServiceError(c, err)
			return
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON")
			return
		}
	}

	if verr := validation.Validate(req); verr != nil {
		respondValidationError(c, verr)
		return
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_DATE", "Due date must be an RFC 3339 timestamp or YYYY-MM-DD")
		return
	}

	order, err := ctrl.orders.Update(id, services.UpdateOrderInput{
		EmployeeID:     req.EmployeeID,
		Notes:          req.Notes,
		DueDate:        dueDate,
		AdvanceAmount:  req.AdvanceAmount,
		Items:          toItemInputs(req.Items),
		ImageIDsToKeep: keepIDs,
		NewImages:      newImages,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// Delete handles DELETE /api/v1/orders/:id - removes the order together with
// its items and images
func (ctrl *OrderController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.orders.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UpdateStatus handles PATCH /api/v1/orders/:id/status. Any of the three
// statuses may be set regardless of the current one.
func (ctrl *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req validation.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON")
		return
	}
	if verr := validation.Validate(req); verr != nil {
		respondValidationError(c, verr)
		return
	}

	order, err := ctrl.orders.UpdateStatus(id, req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// MarkAsPaid handles PATCH /api/v1/orders/:id/mark-as-paid. This is a one-way
// convenience transition; it never touches the advance or total.
func (ctrl *OrderController) MarkAsPaid(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req validation.MarkAsPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON")
		return
	}
	if verr := validation.Validate(req); verr != nil {
		respondValidationError(c, verr)
		return
	}

	order, err := ctrl.orders.MarkAsPaid(id, req.PaymentMethod)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}
