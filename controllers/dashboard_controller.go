package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/asha-tailors/tailorshop-api/models"
)

// DashboardController serves the derived read-only views: due-date buckets,
// per-employee payment totals, and the shop summary. Nothing here is cached
// or persisted; every value is computed at read time.
type DashboardController struct {
	db *gorm.DB
}

// NewDashboardController creates a DashboardController backed by the given database
func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{db: db}
}

// pendingOrdersDue fetches pending orders with a due date inside the window.
// The lower bound is inclusive for the first bucket (an order due right now is
// still due within a day) and exclusive for the later ones so buckets stay
// disjoint.
func (ctrl *DashboardController) pendingOrdersDue(from, until time.Time, inclusive bool) ([]models.Order, error) {
	lower := "due_date > ?"
	if inclusive {
		lower = "due_date >= ?"
	}

	var orders []models.Order
	err := ctrl.db.Preload("Customer").
		Where("status = ? AND "+lower+" AND due_date <= ?", models.StatusPending, from, until).
		Order("due_date ASC").
		Find(&orders).Error
	return orders, err
}

// endOfDay returns the last instant of the day n days from now
func endOfDay(now time.Time, days int) time.Time {
	d := now.AddDate(0, 0, days)
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 0, d.Location())
}

// Orders handles GET /api/v1/dashboard/orders - pending orders bucketed by
// due-date proximity. Each bucket is queried independently; the buckets for
// 1, 5 and 10 days are disjoint ranges.
func (ctrl *DashboardController) Orders(c *gin.Context) {
	now := time.Now()
	tomorrow := endOfDay(now, 1)
	fiveDays := endOfDay(now, 5)
	tenDays := endOfDay(now, 10)

	dueIn1Day, err := ctrl.pendingOrdersDue(now, tomorrow, true)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	dueIn5Days, err := ctrl.pendingOrdersDue(tomorrow, fiveDays, false)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	dueIn10Days, err := ctrl.pendingOrdersDue(fiveDays, tenDays, false)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	var allPending []models.Order
	err = ctrl.db.Preload("Customer").
		Where("status = ?", models.StatusPending).
		Order("due_date ASC").
		Find(&allPending).Error
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"due_in_1_day":   dueIn1Day,
			"due_in_5_days":  dueIn5Days,
			"due_in_10_days": dueIn10Days,
			"all_pending":    allPending,
		},
	})
}

// employeeTotal is one row of the employee payment dashboard
type employeeTotal struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	TotalPaid int    `json:"total_paid"`
}

// Employees handles GET /api/v1/dashboard/employees - per-employee payment
// totals, summed at read time
func (ctrl *DashboardController) Employees(c *gin.Context) {
	var totals []employeeTotal
	err := ctrl.db.Model(&models.Employee{}).
		Select("employees.id, employees.name, COALESCE(SUM(employee_payments.amount), 0) AS total_paid").
		Joins("LEFT JOIN employee_payments ON employee_payments.employee_id = employees.id").
		Group("employees.id, employees.name").
		Order("employees.name ASC").
		Scan(&totals).Error
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    totals,
	})
}

// Summary handles GET /api/v1/dashboard/summary - entity counts plus the five
// most recent orders
func (ctrl *DashboardController) Summary(c *gin.Context) {
	var totalOrders, totalCustomers, totalEmployees int64
	if err := ctrl.db.Model(&models.Order{}).Count(&totalOrders).Error; err != nil {
		respondServiceError(c, err)
		return
	}
	if err := ctrl.db.Model(&models.Customer{}).Count(&totalCustomers).Error; err != nil {
		respondServiceError(c, err)
		return
	}
	if err := ctrl.db.Model(&models.Employee{}).Count(&totalEmployees).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	var recentOrders []models.Order
	err := ctrl.db.Preload("Customer").Preload("Items").
		Order("created_at DESC").Limit(5).
		Find(&recentOrders).Error
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"total_orders":    totalOrders,
			"total_customers": totalCustomers,
			"total_employees": totalEmployees,
			"recent_orders":   recentOrders,
		},
	})
}
