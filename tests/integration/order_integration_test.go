package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/asha-tailors/tailorshop-api/config"
	"github.com/asha-tailors/tailorshop-api/controllers"
	"github.com/asha-tailors/tailorshop-api/models"
	"github.com/asha-tailors/tailorshop-api/services"
	"github.com/asha-tailors/tailorshop-api/tests/testutil"
)

// OrderIntegrationTestSuite exercises the order endpoints through the full
// router, from HTTP request down to the database.
type OrderIntegrationTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

// SetupSuite runs once before all tests
func (suite *OrderIntegrationTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)

	suite.db = testutil.NewTestDB(suite.T())
	suite.router = suite.createRouter()
}

// TearDownSuite runs once after all tests
func (suite *OrderIntegrationTestSuite) TearDownSuite() {
	if suite.db != nil {
		sqlDB, _ := suite.db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
	}
}

// SetupTest runs before each test
func (suite *OrderIntegrationTestSuite) SetupTest() {
	testutil.TruncateAll(suite.db)
}

// createRouter wires the order and image controllers the way main does
func (suite *OrderIntegrationTestSuite) createRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	orderCtrl := controllers.NewOrderController(services.NewOrderService(suite.db))
	imageCtrl := controllers.NewImageController(services.NewImageService(suite.db, config.DefaultOrderImageCap))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/orders", orderCtrl.List)
		v1.POST("/orders", orderCtrl.Create)
		v1.GET("/orders/:id", orderCtrl.Get)
		v1.PUT("/orders/:id", orderCtrl.Update)
		v1.DELETE("/orders/:id", orderCtrl.Delete)
		v1.PATCH("/orders/:id/status", orderCtrl.UpdateStatus)
		v1.PATCH("/orders/:id/mark-as-paid", orderCtrl.MarkAsPaid)

		v1.GET("/orders/:id/images", imageCtrl.ListOrderImages)
		v1.GET("/orders/:id/images/:imageId", imageCtrl.GetOrderImage)
	}

	return router
}

// doJSON sends a JSON request through the router
func (suite *OrderIntegrationTestSuite) doJSON(method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	suite.NoError(err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// doMultipart sends a multipart order payload with optional image files
func (suite *OrderIntegrationTestSuite) doMultipart(method, path string, data interface{}, imageIDs []uint, images map[string][]byte) *httptest.ResponseRecorder {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	payload, err := json.Marshal(data)
	suite.NoError(err)
	suite.NoError(writer.WriteField("data", string(payload)))

	if imageIDs != nil {
		keep, err := json.Marshal(imageIDs)
		suite.NoError(err)
		suite.NoError(writer.WriteField("image_ids", string(keep)))
	}

	for filename, content := range images {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="images"; filename=%q`, filename))
		header.Set("Content-Type", "image/png")
		part, err := writer.CreatePart(header)
		suite.NoError(err)
		_, err = part.Write(content)
		suite.NoError(err)
	}
	suite.NoError(writer.Close())

	req, err := http.NewRequest(method, path, body)
	suite.NoError(err)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *OrderIntegrationTestSuite) decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func (suite *OrderIntegrationTestSuite) TestOrderLifecycle() {
	customer := testutil.SeedCustomer(suite.T(), suite.db, "Meena Sharma")
	employee := testutil.SeedEmployee(suite.T(), suite.db, "Ravi Kumar", "ravi@example.com")

	// Create with two items and one photo in a single multipart request
	w := suite.doMultipart("POST", "/api/v1/orders", map[string]interface{}{
		"customer_id":    customer.ID,
		"employee_id":    employee.ID,
		"advance_amount": 100,
		"items": []map[string]interface{}{
			{"description": "Blouse stitching", "quantity": 2, "price": 100, "work_type": "HAND_WORK"},
			{"description": "Fall and pico", "quantity": 1, "price": 50},
		},
	}, nil, map[string][]byte{"design.png": []byte("design-photo")})
	suite.Equal(http.StatusCreated, w.Code)

	created := suite.decode(w)["data"].(map[string]interface{})
	orderID := uint(created["id"].(float64))
	suite.Equal(float64(250), created["total_amount"])
	suite.Equal(float64(150), created["remaining_due"])
	suite.Equal(models.StatusPending, created["status"])
	suite.Len(created["image_ids"].([]interface{}), 1)

	// The attached photo is retrievable by id
	imageID := uint(created["image_ids"].([]interface{})[0].(float64))
	w = suite.doJSON("GET", fmt.Sprintf("/api/v1/orders/%d/images/%d", orderID, imageID), nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal([]byte("design-photo"), w.Body.Bytes())

	// Replace the item set; total is recomputed, old items are gone
	w = suite.doMultipart("PUT", fmt.Sprintf("/api/v1/orders/%d", orderID), map[string]interface{}{
		"advance_amount": 100,
		"items": []map[string]interface{}{
			{"description": "Lehenga alteration", "quantity": 1, "price": 400},
		},
	}, []uint{imageID}, nil)
	suite.Equal(http.StatusOK, w.Code)

	updated := suite.decode(w)["data"].(map[string]interface{})
	suite.Equal(float64(400), updated["total_amount"])
	suite.Equal(float64(300), updated["remaining_due"])
	suite.Len(updated["items"].([]interface{}), 1)
	suite.Len(updated["image_ids"].([]interface{}), 1)

	// Mark as paid records the payment method and flips the status only
	w = suite.doJSON("PATCH", fmt.Sprintf("/api/v1/orders/%d/mark-as-paid", orderID), map[string]interface{}{
		"payment_method": "CASH",
	})
	suite.Equal(http.StatusOK, w.Code)
	paid := suite.decode(w)["data"].(map[string]interface{})
	suite.Equal(models.StatusPaid, paid["status"])
	suite.Equal("CASH", paid["payment_method"])
	suite.Equal(float64(400), paid["total_amount"])

	// Delete removes the order and everything hanging off it
	w = suite.doJSON("DELETE", fmt.Sprintf("/api/v1/orders/%d", orderID), nil)
	suite.Equal(http.StatusNoContent, w.Code)

	var itemCount, imageCount int64
	suite.db.Model(&models.OrderItem{}).Where("order_id = ?", orderID).Count(&itemCount)
	suite.db.Model(&models.OrderImage{}).Where("order_id = ?", orderID).Count(&imageCount)
	suite.Equal(int64(0), itemCount)
	suite.Equal(int64(0), imageCount)
}

func (suite *OrderIntegrationTestSuite) TestListFilterAndPagination() {
	customer := testutil.SeedCustomer(suite.T(), suite.db, "Meena Sharma")

	for i := 0; i < 3; i++ {
		w := suite.doJSON("POST", "/api/v1/orders", map[string]interface{}{
			"customer_id": customer.ID,
			"items": []map[string]interface{}{
				{"description": fmt.Sprintf("Saree fall %d", i), "quantity": 1, "price": 50},
			},
		})
		suite.Equal(http.StatusCreated, w.Code)
	}
	var first models.Order
	suite.NoError(suite.db.Order("id ASC").First(&first).Error)
	suite.db.Model(&first).Update("status", models.StatusCancelled)

	w := suite.doJSON("GET", "/api/v1/orders?status=PENDING", nil)
	suite.Equal(http.StatusOK, w.Code)
	response := suite.decode(w)
	suite.Len(response["data"].([]interface{}), 2)
	suite.Equal(float64(2), response["total"])

	w = suite.doJSON("GET", "/api/v1/orders?status=PENDING&page=2&page_size=1", nil)
	response = suite.decode(w)
	suite.Len(response["data"].([]interface{}), 1)
	suite.Equal(float64(2), response["total"])
}

func (suite *OrderIntegrationTestSuite) TestInvalidOrderRejectedWholesale() {
	customer := testutil.SeedCustomer(suite.T(), suite.db, "Meena Sharma")

	w := suite.doJSON("POST", "/api/v1/orders", map[string]interface{}{
		"customer_id": customer.ID,
		"items": []map[string]interface{}{
			{"description": "Blouse stitching", "quantity": 2, "price": 100},
			{"description": "", "quantity": 0, "price": -5},
		},
	})
	suite.Equal(http.StatusBadRequest, w.Code)

	// Nothing was persisted for the failed request
	var orderCount int64
	suite.db.Model(&models.Order{}).Count(&orderCount)
	suite.Equal(int64(0), orderCount)
}

func TestOrderIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderIntegrationTestSuite))
}
