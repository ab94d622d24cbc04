package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/asha-tailors/tailorshop-api/models"
)

// CustomerImageCap is the fixed attachment limit per customer.
const CustomerImageCap = 6

// orderImageMimeTypes is the strict whitelist for order uploads. Customer
// uploads only require an image/* content type.
var orderImageMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// ImageService manages the bounded binary-attachment collections hanging off
// customers and orders. Every Get re-reads the blob from the database; there
// is no caching layer because images are immutable once stored.
type ImageService struct {
	db       *gorm.DB
	orderCap int
}

// NewImageService creates an ImageService. orderCap bounds the number of
// images per order; values below 1 fall back to the customer cap.
func NewImageService(db *gorm.DB, orderCap int) *ImageService {
	if orderCap < 1 {
		orderCap = CustomerImageCap
	}
	return &ImageService{db: db, orderCap: orderCap}
}

// OrderImageCap returns the configured per-order attachment limit.
func (s *ImageService) OrderImageCap() int {
	return s.orderCap
}

// AddCustomerImage stores a new image for the customer after checking the
// owner exists, the cap is not reached, and the content type is an image.
func (s *ImageService) AddCustomerImage(customerID uint, blob []byte, mimeType string) (*models.CustomerImage, error) {
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, &InvalidTypeError{MimeType: mimeType}
	}

	var customer models.Customer
	if err := s.db.First(&customer, customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "customer", ID: customerID}
		}
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.CustomerImage{}).
		Where("customer_id = ?", customerID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count >= CustomerImageCap {
		return nil, &LimitExceededError{Cap: CustomerImageCap}
	}

	image := models.CustomerImage{CustomerID: customerID, Image: blob}
	if err := s.db.Create(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

// GetCustomerImage fetches one blob by its composite (customer, image) key.
// Both parts must match so a guessed image id cannot cross customers.
func (s *ImageService) GetCustomerImage(customerID, imageID uint) (*models.CustomerImage, error) {
	var image models.CustomerImage
	err := s.db.Where("id = ? AND customer_id = ?", imageID, customerID).
		First(&image).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "image", ID: imageID}
		}
		return nil, err
	}
	return &image, nil
}

// DeleteCustomerImage removes one image by composite key. Deleting an image
// that does not belong to the customer is a NotFoundError, never a silent
// success.
func (s *ImageService) DeleteCustomerImage(customerID, imageID uint) error {
	result := s.db.Where("id = ? AND customer_id = ?", imageID, customerID).
		Delete(&models.CustomerImage{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Resource: "image", ID: imageID}
	}
	return nil
}

// ListCustomerImages returns metadata only, newest first. Blob bytes are
// fetched one at a time through GetCustomerImage.
func (s *ImageService) ListCustomerImages(customerID uint) ([]models.ImageMeta, error) {
	var customer models.Customer
	if err := s.db.First(&customer, customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "customer", ID: customerID}
		}
		return nil, err
	}

	metas := []models.ImageMeta{}
	err := s.db.Model(&models.CustomerImage{}).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Select("id", "created_at").
		Find(&metas).Error
	if err != nil {
		return nil, err
	}
	return metas, nil
}

// AddOrderImage stores a new image for the order. Order uploads are stricter
// than customer uploads: only jpeg, png and webp are accepted.
func (s *ImageService) AddOrderImage(orderID uint, blob []byte, mimeType string) (*models.OrderImage, error) {
	if !orderImageMimeTypes[mimeType] {
		return nil, &InvalidTypeError{MimeType: mimeType}
	}

	var order models.Order
	if err := s.db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "order", ID: orderID}
		}
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.OrderImage{}).
		Where("order_id = ?", orderID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count >= int64(s.orderCap) {
		return nil, &LimitExceededError{Cap: s.orderCap}
	}

	image := models.OrderImage{OrderID: orderID, Image: blob}
	if err := s.db.Create(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

// OrderImageUpload pairs one uploaded blob with its declared content type.
type OrderImageUpload struct {
	Blob     []byte
	MimeType string
}

// AddOrderImages stores a batch of images for the order. The whole batch is
// validated up front: one bad content type, or a batch that would push the
// order past the cap, rejects everything before any row is written.
func (s *ImageService) AddOrderImages(orderID uint, uploads []OrderImageUpload) ([]models.OrderImage, error) {
	for _, upload := range uploads {
		if !orderImageMimeTypes[upload.MimeType] {
			return nil, &InvalidTypeError{MimeType: upload.MimeType}
		}
	}

	var order models.Order
	if err := s.db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "order", ID: orderID}
		}
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.OrderImage{}).
		Where("order_id = ?", orderID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count+int64(len(uploads)) > int64(s.orderCap) {
		return nil, &LimitExceededError{Cap: s.orderCap}
	}

	images := make([]models.OrderImage, len(uploads))
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for i, upload := range uploads {
			images[i] = models.OrderImage{OrderID: orderID, Image: upload.Blob}
			if err := tx.Create(&images[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return images, nil
}

// GetOrderImage fetches one blob by its composite (order, image) key.
func (s *ImageService) GetOrderImage(orderID, imageID uint) (*models.OrderImage, error) {
	var image models.OrderImage
	err := s.db.Where("id = ? AND order_id = ?", imageID, orderID).
		First(&image).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "image", ID: imageID}
		}
		return nil, err
	}
	return &image, nil
}

// DeleteOrderImage removes one image by composite key.
func (s *ImageService) DeleteOrderImage(orderID, imageID uint) error {
	result := s.db.Where("id = ? AND order_id = ?", imageID, orderID).
		Delete(&models.OrderImage{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Resource: "image", ID: imageID}
	}
	return nil
}

// ListOrderImages returns metadata only, newest first.
func (s *ImageService) ListOrderImages(orderID uint) ([]models.ImageMeta, error) {
	var order models.Order
	if err := s.db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "order", ID: orderID}
		}
		return nil, err
	}

	metas := []models.ImageMeta{}
	err := s.db.Model(&models.OrderImage{}).
		Where("order_id = ?", orderID).
		Order("created_at DESC").
		Select("id", "created_at").
		Find(&metas).Error
	if err != nil {
		return nil, err
	}
	return metas, nil
}
