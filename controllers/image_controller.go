package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asha-tailors/tailorshop-api/services"
	"github.com/asha-tailors/tailorshop-api/utils"
)

// ImageController serves the bounded attachment collections for customers and
// orders. Blobs are immutable once stored, so GETs carry a long-lived
// immutable cache header.
type ImageController struct {
	images *services.ImageService
}

// NewImageController creates an ImageController using the given service
func NewImageController(images *services.ImageService) *ImageController {
	return &ImageController{images: images}
}

// serveBlob writes raw image bytes with content sniffing and cache headers
func serveBlob(c *gin.Context, blob []byte) {
	c.Header("Cache-Control", "public, max-age=31536000, immutable")
	c.Data(http.StatusOK, http.DetectContentType(blob), blob)
}

// ListCustomerImages handles GET /api/v1/customers/:id/images - metadata
// only, never blob bytes
func (ctrl *ImageController) ListCustomerImages(c *gin.Context) {
	customerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	metas, err := ctrl.images.ListCustomerImages(customerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    metas,
	})
}

// UploadCustomerImage handles POST /api/v1/customers/:id/images - one file
// under form field "image", capped at 6 per customer
func (ctrl *ImageController) UploadCustomerImage(c *gin.Context) {
	customerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "MISSING_FILE", "No image provided")
		return
	}

	blob, mimeType, err := utils.ReadImageFile(fileHeader)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	image, err := ctrl.images.AddCustomerImage(customerID, blob, mimeType)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    gin.H{"id": image.ID},
	})
}

// GetCustomerImage handles GET /api/v1/customers/:id/images/:imageId - serves
// raw bytes; both halves of the composite key must match
func (ctrl *ImageController) GetCustomerImage(c *gin.Context) {
	customerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	imageID, ok := parseIDParam(c, "imageId")
	if !ok {
		return
	}

	image, err := ctrl.images.GetCustomerImage(customerID, imageID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	serveBlob(c, image.Image)
}

// DeleteCustomerImage handles DELETE /api/v1/customers/:id/images/:imageId
func (ctrl *ImageController) DeleteCustomerImage(c *gin.Context) {
	customerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	imageID, ok := parseIDParam(c, "imageId")
	if !ok {
		return
	}

	if err := ctrl.images.DeleteCustomerImage(customerID, imageID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListOrderImages handles GET /api/v1/orders/:id/images
func (ctrl *ImageController) ListOrderImages(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	metas, err := ctrl.images.ListOrderImages(orderID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    metas,
	})
}

// UploadOrderImages handles POST /api/v1/orders/:id/images - one or more
// files under form field "images", restricted to jpeg/png/webp. The batch is
// all-or-nothing: one bad file rejects the whole request with nothing stored.
func (ctrl *ImageController) UploadOrderImages(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil || len(form.File["images"]) == 0 {
		respondError(c, http.StatusBadRequest, "MISSING_FILE", "No images provided")
		return
	}

	uploads := make([]services.OrderImageUpload, 0, len(form.File["images"]))
	for _, fileHeader := range form.File["images"] {
		blob, mimeType, err := utils.ReadImageFile(fileHeader)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		uploads = append(uploads, services.OrderImageUpload{Blob: blob, MimeType: mimeType})
	}

	images, err := ctrl.images.AddOrderImages(orderID, uploads)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	created := make([]gin.H, 0, len(images))
	for _, image := range images {
		created = append(created, gin.H{"id": image.ID})
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    created,
	})
}

// GetOrderImage handles GET /api/v1/orders/:id/images/:imageId
func (ctrl *ImageController) GetOrderImage(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	imageID, ok := parseIDParam(c, "imageId")
	if !ok {
		return
	}

	image, err := ctrl.images.GetOrderImage(orderID, imageID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	serveBlob(c, image.Image)
}

// DeleteOrderImage handles DELETE /api/v1/orders/:id/images/:imageId
func (ctrl *ImageController) DeleteOrderImage(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	imageID, ok := parseIDParam(c, "imageId")
	if !ok {
		return
	}

	if err := ctrl.images.DeleteOrderImage(orderID, imageID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
