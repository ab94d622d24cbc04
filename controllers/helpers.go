package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/asha-tailors/tailorshop-api/services"
	"github.com/asha-tailors/tailorshop-api/utils"
	"github.com/asha-tailors/tailorshop-api/validation"
)

// errorBody builds the standard error envelope
func errorBody(code, message string) gin.H {
	return gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	}
}

// respondError writes the standard error envelope
func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, errorBody(code, message))
}

// respondValidationError writes a 400 carrying every field violation
func respondValidationError(c *gin.Context, verr *validation.ValidationError) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "VALIDATION_ERROR",
			"message": "Validation failed",
			"details": verr.Fields,
		},
	})
}

// respondServiceError translates a service-layer error into the right HTTP
// status. Unexpected store failures are logged server-side and reported as a
// generic database error with no internal detail.
func respondServiceError(c *gin.Context, err error) {
	var notFound *services.NotFoundError
	if errors.As(err, &notFound) {
		respondError(c, http.StatusNotFound, "NOT_FOUND", notFound.Error())
		return
	}

	var conflict *services.ConflictError
	if errors.As(err, &conflict) {
		respondError(c, http.StatusConflict, "CONFLICT", conflict.Error())
		return
	}

	var limit *services.LimitExceededError
	if errors.As(err, &limit) {
		respondError(c, http.StatusBadRequest, "LIMIT_EXCEEDED", limit.Error())
		return
	}

	var invalidType *services.InvalidTypeError
	if errors.As(err, &invalidType) {
		respondError(c, http.StatusBadRequest, "INVALID_FILE_TYPE", invalidType.Error())
		return
	}

	var upload *utils.FileUploadError
	if errors.As(err, &upload) {
		respondError(c, http.StatusBadRequest, upload.Code, upload.Message)
		return
	}

	log.Printf("Unexpected database error: %v", err)
	respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "An internal server error occurred")
}

// parseIDParam parses a positive integer path parameter. On failure it writes
// a 400 response and returns false.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid ID format")
		return 0, false
	}
	return uint(id), true
}

// parseDueDate accepts RFC 3339 timestamps or plain dates ("2006-01-02").
// A nil or empty value means no due date.
func parseDueDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, *raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", *raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
