package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// NotFoundError indicates that a referenced entity (or an owner+attachment
// pair) does not exist.
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// ConflictError indicates a unique-constraint violation or a business-rule
// block such as deleting a customer who still has orders.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// LimitExceededError indicates an attachment collection is already at its cap.
type LimitExceededError struct {
	Cap int
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("maximum limit of %d images reached", e.Cap)
}

// InvalidTypeError indicates an upload with a content type outside the
// accepted set.
type InvalidTypeError struct {
	MimeType string
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("invalid file type %q", e.MimeType)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsUniqueViolation reports whether a store error is a unique-constraint
// violation. String sniffing works with both PostgreSQL and SQLite.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
