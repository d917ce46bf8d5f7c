package validator

import (
	"errors"
	"net/url"
	"strings"

	"app/internal/usecase"
)

var (
	ErrItemNameRequired  = errors.New("Item name is required")
	ErrDescriptionNeeded = errors.New("Description is required")
	ErrInvalidPrice      = errors.New("Price must be at least 1")
	ErrInvalidImageURL   = errors.New("Image must be a valid URL")
	ErrCategoryRequired  = errors.New("Category is required")
)

type itemValidator struct{}

// DI
func NewItemValidator() usecase.ItemValidator {
	return &itemValidator{}
}

// item作成の入力を検証
func (v *itemValidator) ValidateCreateItem(name string, description string, price int64, image string, categoryID int64) error {
	if strings.TrimSpace(name) == "" {
		return ErrItemNameRequired
	}
	if strings.TrimSpace(description) == "" {
		return ErrDescriptionNeeded
	}
	if price < 1 {
		return ErrInvalidPrice
	}

	u, err := url.ParseRequestURI(image)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ErrInvalidImageURL
	}

	if categoryID <= 0 {
		return ErrCategoryRequired
	}

	return nil
}
