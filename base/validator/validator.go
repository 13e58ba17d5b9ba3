package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/gavelapp/goapi/domain/listing"
)

// NewCustomValidator builds the echo validator with the listing rules registered
func NewCustomValidator(v *validator.Validate) echo.Validator {
	v.RegisterValidation("listingCategory", isListingCategory)
	v.RegisterValidation("listingStatus", isListingStatus)
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

func isListingCategory(fl validator.FieldLevel) bool {
	return listing.Category(fl.Field().String()).IsValid()
}

func isListingStatus(fl validator.FieldLevel) bool {
	switch listing.Status(fl.Field().String()) {
	case listing.StatusSold, listing.StatusDisputed:
		return true
	}
	return false
}
