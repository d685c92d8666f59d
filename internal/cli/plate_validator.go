package cli

import (
	"github.com/go-playground/validator/v10"

	"github.com/citypark/parking-system/internal/core/ports"
)

// PlateValidator checks licence-plate syntax with go-playground/validator
// and a custom rule. A plate is three dash-separated pairs, each pair either
// two uppercase letters or two digits, with at least one pair of each kind.
type PlateValidator struct {
	validate *validator.Validate
}

var _ ports.PlateValidator = (*PlateValidator)(nil)

// NewPlateValidator builds the validator with the licenceplate rule
// registered.
func NewPlateValidator() *PlateValidator {
	v := validator.New()
	// RegisterValidation only fails for an empty tag name.
	_ = v.RegisterValidation("licenceplate", validLicencePlate)
	return &PlateValidator{validate: v}
}

// Valid satisfies ports.PlateValidator.
func (pv *PlateValidator) Valid(plate string) bool {
	return pv.validate.Var(plate, "required,licenceplate") == nil
}

func validLicencePlate(fl validator.FieldLevel) bool {
	plate := fl.Field().String()
	if len(plate) != 8 || plate[2] != '-' || plate[5] != '-' {
		return false
	}
	letterPairs, digitPairs := 0, 0
	for _, start := range [3]int{0, 3, 6} {
		a, b := plate[start], plate[start+1]
		switch {
		case isUpper(a) && isUpper(b):
			letterPairs++
		case isDigit(a) && isDigit(b):
			digitPairs++
		default:
			return false
		}
	}
	return letterPairs >= 1 && digitPairs >= 1
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
