package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ErrorResponse describe un campo que falló la validación.
type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

var validate = validator.New()

func init() {
	// decimal.Decimal no es comparable con las reglas numéricas nativas;
	// "dgte0" valida que el valor sea >= 0.
	_ = validate.RegisterValidation("dgte0", func(fl validator.FieldLevel) bool {
		if d, ok := fl.Field().Interface().(decimal.Decimal); ok {
			return d.GreaterThanOrEqual(decimal.Zero)
		}
		return false
	})
}

// ValidateStruct valida un struct contra sus tags `validate` y devuelve los campos fallidos.
func ValidateStruct(data interface{}) []*ErrorResponse {
	var errs []*ErrorResponse
	err := validate.Struct(data)
	if err != nil {
		for _, ve := range err.(validator.ValidationErrors) {
			errs = append(errs, &ErrorResponse{
				FailedField: ve.StructNamespace(),
				Tag:         ve.Tag(),
				Value:       ve.Param(),
			})
		}
	}
	return errs
}
