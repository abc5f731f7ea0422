package dto

import (
	"fmt"
	"reflect"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterValidators teaches v about decimal fields and the domain tags:
//
//	fraction  0 <= x <= 1 (vacancy, expense and tax rates)
//	growth    -1 < x <= 1 (rent and expense growth)
//
// A loan with a positive principal must also carry a term.
//
// Decimals are validated as float64, so the standard numeric tags (gte, gt, lte) apply too.
func RegisterValidators(v *validator.Validate) error {
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	if err := v.RegisterValidation("fraction", isFraction); err != nil {
		return fmt.Errorf("failed to register fraction validator: %w", err)
	}
	if err := v.RegisterValidation("growth", isGrowthRate); err != nil {
		return fmt.Errorf("failed to register growth validator: %w", err)
	}
	v.RegisterStructValidation(validateLoanTerm, LoanRequest{})
	return nil
}

// RegisterGinValidators installs the validators on gin's binding engine.
func RegisterGinValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding engine %T", binding.Validator.Engine())
	}
	return RegisterValidators(v)
}

// NewValidator returns a standalone validator reading the same binding tags as gin.
func NewValidator() (*validator.Validate, error) {
	v := validator.New()
	v.SetTagName("binding")
	if err := RegisterValidators(v); err != nil {
		return nil, err
	}
	return v, nil
}

func validateLoanTerm(sl validator.StructLevel) {
	loan, ok := sl.Current().Interface().(LoanRequest)
	if !ok {
		return
	}
	if loan.Principal.IsPositive() && loan.TermYears <= 0 {
		sl.ReportError(loan.TermYears, "TermYears", "termYears", "required_with_principal", "")
	}
}

func decimalValue(field reflect.Value) interface{} {
	d, ok := field.Interface().(decimal.Decimal)
	if !ok {
		return nil
	}
	return d.InexactFloat64()
}

func isFraction(fl validator.FieldLevel) bool {
	f, ok := floatField(fl)
	return ok && f >= 0 && f <= 1
}

func isGrowthRate(fl validator.FieldLevel) bool {
	f, ok := floatField(fl)
	return ok && f > -1 && f <= 1
}

func floatField(fl validator.FieldLevel) (float64, bool) {
	field := fl.Field()
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		return field.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(field.Int()), true
	}
	return 0, false
}
