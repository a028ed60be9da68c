package handlers

import (
	"fmt"
	"reflect"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/books_ledger/internal/core/domain"
)

// RegisterValidators teaches gin's validator about domain.Amount. Amounts are validated through
// their decimal string, and the "amount" tag rejects negative or malformed values.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	v.RegisterCustomTypeFunc(amountValue, domain.Amount{})
	return v.RegisterValidation("amount", validateAmount)
}

func amountValue(field reflect.Value) any {
	if a, ok := field.Interface().(domain.Amount); ok {
		return a.Decimal().String()
	}
	return nil
}

func validateAmount(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	return err == nil && !d.IsNegative()
}
