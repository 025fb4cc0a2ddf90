package gin

import (
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/alurafood/payments/internal/model"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"
)

// Validation tags registered on gin's validator.
const (
	tagNotBlank     = "notblank"
	tagAmountScale  = "amount_scale"
	tagAmountDigits = "amount_digits"
)

var registerValidationOnce sync.Once

// RegisterValidation configures gin's validator so that violations are
// reported under their JSON names, decimal amounts support numeric tags and
// the payment requests get their blank-text and amount precision rules.
func RegisterValidation() {
	registerValidationOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		v.RegisterTagNameFunc(jsonFieldName)
		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				return d.InexactFloat64()
			}
			return nil
		}, decimal.Decimal{})

		_ = v.RegisterValidation(tagNotBlank, validators.NotBlank)
		v.RegisterStructValidation(validateAmount, model.CreatePaymentRequest{}, model.UpdatePaymentRequest{})
	})
}

// validateAmount checks the amount against the stored column. The numeric
// tags only see the float form of the decimal, so the scale is checked here.
func validateAmount(sl validator.StructLevel) {
	var amount *decimal.Decimal
	switch req := sl.Current().Interface().(type) {
	case model.CreatePaymentRequest:
		amount = req.Amount
	case model.UpdatePaymentRequest:
		amount = req.Amount
	}
	if amount == nil {
		return
	}

	if !model.AmountFitsPrecision(*amount) {
		sl.ReportError(*amount, "amount", "Amount", tagAmountDigits, strconv.Itoa(model.AmountIntegerDigits))
	}
	if !model.AmountFitsScale(*amount) {
		sl.ReportError(*amount, "amount", "Amount", tagAmountScale, strconv.Itoa(model.AmountScale))
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}
