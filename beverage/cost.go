package beverage

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Condiment increments.
var (
	MochaCost = decimal.RequireFromString("0.20")
	WhipCost  = decimal.RequireFromString("0.10")
	SoyCost   = decimal.RequireFromString("0.15")
)

// FormatCost renders cost with at least two decimal places.
// Sub-cent digits are kept rather than rounded away.
func FormatCost(cost decimal.Decimal) string {
	if cost.Exponent() < -2 {
		return cost.String()
	}
	return cost.StringFixed(2)
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	return v
}
