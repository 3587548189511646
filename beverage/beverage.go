package beverage

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type (
	// Beverage reports a description and a cost.
	Beverage interface {
		Description() string
		Cost() decimal.Decimal
	}

	// Leaf is a Beverage with fixed values.
	Leaf struct {
		description string
		cost        decimal.Decimal
	}

	leafSpec struct {
		Description string          `validate:"required"`
		Cost        decimal.Decimal `validate:"gte=0"`
	}
)

// Espresso returns a new Espresso.
func Espresso() *Leaf {
	return &Leaf{"Espresso", decimal.RequireFromString("1.99")}
}

// HouseBlend returns a new House Blend Coffee.
func HouseBlend() *Leaf {
	return &Leaf{"House Blend Coffee", decimal.RequireFromString("0.89")}
}

// DarkRoast returns a new Dark Roast Coffee.
func DarkRoast() *Leaf {
	return &Leaf{"Dark Roast Coffee", decimal.RequireFromString("0.99")}
}


// Leaf

func (l *Leaf) Description() string {
	return l.description
}

func (l *Leaf) Cost() decimal.Decimal {
	return l.cost
}

// NewLeaf creates a Leaf after validating its values.
// The cost is kept exactly as given.
func NewLeaf(description string, cost decimal.Decimal) (*Leaf, error) {
	if err := validate.Struct(leafSpec{description, cost}); err != nil {
		return nil, fmt.Errorf("beverage: invalid leaf: %w", err)
	}
	return &Leaf{description, cost}, nil
}

// Receipt formats the description and cost of a Beverage.
func Receipt(b Beverage) string {
	return fmt.Sprintf("%s $ %s", b.Description(), FormatCost(b.Cost()))
}

var validate = newValidator()
