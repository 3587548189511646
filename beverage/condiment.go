package beverage

import (
	"errors"

	"github.com/miruken-go/remote/internal"
	"github.com/shopspring/decimal"
)

var (
	// ErrNilBeverage reports a Condiment created without a Beverage.
	ErrNilBeverage = errors.New("beverage: condiment requires a beverage")

	// ErrNilWrap reports a nil Wrap passed to Compose.
	ErrNilWrap = errors.New("beverage: wrap cannot be nil")
)

type (
	// Condiment decorates exactly one inner Beverage by appending
	// its label to the description and adding its increment to the cost.
	Condiment struct {
		inner     Beverage
		label     string
		increment decimal.Decimal
	}

	// Wrap decorates a Beverage.
	Wrap func(Beverage) (Beverage, error)
)


// Condiment

func (c *Condiment) Inner() Beverage {
	return c.inner
}

func (c *Condiment) Label() string {
	return c.label
}

func (c *Condiment) Description() string {
	return c.inner.Description() + ", " + c.label
}

func (c *Condiment) Cost() decimal.Decimal {
	return c.inner.Cost().Add(c.increment)
}

func newCondiment(
	inner     Beverage,
	label     string,
	increment decimal.Decimal,
) (*Condiment, error) {
	if internal.IsNil(inner) {
		return nil, ErrNilBeverage
	}
	return &Condiment{inner, label, increment}, nil
}

// NewMocha wraps inner with Mocha.
func NewMocha(inner Beverage) (*Condiment, error) {
	return newCondiment(inner, "Mocha", MochaCost)
}

// NewWhip wraps inner with Whip.
func NewWhip(inner Beverage) (*Condiment, error) {
	return newCondiment(inner, "Whip", WhipCost)
}

// NewSoy wraps inner with Soy.
func NewSoy(inner Beverage) (*Condiment, error) {
	return newCondiment(inner, "Soy", SoyCost)
}

// Wraps for use with Compose.
var (
	Mocha Wrap = adapt(NewMocha)
	Whip  Wrap = adapt(NewWhip)
	Soy   Wrap = adapt(NewSoy)
)

// Compose applies wraps to base in order so the
// last wrap becomes the outermost Condiment.
func Compose(base Beverage, wraps ...Wrap) (Beverage, error) {
	if internal.IsNil(base) {
		return nil, ErrNilBeverage
	}
	b := base
	for _, wrap := range wraps {
		if wrap == nil {
			return nil, ErrNilWrap
		}
		var err error
		if b, err = wrap(b); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func adapt(create func(Beverage) (*Condiment, error)) Wrap {
	return func(inner Beverage) (Beverage, error) {
		if c, err := create(inner); err != nil {
			return nil, err
		} else {
			return c, nil
		}
	}
}
