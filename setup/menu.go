package setup

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/miruken-go/remote/beverage"
	"github.com/shopspring/decimal"
)

type (
	// MenuConfig describes custom beverages and the orders to prepare.
	MenuConfig struct {
		Leaves []LeafConfig  `path:"leaves" validate:"dive"`
		Orders []OrderConfig `path:"orders" validate:"dive"`
	}

	// LeafConfig describes a custom beverage.
	LeafConfig struct {
		Name        string  `path:"name"        validate:"required"`
		Description string  `path:"description" validate:"required"`
		Cost        float64 `path:"cost"        validate:"gte=0"`
	}

	// OrderConfig names a base beverage and the condiments
	// wrapped around it, innermost first.
	OrderConfig struct {
		Name       string   `path:"name"       validate:"required"`
		Base       string   `path:"base"       validate:"required"`
		Condiments []string `path:"condiments"`
	}

	// Order is a prepared beverage.
	Order struct {
		Name     string
		Beverage beverage.Beverage
	}
)

var (
	bases = map[string]func() *beverage.Leaf{
		"espresso":    beverage.Espresso,
		"house-blend": beverage.HouseBlend,
		"dark-roast":  beverage.DarkRoast,
	}

	condiments = map[string]beverage.Wrap{
		"mocha": beverage.Mocha,
		"whip":  beverage.Whip,
		"soy":   beverage.Soy,
	}
)


// MenuConfig

func (c *MenuConfig) ConfigurationReady() {
	for i := range c.Leaves {
		c.Leaves[i].Name = normalize(c.Leaves[i].Name)
	}
	for i := range c.Orders {
		order := &c.Orders[i]
		order.Base = normalize(order.Base)
		for j := range order.Condiments {
			order.Condiments[j] = normalize(order.Condiments[j])
		}
	}
}


// Orders prepares every order in the menu.  Each order gets
// its own base beverage so no two chains share an instance.
// All failures are reported and no orders are returned.
func (s *Builder) Orders(
	cfg MenuConfig,
) ([]Order, error) {
	orderErrors := s.Install()
	custom := make(map[string]LeafConfig, len(cfg.Leaves))
	for _, leaf := range cfg.Leaves {
		if _, ok := bases[leaf.Name]; ok {
			orderErrors = multierror.Append(orderErrors,
				fmt.Errorf("setup: beverage %q is already on the menu", leaf.Name))
			continue
		}
		custom[leaf.Name] = leaf
	}

	orders := make([]Order, 0, len(cfg.Orders))
	for _, oc := range cfg.Orders {
		b, err := prepare(oc, custom)
		if err != nil {
			orderErrors = multierror.Append(orderErrors,
				fmt.Errorf("setup: order %q: %w", oc.Name, err))
			continue
		}
		orders = append(orders, Order{oc.Name, b})
		s.logger.V(1).Info("prepared order",
			"order", oc.Name, "receipt", beverage.Receipt(b))
	}
	if orderErrors != nil {
		return nil, orderErrors
	}
	return orders, nil
}

func prepare(
	oc     OrderConfig,
	custom map[string]LeafConfig,
) (beverage.Beverage, error) {
	var base beverage.Beverage
	if create, ok := bases[oc.Base]; ok {
		base = create()
	} else if leaf, ok := custom[oc.Base]; ok {
		l, err := beverage.NewLeaf(leaf.Description, decimal.NewFromFloat(leaf.Cost))
		if err != nil {
			return nil, err
		}
		base = l
	} else {
		return nil, &UnknownError{"beverage", oc.Base}
	}

	var wrapErrors error
	wraps := make([]beverage.Wrap, 0, len(oc.Condiments))
	for _, name := range oc.Condiments {
		if wrap, ok := condiments[name]; ok {
			wraps = append(wraps, wrap)
		} else {
			wrapErrors = multierror.Append(wrapErrors, &UnknownError{"condiment", name})
		}
	}
	if wrapErrors != nil {
		return nil, wrapErrors
	}
	return beverage.Compose(base, wraps...)
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
