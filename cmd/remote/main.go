package main

import (
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/miruken-go/remote/beverage"
	"github.com/miruken-go/remote/config"
	koanfp "github.com/miruken-go/remote/config/koanf"
	"github.com/miruken-go/remote/control"
	"github.com/miruken-go/remote/home"
	"github.com/miruken-go/remote/setup"
)

// defaults reproduce the two classic scenarios.
var defaults = map[string]any{
	"remote.slots": control.DefaultSlots,
	"remote.bindings": []any{
		map[string]any{"slot": control.Slot1, "device": "light"},
		map[string]any{"slot": control.Slot2, "device": "stereo"},
	},
	"menu.orders": []any{
		map[string]any{"name": "b1", "base": "dark-roast",
			"condiments": []any{"mocha", "mocha", "whip"}},
		map[string]any{"name": "b2", "base": "house-blend",
			"condiments": []any{"soy", "mocha", "whip"}},
	},
}

func main() {
	logger := funcr.New(func(prefix, args string) {
		fmt.Println(prefix, args)
	}, funcr.Options{Verbosity: 1})

	if err := run(logger, os.Args[1:]); err != nil {
		logger.Error(err, "remote demo failed")
		os.Exit(1)
	}
}

func run(logger logr.Logger, args []string) error {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return err
	}
	for _, path := range args {
		if err := k.Load(file.Provider(path), json.Parser()); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider("REMOTE__", "__", func(key string) string {
		return key[len("REMOTE__"):]
	}), nil, koanf.WithMergeFunc(koanfp.Merge)); err != nil {
		return err
	}
	provider := koanfp.P(k)

	remoteCfg, err := config.New[setup.RemoteConfig](provider, config.Load{Path: "remote"})
	if err != nil {
		return err
	}
	menuCfg, err := config.New[setup.MenuConfig](provider, config.Load{Path: "menu"})
	if err != nil {
		return err
	}

	builder := setup.New(home.Feature(logger)).Logger(logger)
	remote, err := builder.Remote(remoteCfg)
	if err != nil {
		return err
	}
	fmt.Print(remote)
	for slot := 0; slot < remote.Slots(); slot++ {
		if err := remote.Activate(slot); err != nil {
			return err
		}
		if err := remote.Deactivate(slot); err != nil {
			return err
		}
	}

	orders, err := builder.Orders(menuCfg)
	if err != nil {
		return err
	}
	for _, order := range orders {
		fmt.Println(beverage.Receipt(order.Beverage))
	}
	return nil
}
