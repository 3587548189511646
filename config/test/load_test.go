package test

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/miruken-go/remote/config"
	"github.com/stretchr/testify/suite"
)

type (
	AppConfig struct {
		Env   string `validate:"required"`
		Ready bool
	}

	Checked struct {
		Level int
	}

	// StubProvider assigns a fixed value or fails.
	StubProvider struct {
		assign func(path string, output any)
		err    error
		path   string
		flat   bool
	}
)

func (a *AppConfig) ConfigurationReady() {
	a.Ready = true
}

func (c Checked) Validate() error {
	if c.Level > 3 {
		return errors.New("level too high")
	}
	return nil
}

func (p *StubProvider) Unmarshal(path string, flat bool, output any) error {
	p.path, p.flat = path, flat
	if p.err != nil {
		return p.err
	}
	if p.assign != nil {
		p.assign(path, output)
	}
	return nil
}

type LoadTestSuite struct {
	suite.Suite
}

func (suite *LoadTestSuite) TestNew() {
	suite.Run("Populate", func() {
		p := &StubProvider{assign: func(_ string, out any) {
			out.(*AppConfig).Env = "develop"
		}}
		cfg, err := config.New[AppConfig](p, config.Load{Path: "app", Flat: true})
		suite.Nil(err)
		suite.Equal("develop", cfg.Env)
		suite.True(cfg.Ready)
		suite.Equal("app", p.path)
		suite.True(p.flat)
	})

	suite.Run("Tags", func() {
		cfg, err := config.New[AppConfig](&StubProvider{}, config.Load{})
		var errs validator.ValidationErrors
		suite.Require().ErrorAs(err, &errs)
		suite.Equal("Env", errs[0].Field())
		suite.False(cfg.Ready)
	})

	suite.Run("Validate", func() {
		p := &StubProvider{assign: func(_ string, out any) {
			out.(*Checked).Level = 4
		}}
		_, err := config.New[Checked](p, config.Load{})
		suite.EqualError(err, "config: level too high")
	})

	suite.Run("Provider", func() {
		p := &StubProvider{err: errors.New("unreachable")}
		_, err := config.New[AppConfig](p, config.Load{})
		suite.EqualError(err, "config: unreachable")
	})

	suite.Run("NilProvider", func() {
		_, err := config.New[AppConfig](nil, config.Load{})
		suite.Error(err)
	})

	suite.Run("Map", func() {
		p := &StubProvider{assign: func(_ string, out any) {
			*out.(*map[string]any) = map[string]any{"env": "test"}
		}}
		cfg, err := config.New[map[string]any](p, config.Load{})
		suite.Nil(err)
		suite.Equal("test", cfg["env"])
	})
}

func TestLoadTestSuite(t *testing.T) {
	suite.Run(t, new(LoadTestSuite))
}
