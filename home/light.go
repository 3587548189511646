package home

import "github.com/go-logr/logr"

// Light is a lamp that can be switched on and off.
type Light struct {
	on     bool
	logger logr.Logger
}

func (l *Light) IsOn() bool {
	return l.on
}

func (l *Light) On() {
	l.on = true
	l.logger.Info("light is on")
}

func (l *Light) Off() {
	l.on = false
	l.logger.Info("light is off")
}

// NewLight creates a Light reporting to logger.
func NewLight(logger logr.Logger) *Light {
	return &Light{logger: logger.WithName("light")}
}
