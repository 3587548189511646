package home

import (
	"github.com/go-logr/logr"
	"github.com/miruken-go/remote/setup"
)

// Installer registers a Light and a Stereo as devices.
type Installer struct {
	logger logr.Logger
	light  *Light
	stereo *Stereo
}

func (i *Installer) Light() *Light {
	return i.light
}

func (i *Installer) Stereo() *Stereo {
	return i.stereo
}

func (i *Installer) Install(setup *setup.Builder) error {
	if setup.Tag(&featureTag) {
		setup.Device("light", i.light).
			  Device("stereo", i.stereo)
	}
	return nil
}

// Feature creates the home devices reporting to logger.
func Feature(
	logger logr.Logger,
	config ...func(installer *Installer),
) *Installer {
	installer := &Installer{logger: logger}
	for _, configure := range config {
		if configure != nil {
			configure(installer)
		}
	}
	if installer.light == nil {
		installer.light = NewLight(installer.logger)
	}
	if installer.stereo == nil {
		installer.stereo = NewStereo(installer.logger)
	}
	return installer
}

// WithDevices replaces the devices installed.
func WithDevices(light *Light, stereo *Stereo) func(installer *Installer) {
	return func(installer *Installer) {
		installer.light  = light
		installer.stereo = stereo
	}
}

var featureTag byte
