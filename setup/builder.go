package setup

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/hashicorp/go-multierror"
	"github.com/miruken-go/remote/internal"
)

// Builder collects the devices and logger used to
// assemble remotes and beverage orders.
type Builder struct {
	features []Feature
	devices  map[string]any
	logger   logr.Logger
	tags     map[any]struct{}
}


func (s *Builder) Features(
	features ...Feature,
) *Builder {
	s.features = append(s.features, features...)
	return s
}

// Device registers a receiver under name.
// Later registrations replace earlier ones.
func (s *Builder) Device(
	name     string,
	receiver any,
) *Builder {
	if s.devices == nil {
		s.devices = map[string]any{}
	}
	s.devices[name] = receiver
	return s
}

func (s *Builder) Logger(
	logger logr.Logger,
) *Builder {
	s.logger = logger
	return s
}

// Tag reports true the first time tag is seen.
// Features use it to avoid installing twice.
func (s *Builder) Tag(tag any) bool {
	if tags := s.tags; tags == nil {
		s.tags = map[any]struct{}{tag: {}}
		return true
	} else if _, found := tags[tag]; !found {
		tags[tag] = struct{}{}
		return true
	}
	return false
}

// Install installs all features, reporting every failure.
func (s *Builder) Install() (installErrors error) {
	features := s.features
	s.features = nil
	for _, feature := range features {
		if internal.IsNil(feature) {
			continue
		}
		if err := feature.Install(s); err != nil {
			installErrors = multierror.Append(installErrors,
				fmt.Errorf("setup: %w", err))
		}
	}
	return installErrors
}

// New creates a Builder with the supplied features.
func New(features ...Feature) *Builder {
	return &Builder{
		features: features,
		logger:   logr.Discard(),
	}
}
