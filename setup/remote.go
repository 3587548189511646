package setup

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/miruken-go/remote/command"
	"github.com/miruken-go/remote/control"
	"github.com/miruken-go/remote/internal"
)

type (
	// RemoteConfig describes a Remote and the devices bound to its slots.
	RemoteConfig struct {
		Slots    int             `path:"slots"    validate:"min=1"`
		Bindings []DeviceBinding `path:"bindings" validate:"dive"`
	}

	// DeviceBinding binds the named device to a slot.
	DeviceBinding struct {
		Slot   int    `path:"slot"   validate:"gte=0"`
		Device string `path:"device" validate:"required"`
	}
)


// RemoteConfig

func (c *RemoteConfig) Validate() (err error) {
	seen := make(map[int]string, len(c.Bindings))
	for _, b := range c.Bindings {
		if b.Slot >= c.Slots {
			err = multierror.Append(err, fmt.Errorf(
				"device %q bound to slot %d but remote has %d slots",
				b.Device, b.Slot, c.Slots))
		}
		if prev, ok := seen[b.Slot]; ok {
			err = multierror.Append(err, fmt.Errorf(
				"slot %d bound to both %q and %q", b.Slot, prev, b.Device))
		}
		seen[b.Slot] = b.Device
	}
	return err
}


// Remote creates a Remote from the configuration binding
// the on/off actions suited to each registered device.
// All failures are reported and no Remote is returned.
func (s *Builder) Remote(
	cfg RemoteConfig,
) (*control.Remote, error) {
	installErrors := s.Install()
	if installErrors != nil {
		return nil, installErrors
	}
	remote := control.New(cfg.Slots, control.WithLogger(s.logger.WithName("remote")))
	var bindErrors error
	for _, binding := range cfg.Bindings {
		on, off, err := s.actions(binding.Device)
		if err == nil {
			err = remote.Bind(binding.Slot, on, off)
		}
		if err != nil {
			bindErrors = multierror.Append(bindErrors,
				fmt.Errorf("setup: slot %d: %w", binding.Slot, err))
		}
	}
	if bindErrors != nil {
		return nil, bindErrors
	}
	return remote, nil
}

func (s *Builder) actions(
	device string,
) (on command.Action, off command.Action, err error) {
	receiver, ok := s.devices[device]
	if !ok || internal.IsNil(receiver) {
		return nil, nil, &UnknownError{"device", device}
	}
	switch r := receiver.(type) {
	case command.Stereo:
		if on, err = command.NewStereoOnWithCD(r); err == nil {
			off, err = command.NewStereoOff(r)
		}
	case command.Switch:
		if on, err = command.NewLightOn(r); err == nil {
			off, err = command.NewLightOff(r)
		}
	default:
		err = fmt.Errorf("device %q of type %T has no actions", device, receiver)
	}
	return
}
