package control

import (
	"fmt"
	"strings"

	"github.com/go-logr/logr"
	"github.com/miruken-go/remote/command"
	"github.com/miruken-go/remote/internal/slices"
)

// Named slots of the default remote.
const (
	Slot1 = iota
	Slot2

	DefaultSlots
)

type (
	// Remote routes button pushes to the Actions bound in
	// a fixed number of slots.  Each slot pairs an on Action
	// with an off Action and unbound sides hold command.Empty.
	Remote struct {
		slots  []slot
		logger logr.Logger
	}

	// SlotDescription reports the identities bound to a slot.
	SlotDescription struct {
		Slot int
		On   string
		Off  string
	}

	slot struct {
		on  command.Action
		off command.Action
	}
)


// Remote

func (r *Remote) Slots() int {
	return len(r.slots)
}

// Bind replaces both Actions of the slot.
// The Actions are expected to be valid.
func (r *Remote) Bind(
	slot int,
	on   command.Action,
	off  command.Action,
) error {
	if err := r.check(slot); err != nil {
		return err
	}
	r.slots[slot].on  = on
	r.slots[slot].off = off
	return nil
}

// Activate performs the on Action of the slot.
func (r *Remote) Activate(slot int) error {
	if err := r.check(slot); err != nil {
		return err
	}
	action := r.slots[slot].on
	r.logger.V(1).Info("on button was pushed",
		"slot", slot, "action", action.Identity())
	action.Perform()
	return nil
}

// Deactivate performs the off Action of the slot.
func (r *Remote) Deactivate(slot int) error {
	if err := r.check(slot); err != nil {
		return err
	}
	action := r.slots[slot].off
	r.logger.V(1).Info("off button was pushed",
		"slot", slot, "action", action.Identity())
	action.Perform()
	return nil
}

// Describe returns the bound identities in slot order.
func (r *Remote) Describe() []SlotDescription {
	return slices.Map[slot, SlotDescription](r.slots,
		func(i int, s slot) SlotDescription {
			return SlotDescription{i, s.on.Identity(), s.off.Identity()}
		})
}

func (r *Remote) String() string {
	var s strings.Builder
	s.WriteString("-------------- Remote Control --------------\n")
	for _, desc := range r.Describe() {
		_, _ = fmt.Fprintf(&s, "[slot %d]\t%s\t%s\n", desc.Slot, desc.On, desc.Off)
	}
	return s.String()
}

func (r *Remote) check(slot int) error {
	if slot < 0 || slot >= len(r.slots) {
		return &SlotRangeError{Slot: slot, Count: len(r.slots)}
	}
	return nil
}


// WithLogger assigns the logger receiving button pushes.
func WithLogger(logger logr.Logger) func(*Remote) {
	return func(r *Remote) {
		r.logger = logger
	}
}

// New creates a Remote with the given number of slots.
// Every slot starts with command.Empty on both sides.
func New(
	slots  int,
	config ...func(*Remote),
) *Remote {
	if slots < 0 {
		slots = 0
	}
	remote := &Remote{
		slots:  make([]slot, slots),
		logger: logr.Discard(),
	}
	for i := range remote.slots {
		remote.slots[i] = slot{command.Empty, command.Empty}
	}
	for _, configure := range config {
		if configure != nil {
			configure(remote)
		}
	}
	return remote
}
