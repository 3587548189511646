package control

import (
	"errors"
	"fmt"
)

// ErrSlotRange is matched by every SlotRangeError.
var ErrSlotRange = errors.New("slot out of range")

// SlotRangeError reports access to a slot that does not exist.
type SlotRangeError struct {
	Slot  int
	Count int
}

func (e *SlotRangeError) Error() string {
	return fmt.Sprintf("slot %d does not exist (remote has %d slots)", e.Slot, e.Count)
}

func (e *SlotRangeError) Is(target error) bool {
	return target == ErrSlotRange
}
