package command

import (
	"errors"
	"fmt"

	"github.com/miruken-go/remote/internal"
)

// ErrNilReceiver is matched by every NilArgumentError.
var ErrNilReceiver = errors.New("receiver cannot be nil")

// NilArgumentError reports an Action created without its receiver.
type NilArgumentError struct {
	Action string
	Arg    string
}

func (e *NilArgumentError) Error() string {
	return fmt.Sprintf("[%s] %s is nil", e.Action, e.Arg)
}

func (e *NilArgumentError) Is(target error) bool {
	return target == ErrNilReceiver
}

func checkReceiver(action, arg string, receiver any) error {
	if internal.IsNil(receiver) {
		return &NilArgumentError{Action: action, Arg: arg}
	}
	return nil
}
