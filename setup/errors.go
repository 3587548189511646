package setup

import "fmt"

// UnknownError reports a name missing from the setup.
type UnknownError struct {
	Kind string
	Name string
}

func (e *UnknownError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Name)
}
