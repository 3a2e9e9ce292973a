package unpack

import (
	"fmt"

	"go.starlark.net/starlark"
)

type stringUnpackerInto struct{}

// String unpacks a Starlark string into a Go string.
var String UnpackerInto[string] = stringUnpackerInto{}

func (stringUnpackerInto) UnpackInto(thread *starlark.Thread, v starlark.Value, dst *string) error {
	s, ok := starlark.AsString(v)
	if !ok {
		return fmt.Errorf("got %s, want string", v.Type())
	}
	*dst = s
	return nil
}
