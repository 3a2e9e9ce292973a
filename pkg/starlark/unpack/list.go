package unpack

import (
	"fmt"

	"go.starlark.net/starlark"
)

type listUnpackerInto[T any] struct {
	base UnpackerInto[T]
}

// List unpacks a Starlark list into a Go slice, using the provided
// unpacker to unpack each of its elements.
func List[T any](base UnpackerInto[T]) UnpackerInto[[]T] {
	return &listUnpackerInto[T]{
		base: base,
	}
}

func (ui *listUnpackerInto[T]) UnpackInto(thread *starlark.Thread, v starlark.Value, dst *[]T) error {
	list, ok := v.(*starlark.List)
	if !ok {
		return fmt.Errorf("got %s, want list", v.Type())
	}
	l := make([]T, list.Len())
	for i := range l {
		if err := ui.base.UnpackInto(thread, list.Index(i), &l[i]); err != nil {
			return fmt.Errorf("at index %d: %w", i, err)
		}
	}
	*dst = l
	return nil
}
