package unpack

import (
	"go.starlark.net/starlark"
)

type singletonUnpackerInto[T any] struct {
	base UnpackerInto[T]
}

// Singleton is capable of unpacking a scalar value and placing it in a
// slice containing a single element. This unpacker is typically used
// in combination with Or() for arguments that can either be a scalar
// or a list (e.g., javacopts provided as a single string).
func Singleton[T any](base UnpackerInto[T]) UnpackerInto[[]T] {
	return &singletonUnpackerInto[T]{
		base: base,
	}
}

func (ui *singletonUnpackerInto[T]) UnpackInto(thread *starlark.Thread, v starlark.Value, dst *[]T) error {
	var instance [1]T
	if err := ui.base.UnpackInto(thread, v, &instance[0]); err != nil {
		return err
	}
	*dst = instance[:]
	return nil
}
