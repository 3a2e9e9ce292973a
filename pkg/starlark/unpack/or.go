package unpack

import (
	"go.starlark.net/starlark"
)

type orUnpackerInto[T any] struct {
	unpackers []UnpackerInto[T]
}

// Or attempts to unpack a value using a list of unpackers, returning
// the result of the first one that succeeds. If all of them fail, the
// error of the first unpacker is returned.
func Or[T any](unpackers []UnpackerInto[T]) UnpackerInto[T] {
	return &orUnpackerInto[T]{
		unpackers: unpackers,
	}
}

func (ui *orUnpackerInto[T]) UnpackInto(thread *starlark.Thread, v starlark.Value, dst *T) error {
	var firstErr error
	for _, unpacker := range ui.unpackers {
		err := unpacker.UnpackInto(thread, v, dst)
		if err == nil {
			return nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
