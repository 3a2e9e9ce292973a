package java

import (
	"jvmrules.build/pkg/starlark/unpack"

	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
)

var javacoptsUnpackerInto = unpack.Or([]unpack.UnpackerInto[[]string]{
	unpack.List(unpack.String),
	unpack.Singleton(unpack.String),
})

// GetBuiltins returns the Starlark values that should be predeclared
// in files containing the implementations of Java rules.
func GetBuiltins() starlark.StringDict {
	return starlark.StringDict{
		"java_common": starlarkstruct.FromStringDict(
			starlark.String("java_common"),
			starlark.StringDict{
				"tokenize_javacopts": starlark.NewBuiltin(
					"java_common.tokenize_javacopts",
					func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
						var opts []string
						if err := starlark.UnpackArgs(
							b.Name(), args, kwargs,
							"opts", unpack.Bind(thread, &opts, javacoptsUnpackerInto),
						); err != nil {
							return nil, err
						}

						tokens := TokenizeJavacopts(opts)
						values := make([]starlark.Value, 0, len(tokens))
						for _, token := range tokens {
							values = append(values, starlark.String(token))
						}
						return starlark.NewList(values), nil
					},
				),
			},
		),
	}
}
