package label

import (
	"errors"
	"regexp"
)

// Module is the name of a Bazel module, as declared by calling module()
// in MODULE.bazel. The root module of a workspace is identified by its
// module name when resolving labels of the form "@@//pkg:target".
type Module struct {
	value string
}

const (
	validModulePattern        = "[a-z]([a-z0-9._-]*[a-z0-9])?"
	validModuleVersionPattern = `[0-9a-zA-Z][-.0-9a-zA-Z]*`
)

var validModuleRegexp = regexp.MustCompile("^" + validModulePattern + "$")

var errInvalidModule = errors.New("module name must match " + validModulePattern)

// NewModule validates that the provided string is a valid Bazel module
// name. If so, an instance of Module is returned that wraps the
// provided value.
func NewModule(value string) (Module, error) {
	if !validModuleRegexp.MatchString(value) {
		return Module{}, errInvalidModule
	}
	return Module{value: value}, nil
}

func (m Module) String() string {
	return m.value
}

// ToApparentRepo returns the apparent repo name that is used if the
// bazel_dep() for this module does not have an explicit repo name set.
func (m Module) ToApparentRepo() ApparentRepo {
	return ApparentRepo{value: m.value}
}

// GetBareCanonicalRepo returns the canonical name of the repo that
// contains the sources of the module itself (e.g., "rules_java+").
func (m Module) GetBareCanonicalRepo() CanonicalRepo {
	return CanonicalRepo{value: m.value + "+"}
}
