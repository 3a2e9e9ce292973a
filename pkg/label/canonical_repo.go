package label

import (
	"errors"
	"regexp"
	"strings"
)

// CanonicalRepo corresponds to the canonical name of a repo, without
// the leading "@@". Canonical repo names can refer to a module (e.g.,
// "rules_java+") or a repo declared by a module extension or repo rule
// (e.g., "rules_java++toolchains+remotejdk21_linux").
type CanonicalRepo struct {
	value string
}

const validCanonicalRepoPattern = validModulePattern + `\+(` + validModuleVersionPattern + `)?` +
	`(\+[a-zA-Z_]\w*\+` + validApparentRepoPattern + `)?`

var validCanonicalRepoRegexp = regexp.MustCompile("^" + validCanonicalRepoPattern + "$")

var errInvalidCanonicalRepo = errors.New("canonical repo must match " + validCanonicalRepoPattern)

// NewCanonicalRepo validates that the provided string is a canonical
// repo name. If so, an instance of CanonicalRepo is returned that wraps
// its value.
func NewCanonicalRepo(value string) (CanonicalRepo, error) {
	if !validCanonicalRepoRegexp.MatchString(value) {
		return CanonicalRepo{}, errInvalidCanonicalRepo
	}
	return CanonicalRepo{value: value}, nil
}

// MustNewCanonicalRepo is identical to NewCanonicalRepo, except that it
// panics if the provided value is not a valid canonical repo name.
func MustNewCanonicalRepo(value string) CanonicalRepo {
	r, err := NewCanonicalRepo(value)
	if err != nil {
		panic(err)
	}
	return r
}

func (r CanonicalRepo) String() string {
	return r.value
}

// GetRootPackage returns the canonical package corresponding to
// top-level package in this repo.
func (r CanonicalRepo) GetRootPackage() CanonicalPackage {
	return CanonicalPackage{value: "@@" + r.value + "//"}
}

func (r CanonicalRepo) applyToLabel(value string) string {
	if offset := strings.Index(value, "//"); offset >= 0 {
		// Translate "@from//x/y:z" to "@@to//x/y:z".
		return "@@" + r.value + value[offset:]
	}
	// Translate "@from" to "@@to//:from".
	return "@@" + r.value + "//:" + strings.TrimLeft(value, "@")
}
