package label

import (
	"errors"
	"regexp"
	"strings"
)

// CanonicalPackage corresponds to a package within a canonical repo,
// having the form "@@repo//path/to/package". The top-level package of a
// repo has an empty package path (e.g., "@@rules_java+//").
type CanonicalPackage struct {
	value string
}

const (
	validPackagePathPattern      = `(` + validPathComponentPattern + `(/` + validPathComponentPattern + `)*)?`
	validCanonicalPackagePattern = `@@` + validCanonicalRepoPattern + `//` + validPackagePathPattern
)

var validCanonicalPackageRegexp = regexp.MustCompile("^" + validCanonicalPackagePattern + "$")

var errInvalidCanonicalPackage = errors.New("canonical package must match " + validCanonicalPackagePattern)

// NewCanonicalPackage validates that the provided string is a canonical
// package name. If so, an instance of CanonicalPackage is returned that
// wraps its value.
func NewCanonicalPackage(value string) (CanonicalPackage, error) {
	if !validCanonicalPackageRegexp.MatchString(value) {
		return CanonicalPackage{}, errInvalidCanonicalPackage
	}
	return CanonicalPackage{value: value}, nil
}

func (p CanonicalPackage) String() string {
	return p.value
}

// GetCanonicalRepo returns the canonical repo in which the package is
// located.
func (p CanonicalPackage) GetCanonicalRepo() CanonicalRepo {
	return CanonicalRepo{value: p.value[2:strings.Index(p.value, "//")]}
}

// AppendTargetName returns the label of a target within the current
// package.
func (p CanonicalPackage) AppendTargetName(targetName TargetName) CanonicalLabel {
	return CanonicalLabel{
		value: removeLabelTargetNameIfRedundant(p.value + ":" + targetName.value),
	}
}

// AppendLabel interprets a label string as it would appear in a BUILD
// file belonging to the current package. Labels that are relative to
// the current package (":name" or "name") or repo ("//pkg:name") are
// returned in canonical form. Labels that are prefixed with a repo are
// returned as is, and need to be canonicalized by the caller.
func (p CanonicalPackage) AppendLabel(value string) (ApparentLabel, error) {
	switch {
	case strings.HasPrefix(value, "@"):
		return NewApparentLabel(value)
	case strings.HasPrefix(value, "//"):
		return NewApparentLabel("@@" + p.GetCanonicalRepo().value + value)
	}
	targetName, err := NewTargetName(strings.TrimPrefix(value, ":"))
	if err != nil {
		return ApparentLabel{}, err
	}
	return p.AppendTargetName(targetName).AsApparent(), nil
}

// removeLabelTargetNameIfRedundant strips the target name from a label
// if it is identical to the last component of the package path. This
// ensures that "@@r+//a/b:b" and "@@r+//a/b" compare equal.
func removeLabelTargetNameIfRedundant(value string) string {
	targetNameOffset := strings.LastIndexByte(value, ':')
	if targetNameOffset < 0 {
		return value
	}
	packageName := value[:targetNameOffset]
	lastComponent := packageName[strings.LastIndexByte(packageName, '/')+1:]
	if lastComponent == "" || lastComponent != value[targetNameOffset+1:] {
		return value
	}
	return packageName
}
