package label

import (
	"errors"
	"regexp"
	"strings"
)

// CanonicalLabel is a label that is prefixed with a canonical repo
// name (e.g., "@@bazel_tools+//third_party/java/jdk:jdk_launcher").
// Because labels are normalized upon construction, two instances
// referring to the same target are equal when compared using ==.
type CanonicalLabel struct {
	value string
}

const validCanonicalLabelPattern = validCanonicalPackagePattern + `(:` + validTargetNamePattern + `)?`

var validCanonicalLabelRegexp = regexp.MustCompile("^" + validCanonicalLabelPattern + "$")

var (
	errInvalidCanonicalLabel = errors.New("canonical label must match " + validCanonicalLabelPattern)
	errMissingTargetName     = errors.New("label refers to the top-level package of a repo, but has no target name")
)

// NewCanonicalLabel validates that the provided string is a canonical
// label. If so, an instance of CanonicalLabel is returned that wraps
// its normalized value.
func NewCanonicalLabel(value string) (CanonicalLabel, error) {
	if !validCanonicalLabelRegexp.MatchString(value) {
		return CanonicalLabel{}, errInvalidCanonicalLabel
	}
	if strings.HasSuffix(value, "//") {
		return CanonicalLabel{}, errMissingTargetName
	}
	return CanonicalLabel{value: removeLabelTargetNameIfRedundant(value)}, nil
}

// MustNewCanonicalLabel is identical to NewCanonicalLabel, except that
// it panics if the provided value is not a valid canonical label.
func MustNewCanonicalLabel(value string) CanonicalLabel {
	l, err := NewCanonicalLabel(value)
	if err != nil {
		panic(err)
	}
	return l
}

func (l CanonicalLabel) String() string {
	return l.value
}

// GetCanonicalPackage strips the target name from the label, thereby
// returning the package in which the target is declared.
func (l CanonicalLabel) GetCanonicalPackage() CanonicalPackage {
	if offset := strings.LastIndexByte(l.value, ':'); offset >= 0 {
		return CanonicalPackage{value: l.value[:offset]}
	}
	return CanonicalPackage{value: l.value}
}

// GetCanonicalRepo returns the canonical repo in which the target is
// declared.
func (l CanonicalLabel) GetCanonicalRepo() CanonicalRepo {
	return l.GetCanonicalPackage().GetCanonicalRepo()
}

// AsApparent converts a canonical label to an apparent label. This is
// always valid, as canonical labels are a subset of apparent labels.
func (l CanonicalLabel) AsApparent() ApparentLabel {
	return ApparentLabel{value: l.value}
}
