package label

import (
	"errors"
	"regexp"
	"strings"
)

// ApparentLabel is a label that may still be prefixed with an apparent
// repo name (e.g., "@rules_java//toolchains:launcher") or with "@@",
// which refers to the root module. Apparent labels need to be
// canonicalized before they can be compared.
type ApparentLabel struct {
	value string
}

const validApparentLabelPattern = `(@@(` + validCanonicalRepoPattern + `)?|@` + validApparentRepoPattern + `)//` +
	validPackagePathPattern + `(:` + validTargetNamePattern + `)?`

var (
	validApparentLabelRegexp         = regexp.MustCompile("^" + validApparentLabelPattern + "$")
	validApparentRepoShorthandRegexp = regexp.MustCompile("^@" + validApparentRepoPattern + "$")
	errInvalidApparentLabel          = errors.New("apparent label must match " + validApparentLabelPattern)
)

// NewApparentLabel validates that the provided string is an apparent
// label. The shorthand notation "@repo" is expanded to "@repo//:repo".
func NewApparentLabel(value string) (ApparentLabel, error) {
	if validApparentRepoShorthandRegexp.MatchString(value) {
		value = value + "//:" + value[1:]
	}
	if !validApparentLabelRegexp.MatchString(value) {
		return ApparentLabel{}, errInvalidApparentLabel
	}
	if strings.HasSuffix(value, "//") {
		return ApparentLabel{}, errMissingTargetName
	}
	return ApparentLabel{value: removeLabelTargetNameIfRedundant(value)}, nil
}

// MustNewApparentLabel is identical to NewApparentLabel, except that it
// panics if the provided value is not a valid apparent label.
func MustNewApparentLabel(value string) ApparentLabel {
	l, err := NewApparentLabel(value)
	if err != nil {
		panic(err)
	}
	return l
}

func (l ApparentLabel) String() string {
	return l.value
}

// AsCanonical returns the label in canonical form if it is prefixed
// with a canonical repo name.
func (l ApparentLabel) AsCanonical() (CanonicalLabel, bool) {
	if !strings.HasPrefix(l.value, "@@") || strings.HasPrefix(l.value, "@@//") {
		return CanonicalLabel{}, false
	}
	return CanonicalLabel{value: l.value}, true
}

// GetApparentRepo returns the apparent repo name with which the label
// is prefixed, if any. Labels prefixed with "@@" do not have an
// apparent repo.
func (l ApparentLabel) GetApparentRepo() (ApparentRepo, bool) {
	if strings.HasPrefix(l.value, "@@") {
		return ApparentRepo{}, false
	}
	return ApparentRepo{value: l.value[1:strings.Index(l.value, "//")]}, true
}

// WithCanonicalRepo replaces the repo prefix of the label with the
// provided canonical repo.
func (l ApparentLabel) WithCanonicalRepo(canonicalRepo CanonicalRepo) CanonicalLabel {
	return CanonicalLabel{value: canonicalRepo.applyToLabel(l.value)}
}
