// Package java contains helpers that are used by the analysis phase of
// Java rules, such as selecting the launcher with which java_binary()
// targets are wrapped and tokenizing user provided compiler options.
package java

import (
	"jvmrules.build/pkg/label"
)

//go:generate mockgen -destination mocks_test.go -package java_test . Artifact,ConfiguredTarget,JavaConfiguration,RuleContext,Semantics

// AttributeView provides read-only access to the label attributes of
// the target that is being analyzed.
type AttributeView interface {
	// IsLabelAttributeDefined returns true if the rule kind of the
	// target declares an attribute of type label with the provided
	// name. Attribute names starting with ":" denote private
	// attributes whose values are computed from configuration.
	IsLabelAttributeDefined(name string) bool
	// GetLabelAttribute returns the value of a label attribute. The
	// boolean result is false if the attribute is not set.
	GetLabelAttribute(name string) (label.CanonicalLabel, bool)
}

// ConfiguredTarget is a target that has been analyzed in the
// configuration of the target depending on it.
type ConfiguredTarget interface {
	GetLabel() label.CanonicalLabel
}

// Artifact is a file that is either a source file, or an output of an
// action.
type Artifact interface {
	GetPath() string
	GetOwner() label.CanonicalLabel
}

// PrerequisiteProvider can be used to obtain the targets and files
// referenced by label attributes.
type PrerequisiteProvider interface {
	GetPrerequisite(attributeName string) (ConfiguredTarget, bool)
	GetPrerequisiteArtifact(attributeName string) (Artifact, bool)
}

// JavaConfiguration is the configuration fragment holding the Java
// related command line flags of the build.
type JavaConfiguration interface {
	// GetJavaLauncherLabel returns the value of --java_launcher, if
	// set.
	GetJavaLauncherLabel() (label.CanonicalLabel, bool)
}

// RuleContext is the subset of the context of a rule implementation
// that is needed by the helpers in this package.
type RuleContext interface {
	AttributeView
	PrerequisiteProvider

	GetLabel() label.CanonicalLabel
	GetRuleKind() string
	GetJavaConfiguration() JavaConfiguration
}
