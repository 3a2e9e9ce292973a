package java

import (
	"jvmrules.build/pkg/label"
)

// JDKLauncherLabel refers to the launcher that is provided by the Java
// toolchain. Setting the "launcher" attribute or --java_launcher to
// this label is equivalent to not setting it at all.
var JDKLauncherLabel = label.MustNewCanonicalLabel("@@bazel_tools+//third_party/java/jdk:jdk_launcher")

// Semantics of Java rules that may differ between deployments.
type Semantics interface {
	// ForceUseJavaLauncherTarget returns true if the target
	// provided through the ":java_launcher" attribute should be used,
	// even if --java_launcher is not set.
	ForceUseJavaLauncherTarget(rc RuleContext) bool
}

type defaultSemantics struct{}

// DefaultSemantics only uses the target provided through the
// ":java_launcher" attribute if --java_launcher is set.
var DefaultSemantics Semantics = defaultSemantics{}

func (defaultSemantics) ForceUseJavaLauncherTarget(rc RuleContext) bool {
	return false
}

type ruleKindSemantics struct {
	ruleKinds map[string]struct{}
}

// NewRuleKindSemantics creates a Semantics that forces the use of the
// target provided through the ":java_launcher" attribute for targets
// of the provided rule kinds (e.g., "java_test").
func NewRuleKindSemantics(ruleKinds ...string) Semantics {
	s := &ruleKindSemantics{
		ruleKinds: make(map[string]struct{}, len(ruleKinds)),
	}
	for _, ruleKind := range ruleKinds {
		s.ruleKinds[ruleKind] = struct{}{}
	}
	return s
}

func (s *ruleKindSemantics) ForceUseJavaLauncherTarget(rc RuleContext) bool {
	_, ok := s.ruleKinds[rc.GetRuleKind()]
	return ok
}
