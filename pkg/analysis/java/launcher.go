package java

const (
	// LauncherAttributeName is the name of the attribute through
	// which a target may explicitly specify its launcher.
	LauncherAttributeName = "launcher"
	// JavaLauncherAttributeName is the name of the private attribute
	// whose value is derived from the --java_launcher flag.
	JavaLauncherAttributeName = ":java_launcher"
)

// LauncherAttributeForTarget returns the name of the label attribute
// that refers to the launcher with which the target should be wrapped.
// The "launcher" attribute takes precedence over --java_launcher. If
// false is returned, the launcher provided by the JDK should be used.
func LauncherAttributeForTarget(semantics Semantics, rc RuleContext) (string, bool) {
	// BUILD rule "launcher" attribute.
	if rc.IsLabelAttributeDefined(LauncherAttributeName) {
		if launcher, ok := rc.GetLabelAttribute(LauncherAttributeName); ok {
			if launcher == JDKLauncherLabel {
				return "", false
			}
			return LauncherAttributeName, true
		}
	}

	// Command line flag --java_launcher.
	if rc.IsLabelAttributeDefined(JavaLauncherAttributeName) {
		if javaLauncher, ok := rc.GetJavaConfiguration().GetJavaLauncherLabel(); (ok && javaLauncher != JDKLauncherLabel) ||
			semantics.ForceUseJavaLauncherTarget(rc) {
			return JavaLauncherAttributeName, true
		}
	}
	return "", false
}

// LauncherForTarget returns the target providing the launcher with
// which the target should be wrapped, if any.
func LauncherForTarget(semantics Semantics, rc RuleContext) (ConfiguredTarget, bool) {
	attributeName, ok := LauncherAttributeForTarget(semantics, rc)
	if !ok {
		return nil, false
	}
	return rc.GetPrerequisite(attributeName)
}

// LauncherArtifactForTarget returns the executable of the launcher
// with which the target should be wrapped, if any.
func LauncherArtifactForTarget(semantics Semantics, rc RuleContext) (Artifact, bool) {
	attributeName, ok := LauncherAttributeForTarget(semantics, rc)
	if !ok {
		return nil, false
	}
	return rc.GetPrerequisiteArtifact(attributeName)
}
