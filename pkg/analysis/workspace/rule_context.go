package workspace

import (
	"jvmrules.build/pkg/analysis/java"
	"jvmrules.build/pkg/label"
)

type javaConfiguration struct {
	javaLauncher    label.CanonicalLabel
	hasJavaLauncher bool
}

func (c javaConfiguration) GetJavaLauncherLabel() (label.CanonicalLabel, bool) {
	return c.javaLauncher, c.hasJavaLauncher
}

type artifact struct {
	path  string
	owner label.CanonicalLabel
}

func (a artifact) GetPath() string {
	return a.path
}

func (a artifact) GetOwner() label.CanonicalLabel {
	return a.owner
}

type ruleContext struct {
	workspace *Workspace
	target    *target
}

func (rc *ruleContext) GetLabel() label.CanonicalLabel {
	return rc.target.label
}

func (rc *ruleContext) GetRuleKind() string {
	return rc.target.ruleKind.name
}

func (rc *ruleContext) GetJavaConfiguration() java.JavaConfiguration {
	return rc.workspace.javaConfiguration
}

func (rc *ruleContext) IsLabelAttributeDefined(name string) bool {
	_, ok := rc.target.ruleKind.labelAttributes[name]
	return ok
}

func (rc *ruleContext) GetLabelAttribute(name string) (label.CanonicalLabel, bool) {
	if !rc.IsLabelAttributeDefined(name) {
		return label.CanonicalLabel{}, false
	}
	if name == java.JavaLauncherAttributeName {
		// Late-bound to --java_launcher, defaulting to the
		// launcher provided by the JDK.
		if javaLauncher, ok := rc.workspace.javaConfiguration.GetJavaLauncherLabel(); ok {
			return javaLauncher, true
		}
		return java.JDKLauncherLabel, true
	}
	l, ok := rc.target.attributes[name]
	return l, ok
}

func (rc *ruleContext) getPrerequisiteTarget(attributeName string) (*target, bool) {
	l, ok := rc.GetLabelAttribute(attributeName)
	if !ok {
		return nil, false
	}
	t, ok := rc.workspace.targets[l]
	return t, ok
}

func (rc *ruleContext) GetPrerequisite(attributeName string) (java.ConfiguredTarget, bool) {
	t, ok := rc.getPrerequisiteTarget(attributeName)
	if !ok {
		return nil, false
	}
	return t, true
}

func (rc *ruleContext) GetPrerequisiteArtifact(attributeName string) (java.Artifact, bool) {
	t, ok := rc.getPrerequisiteTarget(attributeName)
	if !ok || t.executable == "" {
		return nil, false
	}
	return artifact{
		path:  t.executable,
		owner: t.label,
	}, true
}
