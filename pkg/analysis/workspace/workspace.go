// Package workspace provides an in-memory set of targets, whose rule
// contexts can be passed to the helpers in package java.
package workspace

import (
	"maps"
	"slices"
	"strings"

	"jvmrules.build/pkg/analysis/java"
	"jvmrules.build/pkg/label"

	"github.com/buildbarn/bb-storage/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Like in Bazel, bazel_tools is visible from every repo, even if the
// repo mapping in the configuration does not list it.
var (
	bazelToolsApparentRepo  = label.MustNewApparentRepo("bazel_tools")
	bazelToolsCanonicalRepo = label.MustNewCanonicalRepo("bazel_tools+")
)

// Flags that were provided on the command line. These take precedence
// over the values in the workspace configuration.
type Flags struct {
	JavaLauncher               string
	ForceJavaLauncherRuleKinds []string
}

type ruleKind struct {
	name            string
	labelAttributes map[string]struct{}
}

type target struct {
	label      label.CanonicalLabel
	ruleKind   *ruleKind
	executable string
	attributes map[string]label.CanonicalLabel
}

func (t *target) GetLabel() label.CanonicalLabel {
	return t.label
}

// Workspace contains targets declared in a workspace configuration.
// It is immutable after construction, meaning that rule contexts may be
// obtained and used from multiple goroutines.
type Workspace struct {
	rootPackage       label.CanonicalPackage
	resolver          *repoMappingResolver
	javaConfiguration javaConfiguration
	semantics         java.Semantics
	javacopts         []string
	targets           map[label.CanonicalLabel]*target
}

// New creates a Workspace, canonicalizing all labels contained in the
// configuration and flags.
func New(configuration *Configuration, flags Flags) (*Workspace, error) {
	rootModule, err := label.NewModule(configuration.RootModule)
	if err != nil {
		return nil, util.StatusWrapWithCode(err, codes.InvalidArgument, "Invalid root module")
	}
	resolver := &repoMappingResolver{
		rootModule: rootModule,
		repoMapping: map[label.ApparentRepo]label.CanonicalRepo{
			bazelToolsApparentRepo: bazelToolsCanonicalRepo,
		},
	}
	for apparentRepoStr, canonicalRepoStr := range configuration.RepoMapping {
		apparentRepo, err := label.NewApparentRepo(apparentRepoStr)
		if err != nil {
			return nil, util.StatusWrapfWithCode(err, codes.InvalidArgument, "Invalid apparent repo %#v in repo mapping", apparentRepoStr)
		}
		canonicalRepo, err := label.NewCanonicalRepo(canonicalRepoStr)
		if err != nil {
			return nil, util.StatusWrapfWithCode(err, codes.InvalidArgument, "Invalid canonical repo %#v in repo mapping", canonicalRepoStr)
		}
		resolver.repoMapping[apparentRepo] = canonicalRepo
	}

	w := &Workspace{
		rootPackage: rootModule.GetBareCanonicalRepo().GetRootPackage(),
		resolver:    resolver,
		javacopts:   configuration.Javacopts,
		targets:     make(map[label.CanonicalLabel]*target, len(configuration.Targets)),
	}

	// --java_launcher.
	javaLauncherStr := configuration.JavaLauncher
	if flags.JavaLauncher != "" {
		javaLauncherStr = flags.JavaLauncher
	}
	if javaLauncherStr != "" {
		javaLauncher, err := w.resolveLabel(w.rootPackage, javaLauncherStr)
		if err != nil {
			return nil, util.StatusWrap(err, "Invalid Java launcher")
		}
		w.javaConfiguration = javaConfiguration{
			javaLauncher:    javaLauncher,
			hasJavaLauncher: true,
		}
	}

	if forceRuleKinds := slices.Concat(configuration.ForceJavaLauncherRuleKinds, flags.ForceJavaLauncherRuleKinds); len(forceRuleKinds) > 0 {
		w.semantics = java.NewRuleKindSemantics(forceRuleKinds...)
	} else {
		w.semantics = java.DefaultSemantics
	}

	ruleKinds := make(map[string]*ruleKind, len(configuration.RuleKinds))
	for _, ruleKindConfiguration := range configuration.RuleKinds {
		if _, ok := ruleKinds[ruleKindConfiguration.Name]; ok {
			return nil, status.Errorf(codes.InvalidArgument, "Rule kind %#v is declared multiple times", ruleKindConfiguration.Name)
		}
		rk := &ruleKind{
			name:            ruleKindConfiguration.Name,
			labelAttributes: make(map[string]struct{}, len(ruleKindConfiguration.LabelAttributes)),
		}
		for _, attributeName := range ruleKindConfiguration.LabelAttributes {
			rk.labelAttributes[attributeName] = struct{}{}
		}
		ruleKinds[rk.name] = rk
	}

	for _, targetConfiguration := range configuration.Targets {
		t, err := w.newTarget(ruleKinds, &targetConfiguration)
		if err != nil {
			return nil, util.StatusWrapf(err, "Invalid target %#v", targetConfiguration.Label)
		}
		if _, ok := w.targets[t.label]; ok {
			return nil, status.Errorf(codes.InvalidArgument, "Target %#v is declared multiple times", t.label.String())
		}
		w.targets[t.label] = t
	}
	return w, nil
}

func (w *Workspace) newTarget(ruleKinds map[string]*ruleKind, configuration *TargetConfiguration) (*target, error) {
	targetLabel, err := w.resolveLabel(w.rootPackage, configuration.Label)
	if err != nil {
		return nil, util.StatusWrap(err, "Invalid label")
	}
	rk, ok := ruleKinds[configuration.Kind]
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "Unknown rule kind %#v", configuration.Kind)
	}

	t := &target{
		label:      targetLabel,
		ruleKind:   rk,
		executable: configuration.Executable,
		attributes: make(map[string]label.CanonicalLabel, len(configuration.Attributes)),
	}
	targetPackage := targetLabel.GetCanonicalPackage()
	for attributeName, value := range configuration.Attributes {
		if strings.HasPrefix(attributeName, ":") {
			return nil, status.Errorf(codes.InvalidArgument, "Attribute %#v is private and cannot be set", attributeName)
		}
		if _, ok := rk.labelAttributes[attributeName]; !ok {
			return nil, status.Errorf(codes.InvalidArgument, "Rule kind %#v does not declare label attribute %#v", rk.name, attributeName)
		}
		attributeLabel, err := w.resolveLabel(targetPackage, value)
		if err != nil {
			return nil, util.StatusWrapf(err, "Invalid value for attribute %#v", attributeName)
		}
		t.attributes[attributeName] = attributeLabel
	}
	return t, nil
}

// resolveLabel converts a label string, as it would be written in a
// BUILD file in the provided package, to a canonical label.
func (w *Workspace) resolveLabel(fromPackage label.CanonicalPackage, value string) (label.CanonicalLabel, error) {
	apparentLabel, err := fromPackage.AppendLabel(value)
	if err != nil {
		return label.CanonicalLabel{}, util.StatusWrapfWithCode(err, codes.InvalidArgument, "Invalid label %#v", value)
	}
	canonicalLabel, err := label.Canonicalize[label.CanonicalLabel](w.resolver, fromPackage.GetCanonicalRepo(), apparentLabel)
	if err != nil {
		return label.CanonicalLabel{}, util.StatusWrapWithCode(err, codes.InvalidArgument, "Failed to canonicalize label")
	}
	return canonicalLabel, nil
}

// ParseLabel converts a label provided on the command line to a
// canonical label. Labels are interpreted relative to the top-level
// package of the root module.
func (w *Workspace) ParseLabel(value string) (label.CanonicalLabel, error) {
	return w.resolveLabel(w.rootPackage, value)
}

// GetTargetLabels returns the labels of all targets in the workspace,
// in sorted order.
func (w *Workspace) GetTargetLabels() []label.CanonicalLabel {
	return slices.SortedFunc(maps.Keys(w.targets), func(a, b label.CanonicalLabel) int {
		return strings.Compare(a.String(), b.String())
	})
}

// GetJavacopts returns the Java compiler options that are declared in
// the workspace configuration, prior to tokenization.
func (w *Workspace) GetJavacopts() []string {
	return w.javacopts
}

// GetSemantics returns the semantics of Java rules that should be used
// to analyze targets in this workspace.
func (w *Workspace) GetSemantics() java.Semantics {
	return w.semantics
}

// GetRuleContext returns the rule context of a target, which can be
// used to analyze it.
func (w *Workspace) GetRuleContext(l label.CanonicalLabel) (java.RuleContext, error) {
	t, ok := w.targets[l]
	if !ok {
		return nil, status.Errorf(codes.NotFound, "Target %#v does not exist", l.String())
	}
	return &ruleContext{
		workspace: w,
		target:    t,
	}, nil
}

type repoMappingResolver struct {
	rootModule  label.Module
	repoMapping map[label.ApparentRepo]label.CanonicalRepo
}

func (r *repoMappingResolver) GetCanonicalRepo(fromCanonicalRepo label.CanonicalRepo, toApparentRepo label.ApparentRepo) (*label.CanonicalRepo, error) {
	if canonicalRepo, ok := r.repoMapping[toApparentRepo]; ok {
		return &canonicalRepo, nil
	}
	if toApparentRepo == r.rootModule.ToApparentRepo() {
		canonicalRepo := r.rootModule.GetBareCanonicalRepo()
		return &canonicalRepo, nil
	}
	return nil, nil
}

func (r *repoMappingResolver) GetRootModule() (label.Module, error) {
	return r.rootModule, nil
}
