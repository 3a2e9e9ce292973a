package main

import (
	"fmt"

	"jvmrules.build/pkg/analysis/java"
	"jvmrules.build/pkg/analysis/workspace"
	"jvmrules.build/pkg/console/formatted"
	"jvmrules.build/pkg/label"

	"github.com/spf13/cobra"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func newLauncherCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "launcher [label...]",
		Short: "Print the launchers that Java targets are wrapped with",
		Long: "Print the launchers that Java targets are wrapped with. If no\n" +
			"labels are provided, all targets in the workspace are printed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := o.loadWorkspace()
			if err != nil {
				return err
			}

			var labels []label.CanonicalLabel
			if len(args) == 0 {
				labels = w.GetTargetLabels()
			} else {
				for _, arg := range args {
					l, err := w.ParseLabel(arg)
					if err != nil {
						return err
					}
					labels = append(labels, l)
				}
			}

			lines := make([]string, len(labels))
			var group errgroup.Group
			for i, l := range labels {
				group.Go(func() error {
					line, err := describeLauncher(w, l)
					if err != nil {
						return err
					}
					lines[i] = line
					return nil
				})
			}
			if err := group.Wait(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, line := range lines {
				fmt.Fprintln(out, line)
			}
			if len(labels) == 0 {
				o.getLogger().Warning(formatted.Text("Workspace does not contain any targets"))
			}
			return nil
		},
	}
}

// describeLauncher returns a single line of output, containing the
// attribute through which the launcher of a target is provided, the
// label of the launcher and the path of its executable. Targets whose
// semantics force the use of --java_launcher while the flag is unset
// are wrapped with the launcher provided by the JDK, which is printed
// without a path.
func describeLauncher(w *workspace.Workspace, l label.CanonicalLabel) (string, error) {
	rc, err := w.GetRuleContext(l)
	if err != nil {
		return "", err
	}
	semantics := w.GetSemantics()
	attributeName, ok := java.LauncherAttributeForTarget(semantics, rc)
	if !ok {
		return fmt.Sprintf("%s: default", l), nil
	}
	if launcherLabel, _ := rc.GetLabelAttribute(attributeName); launcherLabel == java.JDKLauncherLabel {
		return fmt.Sprintf("%s: %s %s (jdk)", l, attributeName, launcherLabel), nil
	}

	launcher, ok := java.LauncherForTarget(semantics, rc)
	if !ok {
		launcherLabel, _ := rc.GetLabelAttribute(attributeName)
		return "", status.Errorf(codes.NotFound, "Target %#v uses launcher %#v, which is not declared in the workspace", l.String(), launcherLabel.String())
	}
	artifact, ok := java.LauncherArtifactForTarget(semantics, rc)
	if !ok {
		return "", status.Errorf(codes.FailedPrecondition, "Launcher %#v of target %#v is not executable", launcher.GetLabel().String(), l.String())
	}
	return fmt.Sprintf("%s: %s %s %s", l, attributeName, launcher.GetLabel(), artifact.GetPath()), nil
}
