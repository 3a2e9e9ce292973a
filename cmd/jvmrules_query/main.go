package main

import (
	"jvmrules.build/pkg/analysis/workspace"
	"jvmrules.build/pkg/console/formatted"
	"jvmrules.build/pkg/console/logging"

	"github.com/spf13/cobra"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// rootOptions contains the values of flags that are shared by all
// subcommands.
type rootOptions struct {
	workspacePath              string
	color                      logging.Color
	javaLauncher               string
	forceJavaLauncherRuleKinds []string

	logger logging.Logger
}

func (o *rootOptions) getLogger() logging.Logger {
	if o.logger == nil {
		o.logger = logging.NewLoggerFromColor(o.color)
	}
	return o.logger
}

func (o *rootOptions) loadWorkspace() (*workspace.Workspace, error) {
	if o.workspacePath == "" {
		return nil, status.Error(codes.InvalidArgument, "No workspace configuration provided, use --workspace")
	}
	configuration, err := workspace.LoadConfiguration(o.workspacePath)
	if err != nil {
		return nil, err
	}
	return workspace.New(configuration, workspace.Flags{
		JavaLauncher:               o.javaLauncher,
		ForceJavaLauncherRuleKinds: o.forceJavaLauncherRuleKinds,
	})
}

func newRootCommand(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jvmrules_query",
		Short: "Query the launchers and compiler options of Java targets",
		Long: "jvmrules_query inspects a workspace configuration, printing the\n" +
			"launchers that Java targets are wrapped with and the tokenized\n" +
			"options that are passed to javac.",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&o.workspacePath, "workspace", "", "path of the TOML workspace configuration")
	flags.Var(&o.color, "color", "use VT100 escape sequences in log messages (auto, yes or no)")
	flags.StringVar(&o.javaLauncher, "java_launcher", "", "launcher of Java targets that don't set the launcher attribute")
	flags.StringSliceVar(&o.forceJavaLauncherRuleKinds, "force_java_launcher_rule_kinds", nil, "rule kinds that always use the target of --java_launcher")

	cmd.AddCommand(
		newLauncherCommand(o),
		newJavacoptsCommand(o),
		newEvalCommand(o),
	)
	return cmd
}

func main() {
	o := rootOptions{color: logging.ColorAuto}
	if err := newRootCommand(&o).Execute(); err != nil {
		o.getLogger().Fatal(formatted.Text(status.Convert(err).Message()))
	}
}
