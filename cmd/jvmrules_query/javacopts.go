package main

import (
	"fmt"
	"slices"

	"jvmrules.build/pkg/analysis/java"
	"jvmrules.build/pkg/shell"

	"github.com/spf13/cobra"
)

func newJavacoptsCommand(o *rootOptions) *cobra.Command {
	var javacopts []string
	cmd := &cobra.Command{
		Use:   "javacopts",
		Short: "Print the tokenized options that are passed to javac",
		Long: "Print the tokenized options that are passed to javac. Options\n" +
			"declared in the workspace come first, followed by the values of\n" +
			"--javacopt. Options that cannot be tokenized are passed on as is.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var options []string
			if o.workspacePath != "" {
				w, err := o.loadWorkspace()
				if err != nil {
					return err
				}
				options = w.GetJavacopts()
			}
			options = slices.Concat(options, javacopts)

			fmt.Fprintln(cmd.OutOrStdout(), shell.Join(java.TokenizeJavacopts(options)...))
			return nil
		},
	}
	// Options frequently contain commas (e.g., -Xlint:cast,deprecation),
	// so values must not be split.
	cmd.Flags().StringArrayVar(&javacopts, "javacopt", nil, "additional option to pass to javac")
	return cmd
}
