package main

import (
	"errors"

	"jvmrules.build/pkg/analysis/java"
	"jvmrules.build/pkg/console/formatted"

	"github.com/spf13/cobra"

	"go.starlark.net/starlark"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func newEvalCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "eval file",
		Short: "Execute a Starlark file that has access to java_common",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := o.getLogger()
			thread := &starlark.Thread{
				Name: "eval",
				Print: func(_ *starlark.Thread, msg string) {
					logger.Info(formatted.Text(msg))
				},
			}
			if _, err := starlark.ExecFile(thread, args[0], nil, java.GetBuiltins()); err != nil {
				var evalErr *starlark.EvalError
				if errors.As(err, &evalErr) {
					return status.Error(codes.InvalidArgument, evalErr.Backtrace())
				}
				return status.Errorf(codes.InvalidArgument, "Failed to execute %#v: %s", args[0], err)
			}
			return nil
		},
	}
}
