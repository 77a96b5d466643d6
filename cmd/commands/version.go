package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/peterbourgon/ff/v3/ffcli"
)

// NewVersionCommand creates a new ffcli.Command
func NewVersionCommand(rootConfig *RootConfig, out io.Writer) *ffcli.Command {
	return &ffcli.Command{
		Name:       "version",
		ShortUsage: "aws-arn version",
		ShortHelp:  "Print the version",
		Exec: func(ctx context.Context, _ []string) error {
			if version == "" {
				fmt.Fprintln(out, "aws-arn (dev build)")
				return nil
			}
			fmt.Fprintln(out, "aws-arn "+version)
			return nil
		},
	}
}
