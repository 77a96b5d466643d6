package commands

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/peterbourgon/ff/v3/ffcli"
	"github.com/pkg/errors"

	"github.com/benkehoe/aws-arn/pkg/arn"
)

// SplitCommand configuration object
type SplitCommand struct {
	rootConfig *RootConfig
	out        io.Writer
}

// NewSplitCommand creates a new ffcli.Command
func NewSplitCommand(rootConfig *RootConfig, out io.Writer) *ffcli.Command {
	c := SplitCommand{
		rootConfig: rootConfig,
		out:        out,
	}

	fs := flag.NewFlagSet("aws-arn split", flag.ExitOnError)
	rootConfig.RegisterFlags(fs)

	return &ffcli.Command{
		Name:       "split",
		ShortUsage: "aws-arn split <arn>",
		ShortHelp:  "Split an ARN into its fields",
		FlagSet:    fs,
		Exec:       c.Exec,
	}
}

// Exec function for this command.
func (c *SplitCommand) Exec(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("one argument required: <arn>")
	}

	a, err := arn.Split(args[0])
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshalling fields")
	}
	fmt.Fprintln(c.out, string(data))
	return nil
}
