package commands

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/peterbourgon/ff/v3/ffcli"
	"github.com/pkg/errors"

	"github.com/benkehoe/aws-arn/pkg/rules"
)

// ResolveCommand configuration object
type ResolveCommand struct {
	rootConfig *RootConfig
	out        io.Writer

	forceRegion  string
	forceAccount string
}

// NewResolveCommand creates a new ffcli.Command
func NewResolveCommand(rootConfig *RootConfig, out io.Writer) *ffcli.Command {
	c := ResolveCommand{
		rootConfig: rootConfig,
		out:        out,
	}

	fs := flag.NewFlagSet("aws-arn resolve", flag.ExitOnError)
	fs.StringVar(&c.forceRegion, "force-region", "", `override the rule table: "on" or "off"`)
	fs.StringVar(&c.forceAccount, "force-account", "", `override the rule table: "on" or "off"`)
	rootConfig.RegisterFlags(fs)

	return &ffcli.Command{
		Name:       "resolve",
		ShortUsage: "aws-arn resolve [flags] <service> [<resource>]",
		ShortHelp:  "Show which ARN fields the rule table requires for a service",
		FlagSet:    fs,
		Exec:       c.Exec,
	}
}

// Exec function for this command.
func (c *ResolveCommand) Exec(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return errors.New("arguments: <service> [<resource>]")
	}
	resource := ""
	if len(args) == 2 {
		resource = args[1]
	}

	rs, err := c.rootConfig.Ruleset()
	if err != nil {
		return err
	}

	forceRegion, err := parseForce("force-region", c.forceRegion)
	if err != nil {
		return err
	}
	forceAccount, err := parseForce("force-account", c.forceAccount)
	if err != nil {
		return err
	}

	req := rs.Resolve(args[0], resource, rules.Force{
		Region:  forceRegion,
		Account: forceAccount,
	})

	data, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshalling requirement")
	}
	fmt.Fprintln(c.out, string(data))
	return nil
}
