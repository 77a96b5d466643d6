package commands

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/peterbourgon/ff/v3/ffcli"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/benkehoe/aws-arn/pkg/arn"
	"github.com/benkehoe/aws-arn/pkg/cfn"
)

// CloudFormationCommand configuration object
type CloudFormationCommand struct {
	rootConfig *RootConfig
	out        io.Writer

	format       string
	forceRegion  string
	forceAccount string
}

// NewCloudFormationCommand creates a new ffcli.Command
func NewCloudFormationCommand(rootConfig *RootConfig, out io.Writer) *ffcli.Command {
	c := CloudFormationCommand{
		rootConfig: rootConfig,
		out:        out,
	}

	fs := flag.NewFlagSet("aws-arn cloudformation", flag.ExitOnError)
	fs.StringVar(&c.format, "format", "json", "output format: json or yaml")
	fs.StringVar(&c.forceRegion, "force-region", "", `override the rule table: "on" or "off"`)
	fs.StringVar(&c.forceAccount, "force-account", "", `override the rule table: "on" or "off"`)
	rootConfig.RegisterFlags(fs)

	return &ffcli.Command{
		Name:       "cloudformation",
		ShortUsage: "aws-arn cloudformation [flags] <service> <resource-part>...",
		ShortHelp:  "Emit a CloudFormation Fn::Join expression for an ARN",
		LongHelp: strings.TrimSpace(`
The partition, and whichever of region and account the rule table says
the service needs, become pseudo parameter Refs resolved when the
template is deployed.

Resource parts of the form ref:NAME become {"Ref": "NAME"}, so resource
names can flow in from elsewhere in the template:

  aws-arn cloudformation dynamodb table/ ref:MyTable
`),
		FlagSet: fs,
		Exec:    c.Exec,
	}
}

// Exec function for this command.
func (c *CloudFormationCommand) Exec(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.New("at least two arguments required: <service> <resource-part>...")
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

	builder := arn.NewBuilder(rs, nil)
	node := builder.Symbolic(cfn.Symbols{}, arn.SymbolicInput{
		Service: args[0],
		Resource: templateParts(args[1:], func(name string) interface{} {
			return cfn.Ref{Ref: name}
		}),
		ForceRegion:  forceRegion,
		ForceAccount: forceAccount,
	})

	switch c.format {
	case "json":
		data, err := json.MarshalIndent(node, "", "  ")
		if err != nil {
			return errors.Wrap(err, "marshalling expression")
		}
		fmt.Fprintln(c.out, string(data))
	case "yaml":
		data, err := yaml.Marshal(node)
		if err != nil {
			return errors.Wrap(err, "marshalling expression")
		}
		fmt.Fprint(c.out, string(data))
	default:
		return errors.Errorf(`-format must be "json" or "yaml", got %q`, c.format)
	}

	return nil
}
