package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/peterbourgon/ff/v3/ffcli"
	"github.com/pkg/errors"

	"github.com/benkehoe/aws-arn/pkg/arn"
	"github.com/benkehoe/aws-arn/pkg/tf"
)

// TerraformCommand configuration object
type TerraformCommand struct {
	rootConfig *RootConfig
	out        io.Writer

	name         string
	exprOnly     bool
	forceRegion  string
	forceAccount string
}

// NewTerraformCommand creates a new ffcli.Command
func NewTerraformCommand(rootConfig *RootConfig, out io.Writer) *ffcli.Command {
	c := TerraformCommand{
		rootConfig: rootConfig,
		out:        out,
	}

	fs := flag.NewFlagSet("aws-arn terraform", flag.ExitOnError)
	fs.StringVar(&c.name, "name", "arn", "name for the generated local and output")
	fs.BoolVar(&c.exprOnly, "expression", false, "print only the interpolation expression, not a whole file")
	fs.StringVar(&c.forceRegion, "force-region", "", `override the rule table: "on" or "off"`)
	fs.StringVar(&c.forceAccount, "force-account", "", `override the rule table: "on" or "off"`)
	rootConfig.RegisterFlags(fs)

	return &ffcli.Command{
		Name:       "terraform",
		ShortUsage: "aws-arn terraform [flags] <service> <resource-part>...",
		ShortHelp:  "Emit Terraform configuration for an ARN",
		LongHelp: strings.TrimSpace(`
The partition, and whichever of region and account the rule table says
the service needs, become references to the aws_partition, aws_region
and aws_caller_identity data sources.

Resource parts of the form ref:EXPR become interpolations, so resource
names can flow in from elsewhere in the configuration:

  aws-arn terraform dynamodb table/ ref:aws_dynamodb_table.main.name
`),
		FlagSet: fs,
		Exec:    c.Exec,
	}
}

// Exec function for this command.
func (c *TerraformCommand) Exec(ctx context.Context, args []string) error {
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
	expr, ok := builder.Symbolic(tf.Symbols{}, arn.SymbolicInput{
		Service: args[0],
		Resource: templateParts(args[1:], func(name string) interface{} {
			return tf.Expr("${" + name + "}")
		}),
		ForceRegion:  forceRegion,
		ForceAccount: forceAccount,
	}).(tf.Expr)
	if !ok {
		return errors.New("terraform renderer returned unexpected type")
	}

	if c.exprOnly {
		fmt.Fprintln(c.out, string(expr))
		return nil
	}

	fmt.Fprint(c.out, string(tf.File(c.name, args[0], expr)))
	return nil
}
