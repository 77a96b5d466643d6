package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/peterbourgon/ff/v3/ffcli"
	"github.com/pkg/errors"

	"github.com/benkehoe/aws-arn/pkg/arn"
	"github.com/benkehoe/aws-arn/pkg/awscreds"
)

// fakeAccountID is the placeholder account used with -fake-account, for
// writing documentation and examples without leaking a real account.
const fakeAccountID = "123456789012"

// BuildCommand configuration object
type BuildCommand struct {
	rootConfig *RootConfig
	out        io.Writer

	region         string
	account        string
	fakeAccount    bool
	profile        string
	defaultProfile bool
	partition      string
	roleARN        string
	forceRegion    string
	forceAccount   string
}

// NewBuildCommand creates a new ffcli.Command
func NewBuildCommand(rootConfig *RootConfig, out io.Writer) *ffcli.Command {
	c := BuildCommand{
		rootConfig: rootConfig,
		out:        out,
	}

	fs := flag.NewFlagSet("aws-arn build", flag.ExitOnError)
	fs.StringVar(&c.region, "region", "", "the region field of the ARN")
	fs.StringVar(&c.account, "account", "", "the account field of the ARN (\"*\" maps to an empty field)")
	fs.BoolVar(&c.fakeAccount, "fake-account", false, "use the placeholder account "+fakeAccountID)
	fs.StringVar(&c.profile, "profile", "", "AWS profile to resolve a missing region or account from")
	fs.BoolVar(&c.defaultProfile, "default-profile", false, "shorthand for -profile default")
	fs.StringVar(&c.partition, "partition", "", "the partition field of the ARN (default \"aws\")")
	fs.StringVar(&c.roleARN, "assume-role", "", "role to assume before looking up the account")
	fs.StringVar(&c.forceRegion, "force-region", "", `override the rule table: "on" or "off"`)
	fs.StringVar(&c.forceAccount, "force-account", "", `override the rule table: "on" or "off"`)
	rootConfig.RegisterFlags(fs)

	return &ffcli.Command{
		Name:       "build",
		ShortUsage: "aws-arn build [flags] <service> <resource>",
		ShortHelp:  "Assemble the ARN for a service and resource",
		FlagSet:    fs,
		Exec:       c.Exec,
	}
}

// Exec function for this command.
func (c *BuildCommand) Exec(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.New("two arguments required: <service> <resource>")
	}
	service, resource := args[0], args[1]

	log, err := c.rootConfig.Logger()
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

	account := c.account
	if c.fakeAccount {
		if account != "" {
			return errors.New("-account and -fake-account are mutually exclusive")
		}
		account = fakeAccountID
	}

	profile := c.profile
	if c.defaultProfile {
		if profile != "" {
			return errors.New("-profile and -default-profile are mutually exclusive")
		}
		profile = "default"
	}

	defaults, err := loadDefaults()
	if err != nil {
		return err
	}
	if profile == "" && defaults.Profile != "" {
		log.With("profile", defaults.Profile).Debug("using profile from config file")
		profile = defaults.Profile
	}
	partition := c.partition
	if partition == "" {
		partition = defaults.Partition
	}

	rs, err := c.rootConfig.Ruleset()
	if err != nil {
		return err
	}
	if fp, err := rs.Fingerprint(); err == nil {
		log.With("rules", rs.Len(), "fingerprint", fmt.Sprintf("%016x", fp)).Debug("loaded rule table")
	}

	creds := awscreds.New(log)
	creds.RoleARN = c.roleARN

	builder := arn.NewBuilder(rs, creds)
	a, err := builder.Build(ctx, arn.BuildInput{
		Service:      service,
		Resource:     resource,
		Region:       c.region,
		Account:      account,
		Partition:    partition,
		Profile:      profile,
		ForceRegion:  forceRegion,
		ForceAccount: forceAccount,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out, a.String())
	return nil
}
