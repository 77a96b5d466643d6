package commands

import (
	"context"
	"flag"

	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
	"go.uber.org/zap"

	"github.com/benkehoe/aws-arn/pkg/rules"
)

// overriden by build flags
var version string

// Config for the root command, including flags and types that should be
// available to each subcommand.
type RootConfig struct {
	Verbose   bool
	RulesFile string
}

// RootCommand constructs a usable ffcli.Command and an empty Config.
// The config's fields are set after a successful parse.
func RootCommand() (*ffcli.Command, *RootConfig) {
	var cfg RootConfig

	fs := flag.NewFlagSet("aws-arn", flag.ExitOnError)
	cfg.RegisterFlags(fs)

	return &ffcli.Command{
		Name:       "aws-arn",
		ShortUsage: "aws-arn [flags] <subcommand> [flags] [<arg>...]",
		FlagSet:    fs,
		Options:    []ff.Option{ff.WithEnvVarPrefix("AWS_ARN")},
		Exec:       cfg.Exec,
	}, &cfg
}

// RegisterFlags registers the flag fields into the provided flag.FlagSet. This
// helper function allows subcommands to register the root flags into their
// flagsets, creating "global" flags that can be passed after any subcommand at
// the commandline.
func (c *RootConfig) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.Verbose, "v", false, "log verbose output")
	fs.StringVar(&c.RulesFile, "rules", "", "path to a rule table file overriding the built-in one")
}

// Exec function for this command.
func (c *RootConfig) Exec(context.Context, []string) error {
	// The root command has no meaning, so if it gets executed,
	// display the usage text to the user instead.
	return flag.ErrHelp
}

// Logger builds the CLI logger, at debug level when -v is set.
func (c *RootConfig) Logger() (*zap.SugaredLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !c.Verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	log, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return log.Sugar(), nil
}

// Ruleset loads the rule table named by -rules, or the built-in table.
func (c *RootConfig) Ruleset() (*rules.Ruleset, error) {
	if c.RulesFile != "" {
		return rules.LoadFile(c.RulesFile)
	}
	return rules.Default()
}
