package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/peterbourgon/ff/v3/ffcli"
	"github.com/pkg/errors"
	"gopkg.in/ini.v1"

	"github.com/benkehoe/aws-arn/pkg/crypto"
)

// ConfigureCommand configuration object
type ConfigureCommand struct {
	rootConfig *RootConfig
	out        io.Writer

	partition string
	profile   string
}

// NewConfigureCommand creates a new ffcli.Command
func NewConfigureCommand(rootConfig *RootConfig, out io.Writer) *ffcli.Command {
	c := ConfigureCommand{
		rootConfig: rootConfig,
		out:        out,
	}

	fs := flag.NewFlagSet("aws-arn configure", flag.ExitOnError)
	fs.StringVar(&c.partition, "partition", "", "partition future invocations default to")
	fs.StringVar(&c.profile, "profile", "", "AWS profile future invocations default to")
	rootConfig.RegisterFlags(fs)

	return &ffcli.Command{
		Name:       "configure",
		ShortUsage: "aws-arn configure [flags]",
		ShortHelp:  "Save default settings to ~/.aws-arn.ini",
		FlagSet:    fs,
		Exec:       c.Exec,
	}
}

func (c *ConfigureCommand) log(a ...interface{}) {
	fmt.Fprintln(c.out, a...)
}

// Exec function for this command.
func (c *ConfigureCommand) Exec(ctx context.Context, _ []string) error {
	file, err := iniFile()
	if err != nil {
		return err
	}

	var cfgFile *ini.File
	if _, err := os.Stat(file); err == nil {
		c.log("Loading your aws-arn config file (" + file + ")")
		cfgFile, err = ini.Load(file)
		if err != nil {
			return errors.Wrapf(err, "loading %s", file)
		}
	} else if os.IsNotExist(err) {
		c.log(file + " does not exist - initialising new config")
		cfgFile = ini.Empty()
	} else {
		return err
	}

	section := cfgFile.Section(configSection)

	if c.partition != "" {
		section.Key("partition").SetValue(c.partition)
	}
	if c.profile != "" {
		section.Key("profile").SetValue(c.profile)
	}

	// mint a client token for talking to an aws-arn server, once
	if section.Key("token").String() == "" {
		token, err := crypto.GenerateRandomToken()
		if err != nil {
			return errors.Wrap(err, "generating token")
		}
		section.Key("token").SetValue(token)
	}

	if err := cfgFile.SaveTo(file); err != nil {
		return errors.Wrapf(err, "saving %s", file)
	}

	c.log("Updated " + file)
	return nil
}
