package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/benkehoe/aws-arn/cmd/commands"
)

func main() {
	var (
		out                     = os.Stdout
		rootCommand, rootConfig = commands.RootCommand()
	)

	rootCommand.Subcommands = []*ffcli.Command{
		commands.NewBuildCommand(rootConfig, out),
		commands.NewSplitCommand(rootConfig, out),
		commands.NewResolveCommand(rootConfig, out),
		commands.NewCloudFormationCommand(rootConfig, out),
		commands.NewTerraformCommand(rootConfig, out),
		commands.NewConfigureCommand(rootConfig, out),
		commands.NewServerCommand(rootConfig, out),
		commands.NewVersionCommand(rootConfig, out),
	}

	if err := rootCommand.Parse(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error during Parse: %v\n", err)
		os.Exit(1)
	}

	if err := rootCommand.Run(context.Background()); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
