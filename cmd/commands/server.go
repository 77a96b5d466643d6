package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/benkehoe/aws-arn/cmd/server"
	"github.com/benkehoe/aws-arn/internal/tracing"
	"github.com/benkehoe/aws-arn/pkg/arn"
	"github.com/benkehoe/aws-arn/pkg/awscreds"
	"github.com/benkehoe/aws-arn/pkg/config"
	"github.com/benkehoe/aws-arn/pkg/healthcheck"
)

// ServerCommand configuration object
type ServerCommand struct {
	rootConfig *RootConfig
	out        io.Writer

	host            string
	token           string
	readTimeout     time.Duration
	writeTimeout    time.Duration
	shutdownTimeout time.Duration
	logLevel        string
	roleARN         string

	tracing *tracing.TracingFactory
}

// NewServerCommand creates a new ffcli.Command
func NewServerCommand(rootConfig *RootConfig, out io.Writer) *ffcli.Command {
	c := ServerCommand{
		rootConfig: rootConfig,
		out:        out,
		tracing:    tracing.NewFactory(),
	}

	fs := flag.NewFlagSet("aws-arn server", flag.ExitOnError)
	fs.StringVar(&c.host, "host", "0.0.0.0:9090", "the server hostname to listen on (can be set via AWS_ARN_HOST env var)")
	fs.DurationVar(&c.readTimeout, "read-timeout", 5*time.Second, "server read timeout duration (can be set via AWS_ARN_READ_TIMEOUT env var)")
	fs.DurationVar(&c.writeTimeout, "write-timeout", 5*time.Second, "server write timeout duration (can be set via AWS_ARN_WRITE_TIMEOUT env var)")
	fs.DurationVar(&c.shutdownTimeout, "shutdown-timeout", 5*time.Second, "server shutdown timeout duration (can be set via AWS_ARN_SHUTDOWN_TIMEOUT env var)")
	fs.StringVar(&c.token, "token", "", "token clients must send in the x-aws-arn-token header (can be set via AWS_ARN_TOKEN env var)")
	fs.StringVar(&c.logLevel, "log-level", "info", "the log level (must match go.uber.org/zap log levels)")
	fs.StringVar(&c.roleARN, "assume-role", "", "role to assume before looking up caller identities")
	fs.String("config", "", "path to a config file containing NAME=value lines")
	c.tracing.AddFlags(fs)
	rootConfig.RegisterFlags(fs)

	return &ffcli.Command{
		Name:       "server",
		ShortUsage: "aws-arn server [flags]",
		ShortHelp:  "Run an aws-arn API server",
		FlagSet:    fs,
		// allow setting environment variables and a config file to
		// configure server settings
		Options: []ff.Option{
			ff.WithEnvVarPrefix("AWS_ARN"),
			ff.WithConfigFileFlag("config"),
			ff.WithConfigFileParser(config.EnvFileParser("AWS_ARN")),
		},
		Exec: c.Exec,
	}
}

// Exec function for this command.
func (c *ServerCommand) Exec(ctx context.Context, _ []string) error {
	zapCfg := zap.NewProductionConfig()
	if err := zapCfg.Level.UnmarshalText([]byte(c.logLevel)); err != nil {
		return err
	}
	logProd, err := zapCfg.Build()
	if err != nil {
		return errors.Wrap(err, "can't initialize zap logger")
	}
	log := logProd.Sugar().With("ver", version)
	defer func() {
		_ = log.Sync()
	}()

	// Simple authentication via the AWS_ARN_TOKEN env variable, falling
	// back to the token minted by `aws-arn configure`
	if c.token == "" {
		defaults, err := loadDefaults()
		if err != nil {
			return err
		}
		c.token = defaults.Token
	}
	if c.token == "" {
		return errors.New("AWS_ARN_TOKEN variable must be provided (or run `aws-arn configure` to generate one)")
	}

	rs, err := c.rootConfig.Ruleset()
	if err != nil {
		return err
	}
	fp, err := rs.Fingerprint()
	if err != nil {
		return err
	}
	log.With("rules", rs.Len(), "fingerprint", fmt.Sprintf("%016x", fp)).Info("loaded rule table")

	tracer, err := c.tracing.InitializeTracer(ctx)
	if err != nil {
		return err
	}

	creds := awscreds.New(log)
	creds.RoleARN = c.roleARN

	health := healthcheck.New()

	// Make a channel to listen for an interrupt or terminate signal from the OS.
	// Use a buffered channel because the signal package requires it.
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	apiConfig := server.APIConfig{
		Shutdown: shutdown,
		Log:      log,
		Tracer:   tracer,
		Token:    c.token,
		Builder:  arn.NewBuilder(rs, creds),
		Rules:    rs,
		Health:   health,
	}

	api := http.Server{
		Addr:         c.host,
		Handler:      server.API(&apiConfig),
		ReadTimeout:  c.readTimeout,
		WriteTimeout: c.writeTimeout,
	}

	// Make a channel to listen for errors coming from the listener. Use a
	// buffered channel so the goroutine can exit if we don't collect this error.
	serverErrors := make(chan error, 1)

	// Start the service listening for requests.
	go func() {
		log.With("host", api.Addr).Info("API listening")
		serverErrors <- api.ListenAndServe()
	}()

	health.Set(healthcheck.Ready)

	// Blocking main and waiting for shutdown.
	select {
	case err := <-serverErrors:
		return errors.Wrap(err, "server error")

	case sig := <-shutdown:
		log.With("signal", sig.String()).Info("starting shutdown")
		health.Set(healthcheck.Unavailable)

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), c.shutdownTimeout)
		defer cancel()

		// Asking listener to shutdown and load shed.
		if err := api.Shutdown(ctx); err != nil {
			log.With("err", err).Infof("graceful shutdown did not complete in %v", c.shutdownTimeout)
			return api.Close()
		}
	}

	return nil
}
