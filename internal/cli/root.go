package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/emailcheck/pkg/config"
	"github.com/dmitrymomot/emailcheck/pkg/logger"
)

const serviceName = "emailcheck"

// Exit codes.
const (
	exitOK      = 0
	exitInvalid = 1
	exitError   = 2
)

type inputKey struct{}

type app struct {
	cfg    Config
	output OutputFormat
	log    *slog.Logger
}

// Execute runs the command line and exits the process with its status.
func Execute() {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitError)
	}

	cmd := newRootCmd(cfg)
	os.Exit(exitCode(cmd.ExecuteContext(context.Background())))
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, ErrInvalidAddresses):
		return exitInvalid
	default:
		return exitError
	}
}

func newRootCmd(cfg Config) *cobra.Command {
	a := &app{cfg: cfg}

	cmd := &cobra.Command{
		Use:          serviceName,
		Short:        "Check email address syntax, domains and lists",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.cfg.Output, "output", "o", cfg.Output, "report format: text, json or yaml")
	flags.StringVar(&a.cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	flags.StringVar(&a.cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text or json")

	cmd.AddCommand(a.checkCmd(), a.domainCmd(), a.filterCmd())
	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	output, err := ParseOutputFormat(a.cfg.Output)
	if err != nil {
		return err
	}
	level, err := logger.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return err
	}
	format, err := logger.ParseFormat(a.cfg.LogFormat)
	if err != nil {
		return err
	}

	a.output = output
	a.log = logger.New(
		logger.WithEnvironment(a.cfg.Env, serviceName),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithAttr(logger.RunID(uuid.NewString())),
		logger.WithContextValue("input", inputKey{}),
	)
	return nil
}
