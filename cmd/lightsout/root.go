package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// envLogLevel is consulted when --log-level is not given.
const envLogLevel = "LIGHTSOUT_LOG_LEVEL"

// app is the state shared by every subcommand of one invocation.
type app struct {
	logLevel string
	runID    string
	logger   *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "lightsout",
		Short:         "Build amplitude-amplification circuits for Lights Out puzzles",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "",
		"debug, info, warn or error (default $"+envLogLevel+" or warn)")

	root.AddCommand(newBuildCmd(a), newMatrixCmd(a), newSolveCmd(a))

	return root
}

// setup resolves the log level and tags the logger with a fresh run id.
func (a *app) setup(w io.Writer) error {
	raw := a.logLevel
	if raw == "" {
		raw = os.Getenv(envLogLevel)
	}
	level, err := parseLevel(raw)
	if err != nil {
		return err
	}
	a.runID = uuid.NewString()
	a.logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})).
		With(slog.String("run_id", a.runID))

	return nil
}

func parseLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", raw)
	}
}
