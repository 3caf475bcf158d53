package main

import (
	"context"
	"fmt"

	"github.com/a-peyrard/greeting"
	"github.com/a-peyrard/greeting/config"
	"github.com/a-peyrard/greeting/logging"
	"github.com/a-peyrard/greeting/runner"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Version is overridden at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func newRootCmd() *cobra.Command {
	var (
		logger    zerolog.Logger
		logLevel  string
		noNewline bool
	)

	rootCmd := &cobra.Command{
		Use:           "greeting",
		Short:         "Print the greeting",
		Long:          `Prints "Hello world" to standard output.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				conf.LogLevel = logLevel
			}
			logger, err = logging.New(cmd.ErrOrStderr(), conf)
			return err
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := runner.WithSignalContext(cmd.Context())
			defer stop()

			return runner.RunAll(ctx, newPrintRunner(cmd, greeting.Default, noNewline, logger))
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error, disabled)")
	rootCmd.Flags().BoolVarP(&noNewline, "no-newline", "n", false, "do not print the trailing newline")

	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newPrintRunner(cmd *cobra.Command, provider greeting.Provider, noNewline bool, logger zerolog.Logger) runner.Runnable {
	return runner.RunnableFunc(func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		text := provider.Greeting()
		if !noNewline {
			text += "\n"
		}
		if _, err := fmt.Fprint(cmd.OutOrStdout(), text); err != nil {
			return fmt.Errorf("unable to write greeting: %w", err)
		}

		logger.Debug().Int("bytes", len(text)).Msg("greeting printed")
		return nil
	})
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of greeting",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "greeting version %s\n", Version)
		},
	}
}
