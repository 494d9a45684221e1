package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/vita"
)

// app holds the state shared by every subcommand
type app struct {
	configPath string
	verbose    bool
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "vita",
		Short:         "Render resumes and score their screener compatibility",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logLevel := slog.LevelInfo
			if a.verbose {
				logLevel = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: logLevel}))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", os.Getenv("VITA_CONFIG"), "YAML layout configuration (default $VITA_CONFIG)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(renderCmd(a), scoreCmd(a), transcriptCmd(a), planCmd(a))
	return root
}

// builder loads the profile at path with the global options applied
func (a *app) builder(path string) *vita.Builder {
	b := vita.Load(path).Logger(a.logger)
	if a.configPath != "" {
		b = b.ConfigFile(a.configPath)
	}
	return b
}
