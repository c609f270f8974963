package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cmdContext carries settings shared by all subcommands.
type cmdContext struct {
	v      *viper.Viper
	logger *slog.Logger
}

func newRootCommand() *cobra.Command {
	ctx := &cmdContext{v: viper.New()}
	ctx.v.SetEnvPrefix("GRIDWALK")
	ctx.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	ctx.v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "gridwalk",
		Short: "Traverse cell grids along an axis",
		Long:  "gridwalk builds a wired grid from a YAML or JSON layout and walks it with a navigator, from the boundary against the chosen direction until no edge remains.",
		// SilenceUsage: runtime errors are not usage errors.
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseLevel(ctx.v.GetString("log-level"))
			if err != nil {
				return err
			}
			ctx.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	cmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
	_ = ctx.v.BindPFlag("log-level", cmd.PersistentFlags().Lookup("log-level"))

	cmd.AddCommand(newWalkCommand(ctx))
	cmd.AddCommand(newInspectCommand(ctx))

	return cmd
}

// bindFlags binds the running command's flags into viper. Subcommands share
// flag names, so binding happens per execution rather than at construction.
func (ctx *cmdContext) bindFlags(cmd *cobra.Command, _ []string) error {
	return ctx.v.BindPFlags(cmd.Flags())
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}
