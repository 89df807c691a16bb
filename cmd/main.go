package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"focustimer/internal/config"
	"focustimer/internal/core/timekeeper"
	"focustimer/internal/observability"
	"focustimer/internal/platform"

	"github.com/spf13/cobra"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		config.Exitf("focustimer: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand(&cfg).ExecuteContext(ctx); err != nil {
		stop()
		config.Exitf("focustimer: %v", err)
	}
}

func newRootCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "focustimer",
		Short: "focustimer is a focus/break interval timer",
		Long: `focustimer counts down a focus session, then a break, then focus again.
Durations and the expiry sound can be changed while it runs; settings given
here or in the settings file only seed the initial state.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), *cfg, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.SettingsPath, "config", cfg.SettingsPath, "settings YAML file (default <user config dir>/FocusTimer/settings.yaml)")
	flags.IntVar(&cfg.FocusMinutes, "focus", cfg.FocusMinutes, "focus session length in minutes, 1-60")
	flags.IntVar(&cfg.BreakMinutes, "break", cfg.BreakMinutes, "break session length in minutes, 1-60")
	flags.StringVar(&cfg.Notification, "sound", cfg.Notification, "expiry cue: none or bell")
	flags.BoolVar(&cfg.Headless, "headless", cfg.Headless, "run in the terminal instead of opening a window")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	flags.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "text or json")
	flags.DurationVar(&cfg.TickInterval, "tick", cfg.TickInterval, "countdown tick interval")

	return cmd
}

func run(ctx context.Context, cfg config.Config, in io.Reader, out, errOut io.Writer) error {
	logger, err := observability.NewLogger(errOut, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	guard, err := platform.AcquireSingleInstance(config.AppName)
	if err != nil {
		return fmt.Errorf("single instance: %w", err)
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, err := cfg.TimeKeeperConfig()
	if err != nil {
		logger.Warn("settings file ignored", "error", err)
	}

	keeper := timekeeper.New(settings, timekeeper.Config{
		TickInterval: cfg.TickInterval,
		Logger:       logger,
	})
	defer keeper.Close()

	logger.Info("timer ready",
		"durations", settings.Durations.String(),
		"notification", settings.Notification,
		"headless", cfg.Headless,
	)

	if cfg.Headless {
		return runHeadless(ctx, keeper, logger, in, out)
	}
	return runGUI(ctx, keeper, logger)
}
