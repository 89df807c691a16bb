package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"focustimer/internal/config"
	"focustimer/internal/core/timekeeper"
	"focustimer/internal/notify"
	"focustimer/internal/ui/console"
)

func runHeadless(ctx context.Context, keeper *timekeeper.TimeKeeper, logger *slog.Logger, in io.Reader, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	term := console.New(keeper, out, logger)
	go term.Watch(ctx, keeper.Subscribe(8, timekeeper.EventProgress, timekeeper.EventExpired))

	cue := notify.Multi{
		notify.NewTerminalBell(out),
		notify.NewDBusNotifier(config.AppName),
	}
	dispatcher := notify.NewDispatcher(cue, logger, 5*time.Second)
	dispatcher.Start(ctx, keeper.Subscribe(4, timekeeper.EventExpired))

	err := term.Run(ctx, in)
	cancel()
	dispatcher.Wait()
	return err
}
