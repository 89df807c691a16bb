package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"focustimer/internal/core/model"
	"focustimer/internal/core/timekeeper"
	"focustimer/internal/observability"
)

// Controller is the set of intents the console forwards to the timer.
type Controller interface {
	Snapshot() timekeeper.Snapshot
	ToggleRun() timekeeper.Snapshot
	Reset() timekeeper.Snapshot
	OpenSettingsDraft() model.Draft
	ApplySettings(draft model.Draft) timekeeper.Snapshot
	SetNotificationMode(mode model.NotificationMode) timekeeper.Snapshot
}

// Console is a line-oriented presentation for headless use.
type Console struct {
	controller Controller
	logger     *slog.Logger
	mu         sync.Mutex
	out        io.Writer
}

const helpText = `commands:
  start | pause | toggle     start or pause the countdown
  reset                      restart the current session
  settings                   show the settings draft
  set <focus> <break>        apply durations in minutes (1-60)
  sound <none|bell>          choose the expiry cue
  status                     print the current state
  quit                       exit`

// New creates a Console writing to out.
func New(controller Controller, out io.Writer, logger *slog.Logger) *Console {
	return &Console{
		controller: controller,
		logger:     observability.WithComponent(logger, "console"),
		out:        out,
	}
}

// Render formats a snapshot as a single status line.
func Render(snapshot timekeeper.Snapshot) string {
	status := "paused"
	if snapshot.Running {
		status = "running"
	}
	return fmt.Sprintf("[%s Mode] %s %s | focus %dm break %dm | sound %s",
		snapshot.Kind.Title(),
		snapshot.Clock(),
		status,
		snapshot.Durations.FocusMinutes,
		snapshot.Durations.BreakMinutes,
		snapshot.Notification.Title(),
	)
}

// Run reads commands from in until quit, end of input or ctx is done.
func (console *Console) Run(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	console.println(Render(console.controller.Snapshot()))
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					if err != nil {
						return fmt.Errorf("read commands: %w", err)
					}
				default:
				}
				return nil
			}
			if console.Execute(line) {
				return nil
			}
		}
	}
}

// Watch renders timer events until ctx is done or the channel closes.
func (console *Console) Watch(ctx context.Context, events <-chan timekeeper.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			console.renderEvent(event)
		}
	}
}

// Execute runs one command line and reports whether the console should exit.
func (console *Console) Execute(line string) bool {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case "start", "play":
		if console.controller.Snapshot().Running {
			console.println("already running")
			return false
		}
		console.println(Render(console.controller.ToggleRun()))
	case "pause", "stop":
		if !console.controller.Snapshot().Running {
			console.println("already paused")
			return false
		}
		console.println(Render(console.controller.ToggleRun()))
	case "toggle", "t":
		console.println(Render(console.controller.ToggleRun()))
	case "reset", "r":
		console.println(Render(console.controller.Reset()))
	case "settings":
		draft := console.controller.OpenSettingsDraft()
		console.println(fmt.Sprintf("draft: focus %dm break %dm (apply with: set <focus> <break>)", draft.FocusMinutes, draft.BreakMinutes))
	case "set":
		draft, err := parseDraft(fields[1:], console.controller.OpenSettingsDraft())
		if err != nil {
			console.println(err.Error())
			return false
		}
		console.println(Render(console.controller.ApplySettings(draft)))
	case "sound":
		if len(fields) != 2 {
			console.println("usage: sound <none|bell>")
			return false
		}
		mode := model.ParseNotificationMode(fields[1])
		if string(mode) != fields[1] {
			console.logger.Warn("unknown sound, using none", "sound", fields[1])
		}
		console.println(Render(console.controller.SetNotificationMode(mode)))
	case "status", "s":
		console.println(Render(console.controller.Snapshot()))
	case "help", "h", "?":
		console.println(helpText)
	case "quit", "q", "exit":
		return true
	default:
		console.println(fmt.Sprintf("unknown command %q, type help", fields[0]))
	}
	return false
}

func parseDraft(args []string, draft model.Draft) (model.Draft, error) {
	if len(args) == 0 || len(args) > 2 {
		return draft, fmt.Errorf("usage: set <focus-minutes> [break-minutes]")
	}
	focus, err := strconv.Atoi(args[0])
	if err != nil {
		return draft, fmt.Errorf("focus minutes %q is not a number", args[0])
	}
	draft.FocusMinutes = focus
	if len(args) == 2 {
		breakMinutes, err := strconv.Atoi(args[1])
		if err != nil {
			return draft, fmt.Errorf("break minutes %q is not a number", args[1])
		}
		draft.BreakMinutes = breakMinutes
	}
	return draft, nil
}

func (console *Console) renderEvent(event timekeeper.Event) {
	switch event.Type {
	case timekeeper.EventExpired:
		console.println(fmt.Sprintf("%s session finished", event.PreviousKind.Title()))
		console.println(Render(event.Snapshot))
	case timekeeper.EventProgress:
		console.print("\r" + Render(event.Snapshot))
	}
}

func (console *Console) println(line string) {
	console.print(line + "\n")
}

func (console *Console) print(text string) {
	console.mu.Lock()
	defer console.mu.Unlock()
	_, _ = io.WriteString(console.out, text)
}
