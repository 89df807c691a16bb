package notify

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// TerminalBell rings the terminal bell and prints the cue.
type TerminalBell struct {
	mu  sync.Mutex
	out io.Writer
}

// NewTerminalBell writes cues to out.
func NewTerminalBell(out io.Writer) *TerminalBell {
	return &TerminalBell{out: out}
}

func (bell *TerminalBell) Notify(_ context.Context, cue Cue) error {
	bell.mu.Lock()
	defer bell.mu.Unlock()
	if _, err := fmt.Fprintf(bell.out, "\a%s. %s\n", cue.Summary(), cue.Body()); err != nil {
		return fmt.Errorf("ring terminal bell: %w", err)
	}
	return nil
}
