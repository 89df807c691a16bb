package preferences

import (
	"fmt"
	"strconv"
	"strings"

	"focustimer/internal/core/model"
)

// ParseDraft reads the entry texts into a draft. Text that is not a number
// keeps the previous value; range limits are enforced when the draft is applied.
func ParseDraft(focusText, breakText string, previous model.Draft) model.Draft {
	draft := previous
	if minutes, ok := parseInt(focusText); ok {
		draft.FocusMinutes = minutes
	}
	if minutes, ok := parseInt(breakText); ok {
		draft.BreakMinutes = minutes
	}
	return draft
}

// ValidateMinutes reports entries outside the accepted range. The result is
// only a visual hint.
func ValidateMinutes(text string) error {
	minutes, ok := parseInt(text)
	if !ok {
		return fmt.Errorf("enter a number of minutes")
	}
	if minutes < model.MinMinutes || minutes > model.MaxMinutes {
		return fmt.Errorf("between %d and %d minutes", model.MinMinutes, model.MaxMinutes)
	}
	return nil
}

func parseInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, false
	}
	return parsed, true
}
