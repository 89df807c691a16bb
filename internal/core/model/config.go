package model

import (
	"fmt"
	"strings"
)

// Duration bounds, in minutes, accepted for either session kind.
const (
	MinMinutes = 1
	MaxMinutes = 60
)

const (
	DefaultFocusMinutes = 25
	DefaultBreakMinutes = 5
)

// SessionKind identifies the type of the current session.
type SessionKind string

const (
	KindFocus SessionKind = "focus"
	KindBreak SessionKind = "break"
)

// Next returns the kind that follows k. Focus and Break alternate.
func (k SessionKind) Next() SessionKind {
	if k == KindBreak {
		return KindFocus
	}
	return KindBreak
}

// Title returns the human readable name of the kind.
func (k SessionKind) Title() string {
	if k == KindBreak {
		return "Break"
	}
	return "Focus"
}

// NotificationMode selects the cue played when a session expires.
type NotificationMode string

const (
	NotifyNone NotificationMode = "none"
	NotifyBell NotificationMode = "bell"
)

// NotificationModes lists the modes in presentation order.
var NotificationModes = []NotificationMode{NotifyNone, NotifyBell}

// Valid reports whether mode is a known value.
func (mode NotificationMode) Valid() bool {
	for _, known := range NotificationModes {
		if mode == known {
			return true
		}
	}
	return false
}

// Normalize maps unknown modes to NotifyNone.
func (mode NotificationMode) Normalize() NotificationMode {
	if mode.Valid() {
		return mode
	}
	return NotifyNone
}

// Title returns the label shown in selectors.
func (mode NotificationMode) Title() string {
	switch mode.Normalize() {
	case NotifyBell:
		return "Bell"
	default:
		return "None"
	}
}

// ParseNotificationMode reads a mode from user text. Unknown input is NotifyNone.
func ParseNotificationMode(value string) NotificationMode {
	return NotificationMode(strings.ToLower(strings.TrimSpace(value))).Normalize()
}

// Durations is the committed session length configuration.
type Durations struct {
	FocusMinutes int
	BreakMinutes int
}

// DefaultDurations returns the 25/5 split.
func DefaultDurations() Durations {
	return Durations{
		FocusMinutes: DefaultFocusMinutes,
		BreakMinutes: DefaultBreakMinutes,
	}
}

// Minutes returns the configured length of kind.
func (d Durations) Minutes(kind SessionKind) int {
	if kind == KindBreak {
		return d.BreakMinutes
	}
	return d.FocusMinutes
}

// Seconds returns the configured length of kind in seconds.
func (d Durations) Seconds(kind SessionKind) int {
	return d.Minutes(kind) * 60
}

// Clamped returns d with both values forced into [MinMinutes, MaxMinutes].
func (d Durations) Clamped() Durations {
	return Durations{
		FocusMinutes: ClampMinutes(d.FocusMinutes),
		BreakMinutes: ClampMinutes(d.BreakMinutes),
	}
}

func (d Durations) String() string {
	return fmt.Sprintf("focus=%dm break=%dm", d.FocusMinutes, d.BreakMinutes)
}

// ClampMinutes forces minutes into [MinMinutes, MaxMinutes].
func ClampMinutes(minutes int) int {
	if minutes < MinMinutes {
		return MinMinutes
	}
	if minutes > MaxMinutes {
		return MaxMinutes
	}
	return minutes
}

// Draft holds uncommitted duration edits owned by the presentation layer.
type Draft struct {
	FocusMinutes int
	BreakMinutes int
}

// DraftFrom seeds a draft with committed durations.
func DraftFrom(d Durations) Draft {
	return Draft{FocusMinutes: d.FocusMinutes, BreakMinutes: d.BreakMinutes}
}

// Durations converts the draft into clamped durations ready to commit.
func (draft Draft) Durations() Durations {
	return Durations{
		FocusMinutes: draft.FocusMinutes,
		BreakMinutes: draft.BreakMinutes,
	}.Clamped()
}

// TimeKeeperConfig contains the initial settings of the session timer.
type TimeKeeperConfig struct {
	Durations    Durations
	Notification NotificationMode
}

// DefaultTimeKeeperConfig returns 25/5 minute sessions with no cue.
func DefaultTimeKeeperConfig() TimeKeeperConfig {
	return TimeKeeperConfig{
		Durations:    DefaultDurations(),
		Notification: NotifyNone,
	}
}

// Normalized clamps durations and maps unknown notification modes to none.
func (config TimeKeeperConfig) Normalized() TimeKeeperConfig {
	return TimeKeeperConfig{
		Durations:    config.Durations.Clamped(),
		Notification: config.Notification.Normalize(),
	}
}
