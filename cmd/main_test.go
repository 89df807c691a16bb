package main

import (
	"testing"
	"time"

	"focustimer/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandFlagsOverrideConfig(t *testing.T) {
	cfg := config.Config{LogLevel: "info", LogFormat: "text", TickInterval: time.Second, FocusMinutes: 40}
	cmd := newRootCommand(&cfg)

	require.NoError(t, cmd.ParseFlags([]string{"--break", "10", "--sound", "bell", "--headless", "--tick", "500ms"}))

	assert.Equal(t, 40, cfg.FocusMinutes)
	assert.Equal(t, 10, cfg.BreakMinutes)
	assert.Equal(t, "bell", cfg.Notification)
	assert.True(t, cfg.Headless)
	assert.Equal(t, 500*time.Millisecond, cfg.TickInterval)
}

func TestRootCommandRejectsArgs(t *testing.T) {
	cfg := config.Config{}
	cmd := newRootCommand(&cfg)

	assert.Error(t, cmd.Args(cmd, []string{"extra"}))
}
