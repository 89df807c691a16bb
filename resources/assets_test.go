package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIconsLoad(t *testing.T) {
	for _, name := range []string{IconApp, IconRunning, IconPaused} {
		t.Run(name, func(t *testing.T) {
			resource, err := Icon(name)
			require.NoError(t, err)
			assert.Equal(t, iconDir+name, resource.Name())
			assert.Contains(t, string(resource.Content()), "<svg")
		})
	}
}

func TestIconCached(t *testing.T) {
	first := MustIcon(IconApp)
	second := MustIcon(IconApp)

	assert.Same(t, first, second)
}

func TestIconMissing(t *testing.T) {
	_, err := Icon("missing.svg")

	assert.Error(t, err)
	assert.Panics(t, func() { MustIcon("missing.svg") })
}

func TestTrayIcon(t *testing.T) {
	assert.Equal(t, iconDir+IconRunning, TrayIcon(true).Name())
	assert.Equal(t, iconDir+IconPaused, TrayIcon(false).Name())
}
