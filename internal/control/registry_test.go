package control_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rohmanhakim/crawlkit/internal/control"
)

func TestRegistry_PauseResumeShutdown_RouteToRegisteredHandle(t *testing.T) {
	seed := "https://registry-test.example.com"
	h := control.NewHandle(seed)
	h.MarkRunning()
	control.Register(h)
	defer control.Unregister(seed)

	assert.True(t, control.Pause(seed))
	assert.Equal(t, control.StatePaused, h.State())

	assert.True(t, control.Resume(seed))
	assert.Equal(t, control.StateRunning, h.State())

	assert.True(t, control.Shutdown(seed))
	assert.True(t, h.ShuttingDown())
}

func TestRegistry_UnknownSeed_ReturnsFalse(t *testing.T) {
	assert.False(t, control.Pause("https://never-registered.example.com"))
	assert.False(t, control.Resume("https://never-registered.example.com"))
	assert.False(t, control.Shutdown("https://never-registered.example.com"))
}

func TestRegistry_Lookup_FindsRegisteredHandle(t *testing.T) {
	seed := "https://lookup-test.example.com"
	h := control.NewHandle(seed)
	control.Register(h)
	defer control.Unregister(seed)

	got, ok := control.Lookup(seed)
	assert.True(t, ok)
	assert.Same(t, h, got)
}

func TestRegistry_Unregister_RemovesHandle(t *testing.T) {
	seed := "https://unregister-test.example.com"
	control.Register(control.NewHandle(seed))
	control.Unregister(seed)

	_, ok := control.Lookup(seed)
	assert.False(t, ok)
}
