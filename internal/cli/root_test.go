package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd_RegistersCommands(t *testing.T) {
	root := NewRootCmd(&App{})

	want := []string{
		"recipe", "schedule", "plans", "update", "complete", "remove",
		"clear", "week", "view", "plan-stats", "summary", "free-slots",
	}
	names := make(map[string]bool)
	for _, cmd := range root.Commands() {
		names[cmd.Name()] = true
	}
	for _, name := range want {
		assert.True(t, names[name], "command %s not registered", name)
	}

	require.True(t, root.SilenceUsage)
	require.True(t, root.SilenceErrors)
}
