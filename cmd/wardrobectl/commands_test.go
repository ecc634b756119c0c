package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"migrate", "seed", "remind"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestMigrateCmd_RejectsUnknownCommand(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"migrate", "sideways"})
	root.SetOut(&bytes.Buffer{})
	assert.Error(t, root.Execute())
}

func TestRemindCmd_ArgCount(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"remind"})
	root.SetOut(&bytes.Buffer{})
	assert.Error(t, root.Execute())

	root = newRootCmd()
	root.SetArgs([]string{"remind", "alice", "2025-01-06", "extra"})
	root.SetOut(&bytes.Buffer{})
	assert.Error(t, root.Execute())
}

func TestPrintMessage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printMessage(&buf, "Daily outfit reminder - 2025/01/06", "1. Blue top\n"))
	assert.Equal(t, "Subject: Daily outfit reminder - 2025/01/06\n\n1. Blue top\n", buf.String())
}
