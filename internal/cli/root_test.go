package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Help(t *testing.T) {
	rootCmd.SetArgs([]string{"--help"})
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)

	require.NoError(t, rootCmd.Execute())

	output := buf.String()
	assert.Contains(t, output, "organizer")
	assert.Contains(t, output, "run")
	assert.Contains(t, output, "categories")
}

func TestRootCommand_InvalidCommand(t *testing.T) {
	rootCmd.SetArgs([]string{"no-such-command"})
	var buf bytes.Buffer
	rootCmd.SetErr(&buf)

	assert.Error(t, rootCmd.Execute())
}

func TestSetVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    string
	}{
		{name: "normal version", version: "1.2.3", want: "1.2.3"},
		{name: "empty version keeps previous", version: "", want: "1.2.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetVersion(tt.version)
			assert.Equal(t, tt.want, rootCmd.Version)
		})
	}
}
