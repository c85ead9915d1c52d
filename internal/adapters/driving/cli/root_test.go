package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "linecull", rootCmd.Use)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	commands := rootCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "clean")
	assert.Contains(t, commandNames, "restore")
	assert.Contains(t, commandNames, "history")
	assert.Contains(t, commandNames, "settings")
	assert.Contains(t, commandNames, "version")
}

func TestSetServices(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	assert.NotNil(t, cleanService)
	assert.NotNil(t, restoreService)
	assert.NotNil(t, historyService)
	assert.NotNil(t, settingsService)
}

func TestSetServices_NilIsIgnored(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	SetServices(nil)

	assert.NotNil(t, cleanService)
}

func TestSetVersion(t *testing.T) {
	originalVersion := version
	defer func() { version = originalVersion }()

	SetVersion("1.2.3")
	assert.Equal(t, "1.2.3", version)

	// Empty strings keep the current value.
	SetVersion("")
	assert.Equal(t, "1.2.3", version)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "lowercase y", input: "y\n", want: true},
		{name: "yes", input: "yes\n", want: true},
		{name: "uppercase Y", input: "Y\n", want: true},
		{name: "n", input: "n\n", want: false},
		{name: "no", input: "no\n", want: false},
		{name: "empty answer", input: "\n", want: false},
		{name: "anything else", input: "sure\n", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			rootCmd.SetOut(buf)
			rootCmd.SetIn(strings.NewReader(tt.input))
			defer rootCmd.SetIn(nil)

			got, err := confirm(rootCmd, "Proceed?")

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, buf.String(), "Proceed? [y/N]:")
		})
	}
}

func TestConfirm_EOFIsNo(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetIn(strings.NewReader(""))
	defer rootCmd.SetIn(nil)

	got, err := confirm(rootCmd, "Proceed?")

	require.NoError(t, err)
	assert.False(t, got)
}
