package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setConfigFile(t *testing.T, path string) {
	t.Helper()
	previous := configFile
	configFile = path
	t.Cleanup(func() {
		configFile = previous
	})
}

func setupBrokenConfigFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [invalid"), 0o644))
	return path
}

func setupValidConfigFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database:\n  host: localhost\n"), 0o644))
	return path
}

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		debugMode bool
		wantLevel slog.Level
	}{
		{
			name:      "debug mode enabled",
			debugMode: true,
			wantLevel: slog.LevelDebug,
		},
		{
			name:      "debug mode disabled",
			debugMode: false,
			wantLevel: slog.LevelInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupLogger(tt.debugMode)
			logger := slog.Default()
			assert.NotNil(t, logger)
			assert.Equal(t, tt.wantLevel <= slog.LevelDebug, logger.Enabled(nil, slog.LevelDebug))
		})
	}
}

func TestRegisterGlobalFlags(t *testing.T) {
	var debugMode bool
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	registerGlobalFlags(flags, &debugMode)

	assert.NotNil(t, flags.Lookup("config"))
	assert.NotNil(t, flags.Lookup("user"))
	assert.NotNil(t, flags.Lookup("debug"))
}

func TestNewStudyCommand(t *testing.T) {
	cmd := newStudyCommand()

	assert.Equal(t, "study [course id]", cmd.Use)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Flags().Lookup("new-limit"))
	assert.NotNil(t, cmd.Flags().Lookup("due-limit"))
}

func TestNewStudyCommand_RunE_InvalidCourseID(t *testing.T) {
	cmd := newStudyCommand()
	cmd.SetArgs([]string{"abc"})
	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid course id")
}

func TestNewStudyCommand_RunE_InvalidConfig(t *testing.T) {
	setConfigFile(t, setupBrokenConfigFile(t))

	cmd := newStudyCommand()
	cmd.SetArgs([]string{"1"})
	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "configuration")
}

func TestNewProgressCommand_RunE_InvalidConfig(t *testing.T) {
	setConfigFile(t, setupBrokenConfigFile(t))

	cmd := newProgressCommand()
	cmd.SetArgs([]string{"1"})
	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "configuration")
}

func TestNewStatsCommand_RunE_InvalidConfig(t *testing.T) {
	setConfigFile(t, setupBrokenConfigFile(t))

	cmd := newStatsCommand()
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "configuration")
}

func TestNewExportCommand(t *testing.T) {
	cmd := newExportCommand()

	assert.Equal(t, "export [course id]", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("include-answers"))
}

func TestNewMigrateCommand(t *testing.T) {
	cmd := newMigrateCommand()

	assert.Equal(t, "migrate", cmd.Use)
	assert.Equal(t, "Database schema and seed data commands", cmd.Short)
	assert.True(t, cmd.HasSubCommands())
}

func TestNewMigrateImportCommand_RunE_NoSeedFile(t *testing.T) {
	setConfigFile(t, setupValidConfigFile(t))

	cmd := newMigrateImportCommand()
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no seed file")
}
