package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDefaultsToHelp(t *testing.T) {
	parsed, err := Parse(nil)
	require.NoError(t, err)
	require.True(t, parsed.ShowHelp)
	require.Equal(t, CommandHelp, parsed.Command)
}

func TestParseCommandWithConfig(t *testing.T) {
	parsed, err := Parse([]string{"--config", "/tmp/parley.yaml", "doctor"})
	require.NoError(t, err)
	require.Equal(t, CommandDoctor, parsed.Command)
	require.Equal(t, "/tmp/parley.yaml", parsed.ConfigPath)
	require.False(t, parsed.ShowHelp)
}

func TestParseSayCollectsUtterance(t *testing.T) {
	parsed, err := Parse([]string{"say", "what", "time", "is", "it"})
	require.NoError(t, err)
	require.Equal(t, CommandSay, parsed.Command)
	require.Equal(t, "what time is it", parsed.Utterance)
}

func TestParseArgMatrix(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantErr  string
		wantCmd  Command
		wantHelp bool
	}{
		{
			name:     "help short flag",
			args:     []string{"-h"},
			wantCmd:  CommandHelp,
			wantHelp: true,
		},
		{
			name:     "help long flag",
			args:     []string{"--help"},
			wantCmd:  CommandHelp,
			wantHelp: true,
		},
		{
			name:    "version flag",
			args:    []string{"--version"},
			wantCmd: CommandVersion,
		},
		{
			name:    "run command",
			args:    []string{"run"},
			wantCmd: CommandRun,
		},
		{
			name:    "status command",
			args:    []string{"status"},
			wantCmd: CommandStatus,
		},
		{
			name:    "stop command",
			args:    []string{"stop"},
			wantCmd: CommandStop,
		},
		{
			name:    "unknown command",
			args:    []string{"dance"},
			wantErr: "unknown command",
		},
		{
			name:    "unknown flag",
			args:    []string{"--verbose"},
			wantErr: "unknown flag",
		},
		{
			name:    "missing config path",
			args:    []string{"--config"},
			wantErr: "requires a path",
		},
		{
			name:    "trailing arguments",
			args:    []string{"status", "extra"},
			wantErr: "unexpected arguments",
		},
		{
			name:    "say without utterance",
			args:    []string{"say"},
			wantErr: "requires an utterance",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := Parse(tc.args)
			if tc.wantErr != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantCmd, parsed.Command)
			require.Equal(t, tc.wantHelp, parsed.ShowHelp)
		})
	}
}

func TestHelpTextNamesBinary(t *testing.T) {
	text := HelpText("parley")
	require.Contains(t, text, "parley [--config PATH] <command>")
	require.Contains(t, text, "doctor")
	require.Contains(t, text, "say TEXT")
}
