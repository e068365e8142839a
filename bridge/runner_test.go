package bridge

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/otp"
)

func TestResolveOptions(t *testing.T) {
	dir := t.TempDir()
	yamlURL := filepath.Join(dir, "broker.yaml")
	require.NoError(t, os.WriteFile(yamlURL, []byte("policy: supersede\nlistenTimeout: 5m\nloggerName: sms\neventBuffer: 16\n"), 0o644))
	jsonURL := filepath.Join(dir, "broker.json")
	require.NoError(t, os.WriteFile(jsonURL, []byte(`{"policy":"reject","resultTTL":"10m"}`), 0o644))

	testCases := []struct {
		description string
		args        []string
		expect      *otp.Options
		expectErr   bool
	}{
		{
			description: "flags only",
			args:        []string{"-p", "supersede", "-t", "1m"},
			expect:      &otp.Options{Policy: "supersede", ListenTimeout: "1m"},
		},
		{
			description: "yaml config",
			args:        []string{"-c", yamlURL},
			expect:      &otp.Options{Policy: "supersede", ListenTimeout: "5m", LoggerName: "sms", EventBuffer: 16},
		},
		{
			description: "flags override json config",
			args:        []string{"--config", jsonURL, "--log-level", "debug", "--result-ttl", "1h"},
			expect:      &otp.Options{Policy: "reject", ResultTTL: "1h", LogLevel: "debug"},
		},
		{
			description: "missing config",
			args:        []string{"-c", filepath.Join(dir, "missing.yaml")},
			expectErr:   true,
		},
	}
	for _, testCase := range testCases {
		options := &Options{}
		_, err := flags.ParseArgs(options, testCase.args)
		require.NoError(t, err, testCase.description)
		actual, err := resolveOptions(context.Background(), afs.New(), options)
		if testCase.expectErr {
			assert.Error(t, err, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestParseArgs_InvalidChoice(t *testing.T) {
	options := &Options{}
	_, err := flags.ParseArgs(options, []string{"--policy", "queue"})
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
	logger, err = newLogger("debug")
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
	_, err = newLogger("loud")
	assert.Error(t, err)
}
