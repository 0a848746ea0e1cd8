package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateYAMLSyntaxFromBytes(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		data    string
		wantErr bool
	}{
		"valid yaml":   {"host: localhost\nport: 11434\n", false},
		"empty file":   {"", false},
		"only spaces":  {"   \n\t\n", false},
		"broken flow":  {"port: [1, 2\n", true},
		"tab indented": {"host:\n\tvalue\n", true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			err := ValidateYAMLSyntaxFromBytes([]byte(tc.data), "test.yml")
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateYAMLSyntaxReportsLine(t *testing.T) {
	t.Parallel()

	err := ValidateYAMLSyntaxFromBytes([]byte("host: ok\nport: [unclosed\n"), "cfg.yml")
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "cfg.yml", vErr.FilePath)
	assert.Positive(t, vErr.Line)
	assert.Contains(t, vErr.Error(), "cfg.yml:")
}

func TestValidateYAMLSyntaxMissingFileIsFine(t *testing.T) {
	t.Parallel()
	assert.NoError(t, ValidateYAMLSyntax("/nonexistent/path/config.yml"))
}

func TestValidateConfigValues(t *testing.T) {
	t.Parallel()

	valid := Configuration{Host: "localhost", Port: 11434, LogLevel: "info"}
	assert.NoError(t, ValidateConfigValues(&valid, "config"))

	tests := map[string]struct {
		mutate   func(*Configuration)
		field    string
		errorHas string
	}{
		"missing host": {
			mutate:   func(c *Configuration) { c.Host = "" },
			field:    "host",
			errorHas: "is required",
		},
		"port too large": {
			mutate:   func(c *Configuration) { c.Port = 70000 },
			field:    "port",
			errorHas: "must be at most 65535",
		},
		"port too small": {
			mutate:   func(c *Configuration) { c.Port = 0 },
			field:    "port",
			errorHas: "must be at least 1",
		},
		"negative diff cap": {
			mutate:   func(c *Configuration) { c.MaxDiffBytes = -1 },
			field:    "max_diff_bytes",
			errorHas: "must be at least 0",
		},
		"unknown log level": {
			mutate:   func(c *Configuration) { c.LogLevel = "verbose" },
			field:    "log_level",
			errorHas: "must be one of",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			cfg := valid
			tc.mutate(&cfg)

			err := ValidateConfigValues(&cfg, "config")
			require.Error(t, err)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.field, vErr.Field)
			assert.Contains(t, vErr.Message, tc.errorHas)
		})
	}
}
