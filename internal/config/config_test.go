package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"OMDB_BASE_URL", "OMDB_API_KEY", "OMDB_TIMEOUT", "OMDB_RESULTS_PATH",
		"OMDB_EXCEL_PATH", "OMDB_SLOW_THRESHOLD", "OMDB_VERBOSE",
	} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaultsFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("OMDB_API_KEY", "abc123")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "abc123", cfg.APIKey)
	assert.Equal(t, defaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, 2*time.Second, cfg.SlowThreshold)
	assert.Equal(t, "omdb_test_results.json", cfg.ResultsPath)
	assert.Empty(t, cfg.ExcelPath)
	assert.False(t, cfg.Verbose)
}

func TestLoadJSONFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "config.json", `{
		"base_url": "http://localhost:9100/",
		"api_key": "file-key",
		"timeout": "3s",
		"excel_path": "report.xlsx",
		"verbose": true
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9100/", cfg.BaseURL)
	assert.Equal(t, "file-key", cfg.APIKey)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, "report.xlsx", cfg.ExcelPath)
	assert.True(t, cfg.Verbose)
}

func TestLoadYAMLFileWithEnvOverride(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "config.yaml", "api_key: file-key\nslow_threshold: 500ms\nresults_path: out.json\n")
	t.Setenv("OMDB_API_KEY", "env-key")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, 500*time.Millisecond, cfg.SlowThreshold)
	assert.Equal(t, "out.json", cfg.ResultsPath)
}

func TestLoadShippedExamples(t *testing.T) {
	for _, name := range []string{"config.example.json", "config.example.yaml"} {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			cfg, err := Load(filepath.Join("..", "..", name))
			require.NoError(t, err)
			assert.Equal(t, "your-key-here", cfg.APIKey)
			assert.Equal(t, 10*time.Second, cfg.Timeout)
			assert.Equal(t, "omdb_test_results.xlsx", cfg.ExcelPath)
		})
	}
}

func TestLoadVerboseFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("OMDB_API_KEY", "k")
	t.Setenv("OMDB_VERBOSE", "true")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T) string
		wantErr string
	}{
		{
			name:    "missing api key",
			setup:   func(t *testing.T) string { return "" },
			wantErr: "set OMDB_API_KEY or pass -config",
		},
		{
			name: "bad verbose flag",
			setup: func(t *testing.T) string {
				t.Setenv("OMDB_API_KEY", "k")
				t.Setenv("OMDB_VERBOSE", "loud")
				return ""
			},
			wantErr: "OMDB_VERBOSE",
		},
		{
			name: "explicit file missing",
			setup: func(t *testing.T) string {
				t.Setenv("OMDB_API_KEY", "k")
				return filepath.Join(t.TempDir(), "nope.json")
			},
			wantErr: "read config",
		},
		{
			name: "broken json",
			setup: func(t *testing.T) string {
				return writeConfig(t, "config.json", "{not json")
			},
			wantErr: "parse config",
		},
		{
			name: "unsupported extension",
			setup: func(t *testing.T) string {
				return writeConfig(t, "config.toml", "api_key = 'k'")
			},
			wantErr: "unsupported config format",
		},
		{
			name: "bad timeout",
			setup: func(t *testing.T) string {
				t.Setenv("OMDB_API_KEY", "k")
				t.Setenv("OMDB_TIMEOUT", "soon")
				return ""
			},
			wantErr: "timeout",
		},
		{
			name: "negative slow threshold",
			setup: func(t *testing.T) string {
				t.Setenv("OMDB_API_KEY", "k")
				t.Setenv("OMDB_SLOW_THRESHOLD", "-1s")
				return ""
			},
			wantErr: "slow_threshold",
		},
		{
			name: "relative base url",
			setup: func(t *testing.T) string {
				t.Setenv("OMDB_API_KEY", "k")
				t.Setenv("OMDB_BASE_URL", "omdbapi.com")
				return ""
			},
			wantErr: "base_url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			path := tt.setup(t)
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
