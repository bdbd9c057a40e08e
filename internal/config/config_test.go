package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"breachcheck/internal/config"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DEHASHED_API_KEY", "secret")

	cfg, err := config.Load(writeConfig(t, "environment: production\n"))
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "secret", cfg.Provider.APIKey)
	require.Equal(t, "https://api.dehashed.com", cfg.Provider.BaseURL)
	require.Equal(t, 20*time.Second, cfg.Provider.Timeout)
	require.Equal(t, 100, cfg.Provider.PageSize)
	require.Equal(t, 10, cfg.Verification.RateLimit)
	require.Equal(t, time.Minute, cfg.Verification.RateWindow)
	require.Equal(t, 10*time.Minute, cfg.Verification.CacheTTL)
	require.Equal(t, uint(10), cfg.Verification.HistoryLimit)
	require.Equal(t, 5, cfg.Verification.PauseEvery)
	require.Equal(t, 100*time.Millisecond, cfg.Verification.Pause)
	require.Equal(t, 30*time.Second, cfg.HTTP.RequestTimeout)
	require.Equal(t, 1900*time.Millisecond, cfg.PauseBudget())
	require.GreaterOrEqual(t, cfg.HTTP.RequestTimeout, cfg.Provider.Timeout+cfg.PauseBudget())
	require.Equal(t, 15*time.Minute, cfg.Worker.StaleAfter)
	require.Equal(t, "breachcheck", cfg.Database.DatabaseName)
	require.Empty(t, cfg.Redis.URL)
}

func TestLoad_FileValues(t *testing.T) {
	t.Setenv("DEHASHED_API_KEY", "from-env")

	cfg, err := config.Load(writeConfig(t, `
provider:
  baseUrl: http://localhost:9999
verification:
  rateLimit: 3
  cacheTtl: 1m
redis:
  url: redis://localhost:6379/2
`))
	require.NoError(t, err)

	require.Equal(t, "http://localhost:9999", cfg.Provider.BaseURL)
	require.Equal(t, 3, cfg.Verification.RateLimit)
	require.Equal(t, time.Minute, cfg.Verification.CacheTTL)
	require.Equal(t, "redis://localhost:6379/2", cfg.Redis.URL)
}

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("DEHASHED_API_KEY", "")
	require.NoError(t, os.Unsetenv("DEHASHED_API_KEY"))

	// commands that never call the provider still load
	cfg, err := config.Load(writeConfig(t, "environment: development\n"))
	require.NoError(t, err)
	require.Error(t, cfg.ValidateProvider())

	cfg.Provider.APIKey = "secret"
	require.NoError(t, cfg.ValidateProvider())
}

func TestLoad_RequestTimeoutBudget(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
		wantErr bool
	}{
		{
			name:    "shorter than provider timeout",
			content: "http:\n  requestTimeout: 10s\nprovider:\n  timeout: 20s\n",
			wantErr: true,
		},
		{
			name:    "pacing exceeds the remaining time",
			content: "http:\n  requestTimeout: 30s\nverification:\n  pause: 1s\n",
			wantErr: true,
		},
		{
			name:    "pacing fits",
			content: "http:\n  requestTimeout: 40s\nverification:\n  pause: 1s\n",
		},
		{
			// zero values fall back to defaults in files, so they are set through env
			name:    "pacing disabled",
			content: "http:\n  requestTimeout: 20s\n",
			env:     map[string]string{"VERIFICATION_PAUSE": "0s"},
		},
		{
			name:    "timeout disabled",
			content: "verification:\n  pause: 1s\n",
			env:     map[string]string{"HTTP_REQUEST_TIMEOUT": "0s"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DEHASHED_API_KEY", "secret")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := config.Load(writeConfig(t, tt.content))
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
		})
	}
}

func TestConfig_PauseBudget(t *testing.T) {
	var cfg config.Config
	cfg.Provider.PageSize = 100
	cfg.Verification.Pause = time.Second

	// pauses happen before passwords 5, 10, ..., 95
	require.Equal(t, 19*time.Second, cfg.PauseBudget())

	cfg.Verification.PauseEvery = 10
	require.Equal(t, 9*time.Second, cfg.PauseBudget())

	cfg.Verification.Pause = 0
	require.Zero(t, cfg.PauseBudget())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}
