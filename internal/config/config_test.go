package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"port": 9090,
		"storage_url": "file:///tmp/devfolio",
		"llm_provider": "anthropic",
		"reset_auth_on_load": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "file:///tmp/devfolio", cfg.StorageURL)
	assert.Equal(t, "anthropic", cfg.LLMProvider)
	assert.True(t, cfg.ResetAuthOnLoad)
}

func TestLoadConfig_ValidYAML(t *testing.T) {
	content := "port: 7070\nstorage_url: memory://\nlog_level: debug\n"

	tmpFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, "memory://", cfg.StorageURL)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644))

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(tmpFile, []byte("port: [unclosed"), 0644))

	_, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config YAML")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "defaults", cfg: Defaults()},
		{name: "bad port", cfg: Config{Port: 70000}, wantErr: "port"},
		{name: "bad scheme", cfg: Config{StorageURL: "redis://localhost"}, wantErr: "unsupported storage scheme"},
		{name: "bad provider", cfg: Config{LLMProvider: "openai"}, wantErr: "llm_provider"},
		{name: "bad log level", cfg: Config{LogLevel: "loud"}, wantErr: "log_level"},
		{name: "postgres", cfg: Config{StorageURL: "postgres://u:p@localhost:5432/db"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{Port: 9000}
	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, 9000, merged.Port)
	assert.Equal(t, "sqlite://devfolio.db", merged.StorageURL)
	assert.Equal(t, DefaultStorageKey, merged.StorageKey)
	assert.Equal(t, "gemini", merged.LLMProvider)
	assert.Equal(t, "info", merged.LogLevel)
}

func TestApplyEnv(t *testing.T) {
	cfg := &Config{}
	err := cfg.ApplyEnv(envMap(map[string]string{
		"DEVFOLIO_PORT":               "3000",
		"DEVFOLIO_STORAGE_URL":        "memory://",
		"DEVFOLIO_RESET_AUTH_ON_LOAD": "true",
		"GEMINI_API_KEY":              "g-key",
		"API_KEY":                     "generic",
	}))
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "memory://", cfg.StorageURL)
	assert.True(t, cfg.ResetAuthOnLoad)
	assert.Equal(t, "g-key", cfg.APIKey)
}

func TestApplyEnv_AnthropicKey(t *testing.T) {
	cfg := &Config{LLMProvider: "anthropic"}
	require.NoError(t, cfg.ApplyEnv(envMap(map[string]string{
		"GEMINI_API_KEY":    "g-key",
		"ANTHROPIC_API_KEY": "a-key",
	})))
	assert.Equal(t, "a-key", cfg.APIKey)
}

func TestApplyEnv_InvalidPort(t *testing.T) {
	cfg := &Config{}
	err := cfg.ApplyEnv(envMap(map[string]string{"DEVFOLIO_PORT": "eighty"}))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DEVFOLIO_PORT")
}

func TestApplyEnv_FileKeyWins(t *testing.T) {
	cfg := &Config{APIKey: "from-file"}
	require.NoError(t, cfg.ApplyEnv(envMap(map[string]string{"GEMINI_API_KEY": "env"})))
	assert.Equal(t, "from-file", cfg.APIKey)
}
