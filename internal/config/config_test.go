package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadDefaults expects the in-memory store on port 8080 when nothing is configured.
func TestLoadDefaults(t *testing.T) {
	for _, key := range append(keys, "config_file") {
		t.Setenv(strings.ToUpper(key), "")
	}
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, StoreMemory, cfg.Store)
	assert.True(t, cfg.Seed)
	assert.True(t, cfg.RequestLogging())
	assert.Equal(t, ":8080", cfg.Addr())
}

// TestLoadFromEnvironment expects every setting to be read from its environment variable.
func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORE", "mysql")
	t.Setenv("DBHOST", "db:3306")
	t.Setenv("DBUSER", "dirk")
	t.Setenv("DBPWD", "bullo92")
	t.Setenv("DBNAME", "contacts")
	t.Setenv("SEED", "false")
	t.Setenv("GIN_LOGGING", "OFF")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, StoreMySQL, cfg.Store)
	assert.False(t, cfg.Seed)
	assert.False(t, cfg.RequestLogging())
	assert.Contains(t, cfg.DSN(), "dirk:bullo92@tcp(db:3306)/contacts")
	assert.Contains(t, cfg.DSN(), "parseTime=true")
}

// TestLoadConfigFile expects values from the config file unless the environment overrides them.
func TestLoadConfigFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "contacts.yaml")
	require.NoError(t, os.WriteFile(file, []byte("port: 7070\nlog_level: debug\n"), 0o600))
	t.Setenv("CONFIG_FILE", file)
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, "warn", cfg.LogLevel)
}

// TestLoadInvalid expects that invalid values are rejected.
func TestLoadInvalid(t *testing.T) {
	invalid := map[string]string{
		"PORT":  "70000",
		"STORE": "postgres",
	}
	for key, value := range invalid {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestValidateMySQLNeedsHost(t *testing.T) {
	cfg := Config{Port: 8080, Store: StoreMySQL}
	assert.Error(t, cfg.Validate())
	cfg.DBHost = "localhost"
	assert.NoError(t, cfg.Validate())
}
