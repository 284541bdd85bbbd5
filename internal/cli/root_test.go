// filepath: internal/cli/root_test.go
package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

// Helper to reset the global config and flags between tests
func resetGlobals() {
	cfg = nil
	port = 0
	logLevel = ""
	storeDSN = ""
	jwtSecret = ""
	cfgFile = "config.toml" // Default
}

func TestConfigPrecedence(t *testing.T) {
	// We cannot easily run RootCmd.Execute() in tests because it calls os.Exit on failure
	// and runs the server. Instead, we test the initializeConfig and applyOverrides logic.

	t.Run("Defaults", func(t *testing.T) {
		resetGlobals()
		// Mock a non-existent config file to trigger defaults
		cfgFile = "nonexistent.toml"

		cmd := &cobra.Command{}
		err := initializeConfig(cmd)
		assert.NoError(t, err)

		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "info", cfg.Logging.Level)
		assert.Equal(t, ":memory:", cfg.Store.DSN)
		assert.Equal(t, "DEMO2024", cfg.Gallery.AccessCode)
	})

	t.Run("Environment Overrides Defaults", func(t *testing.T) {
		resetGlobals()
		cfgFile = "nonexistent.toml"

		os.Setenv("LUMINA_PORT", "9090")
		os.Setenv("LUMINA_LOG_LEVEL", "warn")
		defer os.Unsetenv("LUMINA_PORT")
		defer os.Unsetenv("LUMINA_LOG_LEVEL")

		cmd := &cobra.Command{}
		err := initializeConfig(cmd)
		assert.NoError(t, err)

		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "warn", cfg.Logging.Level)
	})

	t.Run("Flags Override Environment", func(t *testing.T) {
		resetGlobals()
		cfgFile = "nonexistent.toml"

		os.Setenv("LUMINA_PORT", "9090")
		defer os.Unsetenv("LUMINA_PORT")

		// Set Flag (Simulate parsing)
		port = 7070

		cmd := &cobra.Command{}
		err := initializeConfig(cmd)
		assert.NoError(t, err)

		assert.Equal(t, 7070, cfg.Server.Port)
	})

	t.Run("Config File Loading", func(t *testing.T) {
		resetGlobals()

		content := []byte(`
[server]
port = 6060
[logging]
level = "error"
[gallery]
access_code = "SUMMER25"
`)
		tmpFile := filepath.Join(t.TempDir(), "test_config.toml")
		err := os.WriteFile(tmpFile, content, 0644)
		assert.NoError(t, err)

		cfgFile = tmpFile

		cmd := &cobra.Command{}
		err = initializeConfig(cmd)
		assert.NoError(t, err)

		assert.Equal(t, 6060, cfg.Server.Port)
		assert.Equal(t, "error", cfg.Logging.Level)
		assert.Equal(t, "SUMMER25", cfg.Gallery.AccessCode)
	})

	t.Run("Invalid Port Rejected", func(t *testing.T) {
		resetGlobals()
		cfgFile = "nonexistent.toml"
		port = 99999

		cmd := &cobra.Command{}
		err := initializeConfig(cmd)
		assert.Error(t, err)
	})
}

func TestJWTSecretFromEnv(t *testing.T) {
	resetGlobals()
	cfgFile = "nonexistent.toml"

	os.Setenv("LUMINA_JWT_SECRET", "topsecret")
	defer os.Unsetenv("LUMINA_JWT_SECRET")

	cmd := &cobra.Command{}
	err := initializeConfig(cmd)
	assert.NoError(t, err)

	assert.Equal(t, "topsecret", cfg.JWTSecret)
}
