package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestLoad(t *testing.T) {
	t.Run("MissingFileGivesDefaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

		assert.NoError(t, err)
		assert.Equal(t, StoreFile, cfg.Store)
		assert.Equal(t, "USD", cfg.Currency)
		assert.NotEqual(t, "", cfg.Path)
	})

	t.Run("FileOverridesDefaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := `
store: sqlite
path: /tmp/ledger.db
currency: EUR
accounts:
  - Checking
  - Petty Cash
`
		assert.NoError(t, os.WriteFile(path, []byte(content), 0600))

		cfg, err := Load(path)

		assert.NoError(t, err)
		assert.Equal(t, StoreSQLite, cfg.Store)
		assert.Equal(t, "/tmp/ledger.db", cfg.Path)
		assert.Equal(t, "EUR", cfg.Currency)
		assert.Equal(t, []string{"Checking", "Petty Cash"}, cfg.Accounts)
	})

	t.Run("UnknownBackendRejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		assert.NoError(t, os.WriteFile(path, []byte("store: redis\n"), 0600))

		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("MalformedYAMLRejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		assert.NoError(t, os.WriteFile(path, []byte(":\n\t-"), 0600))

		_, err := Load(path)
		assert.Error(t, err)
	})
}
