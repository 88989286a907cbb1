package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

const validConfig = `
server:
  host: "127.0.0.1"
  port: 8080
database:
  host: "localhost"
  port: 5432
  user: "equiprent"
  password: "pw"
  database: "equiprent_test"
  ssl_mode: "disable"
jwt:
  secret: "0123456789abcdef0123456789abcdef"
email:
  from: "no-reply@equiprent.local"
  from_name: "EquipRent"
`

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	assert.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.GetServerAddress())
	assert.Equal(t, "postgres://equiprent:pw@localhost:5432/equiprent_test?sslmode=disable", cfg.GetDatabaseConnectionString())

	// Defaults filled in by validation.
	assert.Equal(t, 60, cfg.JWT.AccessTokenExpiry)
	assert.Equal(t, "0 0 2 * * *", cfg.Scheduler.CompleteExpiredRequests)
	assert.Equal(t, "0 0 9 * * *", cfg.Scheduler.SendPendingReminders)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("JWT_SECRET", "fedcba9876543210fedcba9876543210")

	cfg, err := Load(writeConfig(t, validConfig))
	assert.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "fedcba9876543210fedcba9876543210", cfg.JWT.Secret)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("MissingFile", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("ShortSecret", func(t *testing.T) {
		_, err := Load(writeConfig(t, `
server:
  port: 8080
database:
  host: "localhost"
  user: "u"
  database: "d"
jwt:
  secret: "too-short"
`))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "at least 32 characters")
	})

	t.Run("BadPort", func(t *testing.T) {
		_, err := Load(writeConfig(t, `
server:
  port: 0
database:
  host: "localhost"
  user: "u"
  database: "d"
jwt:
  secret: "0123456789abcdef0123456789abcdef"
`))
		assert.Error(t, err)
	})
}
