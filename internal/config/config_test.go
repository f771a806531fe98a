package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const minimalConfig = `
[database]
host = "localhost"
user = "venue_service"
dbname = "venue_service"
`

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 60, cfg.Availability.SlotDurationMinutes)
	assert.Equal(t, 30, cfg.Availability.LookaheadMinutes)
	assert.Equal(t, 100, cfg.Availability.GridInsertBatchSize)
}

func TestLoad_ExplicitValues(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[server]
http_port = 8082

[database]
host = "db.internal"
port = 5433
user = "svc"
password = "secret"
dbname = "venues"

[availability]
slot_duration_minutes = 30
lookahead_minutes = 45
`))
	require.NoError(t, err)

	assert.Equal(t, 8082, cfg.Server.HTTPPort)
	assert.Equal(t, 30, cfg.Availability.SlotDurationMinutes)
	assert.Equal(t, 45, cfg.Availability.LookaheadMinutes)
	assert.Equal(t, "host=db.internal port=5433 user=svc password=secret dbname=venues sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_Validation(t *testing.T) {
	t.Run("missing database host", func(t *testing.T) {
		_, err := Load(writeConfig(t, `
[database]
user = "svc"
dbname = "venues"
`))
		require.Error(t, err)
	})

	t.Run("slot duration out of range", func(t *testing.T) {
		_, err := Load(writeConfig(t, minimalConfig+`
[availability]
slot_duration_minutes = 5
`))
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		require.Error(t, err)
	})
}
