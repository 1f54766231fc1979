package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("applies defaults when env is empty", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "memory", cfg.SnapshotBackend)
		assert.Equal(t, "data", cfg.DataDir)
	})

	t.Run("rejects invalid port", func(t *testing.T) {
		t.Setenv("PORT", "not-a-port")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("rejects unknown snapshot backend", func(t *testing.T) {
		t.Setenv("SNAPSHOT_BACKEND", "redis")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("reads overrides from environment", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("SNAPSHOT_BACKEND", "postgres")
		t.Setenv("DB_NAME", "scriptorium_test")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.Port)
		assert.Equal(t, "postgres", cfg.SnapshotBackend)
		assert.Contains(t, cfg.GetDBConnString(), "scriptorium_test")
	})
}
