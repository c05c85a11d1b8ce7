package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresMongoURI(t *testing.T) {
	t.Setenv("MONGO_URI", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "mediconnect", cfg.Mongo.Database)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiry)
	assert.True(t, cfg.AllowPublicWrites)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db.internal:27017")
	t.Setenv("API_PORT", "9000")
	t.Setenv("JWT_EXPIRY", "2h")
	t.Setenv("ALLOW_PUBLIC_WRITES", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.App.Port)
	assert.Equal(t, 2*time.Hour, cfg.JWT.Expiry)
	assert.False(t, cfg.AllowPublicWrites)
}

func TestLoadSplitsCORSOriginsOnCommas(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example.com, https://b.example.com,https://c.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"https://a.example.com",
		"https://b.example.com",
		"https://c.example.com",
	}, cfg.CORS.AllowOrigins)
}
