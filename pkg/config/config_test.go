package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "food_safety_analysis", cfg.Database.Database)
	assert.Equal(t, "us_fda", cfg.Analysis.DefaultRegion)
	assert.Equal(t, int64(0), cfg.Analysis.RandomSeed)
	assert.False(t, cfg.OTEL.Enabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ANALYSIS_RANDOM_SEED", "42")
	t.Setenv("ANALYSIS_DEFAULT_REGION", "eu_efsa")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, int64(42), cfg.Analysis.RandomSeed)
	assert.Equal(t, "eu_efsa", cfg.Analysis.DefaultRegion)
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db",
		Port:     5432,
		User:     "u",
		Password: "p",
		Database: "food_safety_analysis",
		SSLMode:  "disable",
	}
	assert.Equal(t,
		"host=db port=5432 user=u password=p dbname=food_safety_analysis sslmode=disable",
		cfg.DatabaseDSN(),
	)
}
