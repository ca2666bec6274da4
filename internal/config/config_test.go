package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 2, cfg.Calibration.ThemeMinFrequency)
	assert.Equal(t, 2, cfg.Calibration.EntityMinMentions)
	assert.InDelta(t, 2.0, cfg.Calibration.GapMinMagnitude, 1e-9)
	assert.Equal(t, 5, cfg.Calibration.MaxContextQuotes)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("CALIBRATION_THEME_MIN_FREQUENCY", "4")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Calibration.ThemeMinFrequency)
}

func TestDefaultCalibrationMatchesLoaderDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultCalibration(), cfg.Calibration)
}
