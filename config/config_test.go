package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("UPSTREAM_BASE_URL", "https://api.example.test/v1/")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.test/v1", cfg.Upstream.BaseURL)
	assert.Equal(t, 20*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, time.Sunday, cfg.Studio.WeekStart)
	assert.True(t, cfg.Studio.StrictLookups)
	assert.Equal(t, 2*time.Hour, cfg.Studio.DraftTTL)
	assert.Equal(t, "8080", cfg.HTTP.Port)
}

func TestNewConfig_RequiresUpstream(t *testing.T) {
	t.Setenv("UPSTREAM_BASE_URL", "")

	_, err := NewConfig()
	assert.Error(t, err)
}

func TestNewConfig_WeekStart(t *testing.T) {
	t.Setenv("UPSTREAM_BASE_URL", "https://api.example.test")
	t.Setenv("CALENDAR_WEEK_START", "Monday")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, time.Monday, cfg.Studio.WeekStart)

	t.Setenv("CALENDAR_WEEK_START", "friday")
	_, err = NewConfig()
	assert.Error(t, err)
}
