package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testSettings struct {
	Name    string        `env:"CONFIG_TEST_NAME" envDefault:"fallback"`
	Timeout time.Duration `env:"CONFIG_TEST_TIMEOUT" envDefault:"3s"`
}

type requiredSettings struct {
	Token string `env:"CONFIG_TEST_TOKEN,required"`
}

type prefixedSettings struct {
	Port int `env:"PORT" envDefault:"80"`
}

// not parallel: these tests share the process environment and the cache

func TestLoad_DefaultsAndCache(t *testing.T) {
	Reset()
	t.Setenv("CONFIG_TEST_NAME", "first")

	var s testSettings
	require.NoError(t, Load(&s))
	assert.Equal(t, "first", s.Name)
	assert.Equal(t, 3*time.Second, s.Timeout)

	t.Setenv("CONFIG_TEST_NAME", "second")
	var again testSettings
	require.NoError(t, Load(&again))
	assert.Equal(t, "first", again.Name, "second load should come from cache")

	Reset()
	require.NoError(t, Load(&again))
	assert.Equal(t, "second", again.Name)
}

func TestLoad_RequiredMissing(t *testing.T) {
	Reset()

	var s requiredSettings
	assert.Error(t, Load(&s))
	assert.Panics(t, func() { MustLoad(&requiredSettings{}) })
}

func TestLoad_NilTarget(t *testing.T) {
	assert.Error(t, Load[testSettings](nil))
}

func TestLoadWithOptions_Prefix(t *testing.T) {
	Reset()
	t.Setenv("APP_PORT", "8080")

	var s prefixedSettings
	require.NoError(t, LoadWithOptions(&s, env.Options{Prefix: "APP_"}))
	assert.Equal(t, 8080, s.Port)
}
