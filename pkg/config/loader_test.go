package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/clientkit/pkg/config"
)

// Distinct struct types per test keep the type-keyed cache from leaking
// state between cases.

func TestLoad(t *testing.T) {
	type basicConfig struct {
		Name  string `env:"TEST_LOAD_NAME" envDefault:"fallback"`
		Count int    `env:"TEST_LOAD_COUNT" envDefault:"3"`
	}

	t.Setenv("TEST_LOAD_NAME", "from-env")

	var cfg basicConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from-env", cfg.Name)
	assert.Equal(t, 3, cfg.Count)
}

func TestLoadCachesPerType(t *testing.T) {
	type cachedConfig struct {
		Value string `env:"TEST_CACHE_VALUE" envDefault:"initial"`
	}

	t.Setenv("TEST_CACHE_VALUE", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "first", first.Value)

	// Environment changes after the first load are not observed.
	t.Setenv("TEST_CACHE_VALUE", "second")
	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value)
}

func TestLoadRequiredMissing(t *testing.T) {
	type requiredConfig struct {
		Token string `env:"TEST_REQUIRED_TOKEN,required"`
	}

	var cfg requiredConfig
	err := config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoadNilPointer(t *testing.T) {
	type nilConfig struct {
		Value string `env:"TEST_NIL_VALUE"`
	}

	var cfg *nilConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestReset(t *testing.T) {
	type resetConfig struct {
		Value string `env:"TEST_RESET_VALUE" envDefault:"zero"`
	}

	t.Setenv("TEST_RESET_VALUE", "one")
	var first resetConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "one", first.Value)

	config.Reset()
	t.Setenv("TEST_RESET_VALUE", "two")
	var second resetConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "two", second.Value)
}

func TestMustLoadPanicsOnFailure(t *testing.T) {
	type mustConfig struct {
		Token string `env:"TEST_MUST_TOKEN,required"`
	}

	assert.Panics(t, func() {
		var cfg mustConfig
		config.MustLoad(&cfg)
	})
}
