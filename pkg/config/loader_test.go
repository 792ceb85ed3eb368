package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/emailcheck/pkg/config"
)

type defaultsConfig struct {
	Output   string `env:"EMAILCHECK_TEST_DEFAULT_OUTPUT" envDefault:"text"`
	MaxItems int    `env:"EMAILCHECK_TEST_DEFAULT_MAX" envDefault:"100"`
	Strict   bool   `env:"EMAILCHECK_TEST_DEFAULT_STRICT" envDefault:"true"`
}

type successConfig struct {
	Output   string `env:"EMAILCHECK_TEST_SUCCESS_OUTPUT" envDefault:"text"`
	MaxItems int    `env:"EMAILCHECK_TEST_SUCCESS_MAX" envDefault:"100"`
	Strict   bool   `env:"EMAILCHECK_TEST_SUCCESS_STRICT" envDefault:"true"`
}

type singletonConfig struct {
	Domain string `env:"EMAILCHECK_TEST_SINGLETON_DOMAIN" envDefault:"example.com"`
}

type firstConfig struct {
	Value string `env:"EMAILCHECK_TEST_VALUE1" envDefault:"default1"`
}

type secondConfig struct {
	Value string `env:"EMAILCHECK_TEST_VALUE2" envDefault:"default2"`
}

type requiredConfig struct {
	Domain string `env:"EMAILCHECK_TEST_REQUIRED_DOMAIN,required"`
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("EMAILCHECK_TEST_SUCCESS_OUTPUT", "json")
	t.Setenv("EMAILCHECK_TEST_SUCCESS_MAX", "5")
	t.Setenv("EMAILCHECK_TEST_SUCCESS_STRICT", "false")

	var cfg successConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, 5, cfg.MaxItems)
	assert.False(t, cfg.Strict)
}

func TestLoad_DefaultValues(t *testing.T) {
	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "text", cfg.Output)
	assert.Equal(t, 100, cfg.MaxItems)
	assert.True(t, cfg.Strict)
}

func TestLoad_Cached(t *testing.T) {
	config.ResetCache()
	t.Setenv("EMAILCHECK_TEST_SINGLETON_DOMAIN", "first.example")

	var first singletonConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("EMAILCHECK_TEST_SINGLETON_DOMAIN", "second.example")

	var second singletonConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first.example", second.Domain)

	config.ResetCache()

	var third singletonConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second.example", third.Domain)
}

func TestLoad_DifferentTypes(t *testing.T) {
	t.Setenv("EMAILCHECK_TEST_VALUE1", "one")
	t.Setenv("EMAILCHECK_TEST_VALUE2", "two")

	var a firstConfig
	require.NoError(t, config.Load(&a))

	var b secondConfig
	require.NoError(t, config.Load(&b))

	assert.Equal(t, "one", a.Value)
	assert.Equal(t, "two", b.Value)
}

func TestLoad_MissingRequiredIsRetryable(t *testing.T) {
	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	t.Setenv("EMAILCHECK_TEST_REQUIRED_DOMAIN", "example.com")

	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "example.com", cfg.Domain)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *successConfig
	err := config.Load(cfg)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestMustLoad(t *testing.T) {
	assert.NotPanics(t, func() {
		var cfg defaultsConfig
		config.MustLoad(&cfg)
	})
	assert.Panics(t, func() {
		config.MustLoad[successConfig](nil)
	})
}
