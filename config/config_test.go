package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type (
	TestConfig struct {
		Foo *FooTestConfig `mapstructure:"foo"`
		Bar BarTestConfig  `mapstructure:"bar"`
	}
	FooTestConfig struct {
		Hello string `mapstructure:"hello"`
		World int    `mapstructure:"world"`
	}
	BarTestConfig struct {
		First int `mapstructure:"first"`
	}
)

func (c *TestConfig) ApplyDefault() {
	if c.Bar.First == 0 {
		c.Bar.First = 42
	}
}

func TestLoad(t *testing.T) {
	t.Run("it should load basic struct", func(t *testing.T) {
		// GIVEN
		t.Setenv("FOO_HELLO", "waldo")
		t.Setenv("FOO_WORLD", "23")

		// WHEN
		conf, err := Load[FooTestConfig](WithEnvPrefix("FOO"))

		// THEN
		require.NoError(t, err)
		assert.Equal(t, "waldo", conf.Hello)
		assert.Equal(t, 23, conf.World)
	})

	t.Run("it should load nested structs from env vars", func(t *testing.T) {
		// GIVEN
		t.Setenv("TEST_FOO_HELLO", "waldo")
		t.Setenv("TEST_FOO_WORLD", "23")
		t.Setenv("TEST_BAR_FIRST", "12")

		// WHEN
		conf, err := Load[TestConfig](WithEnvPrefix("TEST"))

		// THEN
		require.NoError(t, err)
		require.NotNil(t, conf.Foo)
		assert.Equal(t, "waldo", conf.Foo.Hello)
		assert.Equal(t, 23, conf.Foo.World)
		assert.Equal(t, 12, conf.Bar.First)
	})

	t.Run("it should apply default if the struct implements WithDefault", func(t *testing.T) {
		// GIVEN

		// WHEN
		conf, err := Load[TestConfig](WithEnvPrefix("TEST"))

		// THEN
		require.NoError(t, err)
		assert.Equal(t, 42, conf.Bar.First)
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("it should default to info level and console format", func(t *testing.T) {
		// GIVEN

		// WHEN
		conf, err := LoadConfig()

		// THEN
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, FormatConsole, conf.LogFormat)
		level, err := conf.Level()
		require.NoError(t, err)
		assert.Equal(t, zerolog.InfoLevel, level)
	})

	t.Run("it should read the GREETING prefixed env vars", func(t *testing.T) {
		// GIVEN
		t.Setenv("GREETING_LOG_LEVEL", "DEBUG")
		t.Setenv("GREETING_LOG_FORMAT", "json")

		// WHEN
		conf, err := LoadConfig()

		// THEN
		require.NoError(t, err)
		assert.Equal(t, FormatJSON, conf.LogFormat)
		level, err := conf.Level()
		require.NoError(t, err)
		assert.Equal(t, zerolog.DebugLevel, level)
	})

	t.Run("it should honour a custom prefix", func(t *testing.T) {
		// GIVEN
		t.Setenv("HOST_LOG_LEVEL", "warn")

		// WHEN
		conf, err := LoadConfig(WithEnvPrefix("HOST"))

		// THEN
		require.NoError(t, err)
		assert.Equal(t, "warn", conf.LogLevel)
	})

	t.Run("it should reject an unknown log level", func(t *testing.T) {
		// GIVEN
		t.Setenv("GREETING_LOG_LEVEL", "loud")

		// WHEN
		_, err := LoadConfig()

		// THEN
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("it should reject an unknown log format", func(t *testing.T) {
		// GIVEN
		t.Setenv("GREETING_LOG_FORMAT", "xml")

		// WHEN
		_, err := LoadConfig()

		// THEN
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}
