// Package config loads the host-side settings from the environment.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const DefaultEnvPrefix = "GREETING"

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// ErrInvalidConfig is returned when a loaded value cannot be used.
var ErrInvalidConfig = errors.New("invalid config")

type (
	// Config holds the settings of the command line host. None of them affect the
	// greeting itself.
	Config struct {
		LogLevel  string `mapstructure:"log_level"`
		LogFormat string `mapstructure:"log_format"`
	}

	Options struct {
		prefix string
	}

	Option func(opts *Options)

	WithDefault interface {
		ApplyDefault()
	}
)

func (c *Config) ApplyDefault() {
	if c.LogLevel == "" {
		c.LogLevel = zerolog.InfoLevel.String()
	}
	if c.LogFormat == "" {
		c.LogFormat = FormatConsole
	}
}

// Level returns the parsed log level.
func (c *Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: log level %q: %w", ErrInvalidConfig, c.LogLevel, err)
	}
	return level, nil
}

func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.LogFormat {
	case FormatConsole, FormatJSON:
		return nil
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.LogFormat)
	}
}

func WithEnvPrefix(prefix string) Option {
	return func(opts *Options) {
		opts.prefix = prefix
	}
}

// LoadConfig loads the host Config using the GREETING prefix unless overridden.
func LoadConfig(opts ...Option) (*Config, error) {
	conf, err := Load[Config](append([]Option{WithEnvPrefix(DefaultEnvPrefix)}, opts...)...)
	if err != nil {
		return nil, err
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// Load reads T from environment variables. Each field is bound to
// PREFIX_<MAPSTRUCTURE_TAG>, nested structs joining their tags with an underscore.
func Load[T any](opts ...Option) (*T, error) {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}

	v := viper.New()
	v.SetEnvPrefix(options.prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var vT T
	bindEnvs(v, options.prefix, reflect.TypeOf(vT))

	if err := v.Unmarshal(&vT); err != nil {
		return nil, fmt.Errorf("unable to unmarshal config: %w", err)
	}

	if withDefault, ok := any(&vT).(WithDefault); ok {
		withDefault.ApplyDefault()
	}

	return &vT, nil
}

func bindEnvs(v *viper.Viper, envPrefix string, typ reflect.Type, parts ...string) {
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return
	}
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		tag, ok := field.Tag.Lookup("mapstructure")
		if !ok {
			tag = field.Name
		}
		path := append(parts[:len(parts):len(parts)], tag)

		fieldType := field.Type
		if fieldType.Kind() == reflect.Pointer {
			fieldType = fieldType.Elem()
		}
		if fieldType.Kind() == reflect.Struct {
			bindEnvs(v, envPrefix, fieldType, path...)
			continue
		}
		_ = v.BindEnv(strings.Join(path, "."), envName(envPrefix, path))
	}
}

func envName(envPrefix string, path []string) string {
	name := strings.Join(path, "_")
	if envPrefix != "" {
		name = envPrefix + "_" + name
	}
	return strings.ToUpper(name)
}
