// Package logging builds the zerolog logger used by the command line host.
package logging

import (
	"io"
	"time"

	"github.com/a-peyrard/greeting/config"
	"github.com/rs/zerolog"
)

// New returns a timestamped logger writing to out, in the format and at the
// level described by conf.
func New(out io.Writer, conf *config.Config) (zerolog.Logger, error) {
	level, err := conf.Level()
	if err != nil {
		return zerolog.Nop(), err
	}

	if conf.LogFormat != config.FormatJSON {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.DateTime, NoColor: true}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Logger(), nil
}
