// Package logging holds the engine's package-level zerolog.Logger,
// configured once at process start and read by every other package.
// Grounded on
// _examples/tassa-yoniso-manasi-karoto-translitkit/common/logger.go's
// SetLogger/GetLogger pair and
// _examples/tassa-yoniso-manasi-karoto-go-ichiran/apis.go's commented-out
// console-writer construction.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// SetLogger replaces the package-level logger, for hosts that want to
// route engine logs into their own sink.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// Get returns the current package-level logger.
func Get() zerolog.Logger {
	return logger
}

// InitConsole switches to a human-readable console writer, for CLI
// entry points (cmd/yomikiri-dict, cmd/yomikiri-reader) as opposed to
// the default JSON-lines writer suited to log aggregation.
func InitConsole(level zerolog.Level) {
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().
		Timestamp().
		Logger().
		Level(level)
}
