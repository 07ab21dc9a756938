// Package obs initializes the global structured logger.
package obs

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global zerolog logger: JSON to stderr, info level
// unless debug is set. Reports go to stdout, logs stay on stderr.
func Init(debug bool) {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
}
