package querybuilder

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

var logger atomic.Pointer[zerolog.Logger]

func init() {
	nop := zerolog.Nop()
	logger.Store(&nop)
}

// SetLogger installs the logger used for debug tracing of dropped values and
// finalization. Builders log nothing by default. It may be called while other
// goroutines are building queries.
func SetLogger(l zerolog.Logger) {
	l = l.With().Str("component", "querybuilder").Logger()
	logger.Store(&l)
}

func log() *zerolog.Logger {
	return logger.Load()
}
