package vlcplayer

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

var pkgLogger atomic.Pointer[zerolog.Logger]

func init() {
	nop := zerolog.Nop()
	pkgLogger.Store(&nop)
}

// SetLogger replaces the logger used by adapters created afterwards,
// including the package-level default adapter.
func SetLogger(l zerolog.Logger) {
	l = l.With().Str("component", "vlcplayer").Logger()
	pkgLogger.Store(&l)
}

func logger() zerolog.Logger {
	return *pkgLogger.Load()
}
