package storage

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var pkgLogger atomic.Pointer[zap.Logger]

func init() {
	pkgLogger.Store(zap.NewNop())
}

// SetLogger replaces the pool layer's logger. The ecs package wires this
// to its own sink during initialization.
func SetLogger(l *zap.Logger) {
	pkgLogger.Store(l)
}

func logger() *zap.Logger {
	return pkgLogger.Load()
}
