package ecs

import (
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"sparsekit/internal/core/ecs/storage"
)

// The core logs recoverable misuse at warn level and programmer errors at
// fatal level, which terminates the process before an invalid reference
// can escape. Output goes to stdout.
var pkgLogger atomic.Pointer[zap.Logger]

func init() {
	SetLogger(newConsoleLogger())
}

func newConsoleLogger() *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(enc),
		zapcore.Lock(os.Stdout),
		zapcore.WarnLevel,
	)
	return zap.New(core, zap.AddCaller())
}

// SetLogger replaces the logger used by the ECS core and its storage
// layer. Tests typically install zap.NewNop() or an observer core.
func SetLogger(l *zap.Logger) {
	pkgLogger.Store(l)
	storage.SetLogger(l)
}

func logger() *zap.Logger {
	return pkgLogger.Load()
}
