package goArgon2

import (
	"sync"

	"go.uber.org/zap"
)

var (
	loggerMu sync.RWMutex
	logger   = zap.NewNop()
)

// Logger returns the harness logger. It is a no-op logger by default so the
// contract-bound report output stays the only thing the CLI prints.
func Logger() *zap.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

// SetLogger replaces the harness logger. Passing nil restores the no-op
// logger.
func SetLogger(l *zap.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
