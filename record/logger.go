package record

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	logger atomic.Pointer[zap.Logger]
	nop    = zap.NewNop()
)

// Logger returns the logger used when compiling records. It is a no-op
// logger until SetLogger is called.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return nop
}

// SetLogger replaces the record logger. A nil logger restores the no-op
// default. It is safe to call while records are being compiled.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}
