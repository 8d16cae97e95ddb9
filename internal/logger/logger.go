// Package logger holds the process-wide zap logger.
package logger

import (
	"fmt"
	stdlog "log"
	"sync"

	"go.uber.org/zap"
)

var (
	mtx   sync.Mutex
	base  *zap.Logger
	sugar *zap.SugaredLogger
)

// Init builds the logger. debug selects the development config (console,
// debug level); otherwise production JSON at info level is used.
func Init(debug bool) error {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return fmt.Errorf("can't initialize zap logger: %w", err)
	}

	mtx.Lock()
	defer mtx.Unlock()
	base = l
	sugar = l.Sugar()
	return nil
}

// Get returns the sugared logger, falling back to a production logger when
// Init was never called.
func Get() *zap.SugaredLogger {
	mtx.Lock()
	defer mtx.Unlock()
	if sugar == nil {
		base, _ = zap.NewProduction()
		sugar = base.Sugar()
	}
	return sugar
}

// Std adapts the logger for APIs that want a *log.Logger, like http.Server.
func Std() *stdlog.Logger {
	return zap.NewStdLog(Get().Desugar())
}

// Sync flushes buffered entries.
func Sync() {
	mtx.Lock()
	defer mtx.Unlock()
	if sugar != nil {
		_ = sugar.Sync()
	}
}
