package closer

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...zap.Field)  {}
func (nopLogger) Error(context.Context, string, ...zap.Field) {}

type closeFn struct {
	name string
	fn   func(ctx context.Context) error
}

type closer struct {
	mu     sync.Mutex
	fns    []closeFn
	logger Logger
	closed bool
}

var global = &closer{logger: nopLogger{}}

func SetLogger(l Logger) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.logger = l
}

// AddNamed registers a shutdown hook. Hooks run in reverse registration
// order, mirroring defer semantics.
func AddNamed(name string, fn func(ctx context.Context) error) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.fns = append(global.fns, closeFn{name: name, fn: fn})
}

// CloseAll runs every registered hook once. Errors are logged and joined;
// a failing hook does not stop the rest.
func CloseAll(ctx context.Context) error {
	global.mu.Lock()
	if global.closed {
		global.mu.Unlock()
		return nil
	}
	global.closed = true
	fns := global.fns
	log := global.logger
	global.mu.Unlock()

	var errs []error
	for i := len(fns) - 1; i >= 0; i-- {
		c := fns[i]
		if err := c.fn(ctx); err != nil {
			log.Error(ctx, "closer: shutdown hook failed",
				zap.String("name", c.name),
				zap.Error(err),
			)
			errs = append(errs, err)
			continue
		}
		log.Info(ctx, "closer: closed", zap.String("name", c.name))
	}

	return errors.Join(errs...)
}
