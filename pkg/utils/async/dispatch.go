package async

import (
	"context"
	"runtime/debug"
	"sync"

	"github.com/m-mizutani/ctxlog"
)

// Runner executes handlers in the background and lets the caller wait for
// them on shutdown
type Runner struct {
	wg sync.WaitGroup
}

// Dispatch executes handler asynchronously on a context detached from the
// caller's cancellation. The caller's logger is carried over with the task name.
func (r *Runner) Dispatch(ctx context.Context, name string, handler func(ctx context.Context) error) {
	newCtx := newBackgroundContext(ctx, name)

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer func() {
			if rec := recover(); rec != nil {
				ctxlog.From(newCtx).Error("Panic in async handler",
					"recover", rec,
					"stack", string(debug.Stack()),
				)
			}
		}()

		if err := handler(newCtx); err != nil {
			ctxlog.From(newCtx).Error("Error in async handler",
				"error", err,
			)
		}
	}()
}

// Wait blocks until every dispatched handler returned or ctx is done
func (r *Runner) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func newBackgroundContext(ctx context.Context, name string) context.Context {
	logger := ctxlog.From(ctx).With("task", name)
	return ctxlog.With(context.Background(), logger)
}
