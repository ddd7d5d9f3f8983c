package async_test

import (
	"bytes"
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/controlchart/pkg/utils/async"
)

func waitRunner(t *testing.T, r *async.Runner) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	gt.NoError(t, r.Wait(ctx))
}

func TestDispatch(t *testing.T) {
	t.Run("Execute handler asynchronously", func(t *testing.T) {
		var r async.Runner
		var executed atomic.Bool

		r.Dispatch(context.Background(), "report", func(ctx context.Context) error {
			executed.Store(true)
			return nil
		})

		waitRunner(t, &r)
		gt.True(t, executed.Load())
	})

	t.Run("Handle errors in async handler", func(t *testing.T) {
		var buf bytes.Buffer
		ctx := ctxlog.With(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

		var r async.Runner
		r.Dispatch(ctx, "report", func(ctx context.Context) error {
			return goerr.New("test error")
		})

		waitRunner(t, &r)
		gt.S(t, buf.String()).Contains("Error in async handler")
		gt.S(t, buf.String()).Contains(`"task":"report"`)
	})

	t.Run("Recover from panic in async handler", func(t *testing.T) {
		var r async.Runner
		r.Dispatch(context.Background(), "report", func(ctx context.Context) error {
			panic("test panic")
		})

		waitRunner(t, &r)
	})

	t.Run("Multiple async dispatches", func(t *testing.T) {
		var r async.Runner
		var counter atomic.Int32

		for i := 0; i < 10; i++ {
			r.Dispatch(context.Background(), "report", func(ctx context.Context) error {
				counter.Add(1)
				return nil
			})
		}

		waitRunner(t, &r)
		gt.Equal(t, counter.Load(), int32(10))
	})
}

func TestDispatchDetachesCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var r async.Runner
	var handlerErr atomic.Value
	release := make(chan struct{})

	r.Dispatch(ctx, "report", func(ctx context.Context) error {
		<-release
		if err := ctx.Err(); err != nil {
			handlerErr.Store(err)
		}
		return nil
	})

	cancel()
	close(release)
	waitRunner(t, &r)
	gt.V(t, handlerErr.Load()).Nil()
}

func TestWaitTimesOut(t *testing.T) {
	var r async.Runner
	release := make(chan struct{})
	defer close(release)

	r.Dispatch(context.Background(), "slow", func(ctx context.Context) error {
		<-release
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	gt.Error(t, r.Wait(ctx))
}
