package retry

import (
	"context"
	"time"

	"github.com/rohmanhakim/crawlkit/pkg/failure"
)

// HedgeParam configures a hedged request: a speculative second attempt
// fired after hedgeAfter elapses without a result from the primary
// attempt. The first attempt to finish wins; the other is abandoned (its
// goroutine is left to return on its own context cancellation).
type HedgeParam struct {
	HedgeAfter time.Duration
	MaxHedges  int
}

func NewHedgeParam(hedgeAfter time.Duration, maxHedges int) HedgeParam {
	return HedgeParam{HedgeAfter: hedgeAfter, MaxHedges: maxHedges}
}

type hedgeResult[T any] struct {
	value T
	err   failure.ClassifiedError
}

// Hedge runs attempt against the primary request immediately. If hedgeAfter
// elapses with no result and MaxHedges allows it, a second, identical
// attempt is started concurrently. Whichever attempt returns first (success
// or error) is the result; the context passed to attempt is cancelled for
// the loser once a winner is chosen.
func Hedge[T any](ctx context.Context, param HedgeParam, attempt func(ctx context.Context) (T, failure.ClassifiedError)) (T, failure.ClassifiedError) {
	var zero T

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	resultCh := make(chan hedgeResult[T], 2)
	launch := func() {
		v, err := attempt(runCtx)
		resultCh <- hedgeResult[T]{value: v, err: err}
	}

	go launch()

	if param.HedgeAfter <= 0 || param.MaxHedges < 1 {
		select {
		case r := <-resultCh:
			return r.value, r.err
		case <-ctx.Done():
			return zero, &HedgeError{Message: ctx.Err().Error()}
		}
	}

	timer := time.NewTimer(param.HedgeAfter)
	defer timer.Stop()

	hedgesLaunched := 0
	for {
		select {
		case r := <-resultCh:
			return r.value, r.err
		case <-timer.C:
			if hedgesLaunched < param.MaxHedges {
				hedgesLaunched++
				go launch()
			}
			timer.Reset(param.HedgeAfter)
		case <-ctx.Done():
			return zero, &HedgeError{Message: ctx.Err().Error()}
		}
	}
}

// HedgeError indicates a hedged attempt was abandoned because its context
// was cancelled before any racer produced a result.
type HedgeError struct {
	Message string
}

func (e *HedgeError) Error() string {
	return "hedge error: " + e.Message
}

func (e *HedgeError) Severity() failure.Severity {
	return failure.SeverityRecoverable
}
