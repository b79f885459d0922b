/*
Package deathtest runs a unit of work under a deadline and classifies how it
ended: normally, by panicking, or not at all within the deadline.

It exists to assert that searches over deliberately malformed inputs fail
loudly, i.e. panic or hang, instead of returning a wrong answer.
*/
package deathtest

import (
	"context"
	"fmt"
	"time"

	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("bsearch")
}

// Outcome classifies how a unit of work ended.
type Outcome int8

const (
	// Passed means the work returned normally.
	Passed Outcome = iota
	// Crashed means the work panicked or exited its goroutine.
	Crashed
	// TimedOut means the work did not finish before the deadline.
	TimedOut
)

func (o Outcome) String() string {
	switch o {
	case Passed:
		return "passed"
	case Crashed:
		return "crashed"
	case TimedOut:
		return "timed out"
	}
	return fmt.Sprintf("Outcome(%d)", int8(o))
}

// Result is the report of Run.
type Result struct {
	Outcome Outcome
	Panic   any           // recovered panic value if Outcome == Crashed
	Elapsed time.Duration // time until the outcome was known
}

// Err returns the recovered panic value if it is an error, and nil otherwise.
func (r Result) Err() error {
	if err, ok := r.Panic.(error); ok {
		return err
	}
	return nil
}

// Died reports whether the work crashed or timed out.
func (r Result) Died() bool {
	return r.Outcome == Crashed || r.Outcome == TimedOut
}

// Run runs fn on a goroutine of its own and waits at most timeout for it.
func Run(timeout time.Duration, fn func()) Result {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return RunContext(ctx, fn)
}

type exit struct {
	crashed bool
	value   any
}

// RunContext is Run with the deadline taken from ctx.
//
// A goroutine which is still running when ctx is done cannot be stopped; it
// is abandoned and keeps running until it returns, if ever.
func RunContext(ctx context.Context, fn func()) Result {
	done := make(chan exit, 1)
	start := time.Now()
	go func() {
		returned := false
		defer func() {
			r := recover()
			// runtime.Goexit leaves r == nil without returning
			done <- exit{crashed: r != nil || !returned, value: r}
		}()
		fn()
		returned = true
	}()
	var result Result
	select {
	case e := <-done:
		result = Result{Passed, nil, time.Since(start)}
		if e.crashed {
			result = Result{Crashed, e.value, time.Since(start)}
		}
	case <-ctx.Done():
		result = Result{TimedOut, nil, time.Since(start)}
	}
	tracer().Debugf("deathtest: %s after %v", result.Outcome, result.Elapsed)
	return result
}
