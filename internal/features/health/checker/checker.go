// Package checker holds the dependency probes behind the /health endpoint.
package checker

import (
	"context"
	"fmt"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// Result is the verdict of a single check. The zero value is unhealthy.
type Result struct {
	healthy bool
	err     error
}

func Healthy() Result {
	return Result{healthy: true}
}

func Unhealthy(err error) Result {
	return Result{err: err}
}

func (r Result) IsHealthy() bool {
	return r.healthy
}

func (r Result) Err() error {
	return r.err
}

// String renders "healthy" or "unhealthy: <detail>".
func (r Result) String() string {
	if r.healthy {
		return StatusHealthy
	}
	detail := "unknown error"
	if r.err != nil && r.err.Error() != "" {
		detail = r.err.Error()
	}
	return fmt.Sprintf("%s: %s", StatusUnhealthy, detail)
}

// Checker probes one dependency. Implementations must not panic or block past
// ctx; the aggregator guards against both anyway.
type Checker interface {
	Name() string
	Check(ctx context.Context) Result
}

type checkerFunc struct {
	name string
	fn   func(context.Context) Result
}

// Func adapts a function to the Checker interface.
func Func(name string, fn func(context.Context) Result) Checker {
	return &checkerFunc{name: name, fn: fn}
}

func (f *checkerFunc) Name() string {
	return f.name
}

func (f *checkerFunc) Check(ctx context.Context) Result {
	return f.fn(ctx)
}

// FromError turns an error-returning probe into a Result.
func FromError(err error) Result {
	if err != nil {
		return Unhealthy(err)
	}
	return Healthy()
}
