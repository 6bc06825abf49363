package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen/quotebook/internal/platform/logging"
)

// Write operations run as Validate → Perform → Verify → Respond.
//
//  1. VALIDATE - reject bad input before anything is touched
//  2. PERFORM  - apply the change (append to the saved list)
//  3. VERIFY   - confirm the returned state actually reflects the change
//  4. RESPOND  - shape the verified state for the caller
//
// A failure at any step stops the operation and is reported as an
// ExecutionError naming the step. The cause stays reachable through
// errors.Is / errors.As so the HTTP layer can still map domain errors.

// ExecutionStep names a stage of an operation.
type ExecutionStep string

const (
	StepValidate ExecutionStep = "validate"
	StepPerform  ExecutionStep = "perform"
	StepVerify   ExecutionStep = "verify"
	StepRespond  ExecutionStep = "respond"
)

// ErrNotVerified is returned by Verify hooks when the performed state does
// not contain what the operation was supposed to produce.
var ErrNotVerified = errors.New("result not verified")

// ExecutionError records the step an operation failed at.
type ExecutionError struct {
	Step    ExecutionStep
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ExecutionError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s failed: %s", e.Step, e.Message)
	}

	return fmt.Sprintf("%s failed: %s: %v", e.Step, e.Message, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *ExecutionError) Unwrap() error {
	return e.Cause
}

func stepError(step ExecutionStep, message string, cause error) error {
	return &ExecutionError{Step: step, Message: message, Cause: cause}
}

// Operation bundles the hooks of one use case.
// I is the input, P what Perform produced, V the verified state and O the
// caller-facing result. Nil hooks are skipped.
type Operation[I, P, V, O any] struct {
	// Name is logged as the "operation" attribute.
	Name string

	Validate func(ctx context.Context, input I) error
	Perform  func(ctx context.Context, input I) (P, error)
	Verify   func(ctx context.Context, input I, performed P) (V, error)
	Respond  func(ctx context.Context, input I, verified V) (O, error)
}

// Executor runs operations and logs each step.
type Executor struct {
	logger *slog.Logger
}

// NewExecutor creates an executor. A nil logger falls back to slog.Default.
func NewExecutor(logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}

	return &Executor{logger: logger}
}

// loggerFor prefers the request-scoped logger stored in ctx.
func (e *Executor) loggerFor(ctx context.Context, name string) *slog.Logger {
	return logging.FromContextOr(ctx, e.logger).With(slog.String("operation", name))
}

// Execute runs op against input.
func Execute[I, P, V, O any](ctx context.Context, exec *Executor, op Operation[I, P, V, O], input I) (O, error) {
	var zero O

	logger := exec.loggerFor(ctx, op.Name)
	start := time.Now()

	if op.Validate != nil {
		if err := op.Validate(ctx, input); err != nil {
			logger.WarnContext(ctx, "validation failed", slog.Any("error", err))

			return zero, stepError(StepValidate, "input validation failed", err)
		}

		logger.DebugContext(ctx, "validation passed")
	}

	var performed P

	if op.Perform != nil {
		var err error

		performed, err = op.Perform(ctx, input)
		if err != nil {
			logger.WarnContext(ctx, "perform failed", slog.Any("error", err))

			return zero, stepError(StepPerform, "operation failed", err)
		}

		logger.DebugContext(ctx, "operation performed")
	}

	var verified V

	if op.Verify != nil {
		var err error

		verified, err = op.Verify(ctx, input, performed)
		if err != nil {
			logger.ErrorContext(ctx, "verification failed", slog.Any("error", err))

			return zero, stepError(StepVerify, "verification failed", err)
		}

		logger.DebugContext(ctx, "result verified")
	}

	if op.Respond == nil {
		return zero, nil
	}

	result, err := op.Respond(ctx, input, verified)
	if err != nil {
		logger.WarnContext(ctx, "respond failed", slog.Any("error", err))

		return zero, stepError(StepRespond, "response formatting failed", err)
	}

	logger.InfoContext(ctx, "operation completed", slog.Duration("duration", time.Since(start)))

	return result, nil
}

// FailedStep returns the step recorded in err, if any.
func FailedStep(err error) (ExecutionStep, bool) {
	var execErr *ExecutionError
	if errors.As(err, &execErr) {
		return execErr.Step, true
	}

	return "", false
}
