package dbretry

import (
	"context"
	"errors"

	"github.com/atelier-dourado/backoffice/pkg/composables"
	"github.com/atelier-dourado/backoffice/pkg/configuration"
	"github.com/atelier-dourado/backoffice/pkg/serrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sethvargo/go-retry"
)

// SQLSTATE codes considered transient. These are infrastructure races
// (pooled connections handing out stale prepared statements, connection
// drops, pool exhaustion), not application errors. Constraint
// violations and not-found are deliberately absent: retrying those can
// never succeed.
var transientCodes = map[string]struct{}{
	"42P05": {}, // duplicate_prepared_statement
	"08000": {}, // connection_exception
	"08003": {}, // connection_does_not_exist
	"08006": {}, // connection_failure
	"53300": {}, // too_many_connections
	"57P01": {}, // admin_shutdown
}

// IsTransient classifies err by SQLSTATE rather than message text,
// which is backend-version-fragile.
func IsTransient(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		_, ok := transientCodes[pgErr.Code]
		return ok
	}
	return false
}

// Executor runs single persistence statements with bounded retry on
// transient backend errors. Safe only because each operation is one
// atomic statement (or one committed transaction), never a multi-step
// unit with partial effects.
type Executor struct {
	opts configuration.RetryOptions
}

func NewExecutor(opts configuration.RetryOptions) *Executor {
	return &Executor{opts: opts}
}

// Do executes op, retrying recognized transient errors with fibonacci
// backoff up to the configured attempt bound. The final transient error
// is translated into a stable TRANSIENT kind; non-transient errors
// surface immediately and untranslated.
func (e *Executor) Do(ctx context.Context, name string, op func(context.Context) error) error {
	trace := composables.UseTrace(ctx)
	logger := composables.UseLogger(ctx)

	backoff := retry.NewFibonacci(e.opts.InitialDelay)
	if e.opts.MaxTotalDelay > 0 {
		backoff = retry.WithCappedDuration(e.opts.MaxTotalDelay, backoff)
	}
	backoff = retry.WithMaxRetries(uint64(e.opts.MaxAttempts-1), backoff)

	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		opErr := op(ctx)
		if opErr == nil {
			if attempt > 1 {
				trace.Add("db: %s succeeded on attempt %d", name, attempt)
			}
			return nil
		}
		if IsTransient(opErr) {
			trace.Add("db: %s transient failure on attempt %d: %v", name, attempt, opErr)
			logger.WithError(opErr).WithField("attempt", attempt).Warnf("transient backend error in %s", name)
			return retry.RetryableError(opErr)
		}
		return opErr
	})
	if err == nil {
		return nil
	}
	if IsTransient(err) {
		trace.Add("db: %s gave up after %d attempt(s)", name, attempt)
		return serrors.NewTransient("backend temporarily unavailable, try again")
	}
	return err
}
