package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/RewardEngine_Go/internal/database/generated"
	"github.com/osse101/RewardEngine_Go/internal/domain"
	"github.com/osse101/RewardEngine_Go/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

// beginTx opens a ledger transaction with lock_timeout scoped to it.
// A zero timeout leaves the server default in place.
func beginTx(ctx context.Context, db *pgxpool.Pool, q *generated.Queries, lockTimeout time.Duration) (*ledgerTx, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, translate(err))
	}
	ltx := &ledgerTx{tx: tx, q: q.WithTx(tx)}
	if lockTimeout > 0 {
		if err := ltx.q.SetLockTimeout(ctx, fmt.Sprintf("%dms", lockTimeout.Milliseconds())); err != nil {
			SafeRollback(ctx, tx)
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToSetLockTimeout, err)
		}
	}
	return ltx, nil
}

// translate maps lock and serialization failures onto domain.ErrContention so
// callers can retry them. Other errors pass through untouched.
func translate(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case PgErrorCodeLockNotAvailable, PgErrorCodeSerialization, PgErrorCodeDeadlockDetected:
		return fmt.Errorf("%w: %s", domain.ErrContention, pgErr.Message)
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation
}

// wrap prefixes err with msg after translating it.
func wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, translate(err))
}
