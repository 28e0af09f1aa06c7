package quickquery

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/oagudo/quickquery/internal/logging"
)

// QuickQuery runs statements that return no rows, optionally checking how many
// rows they affected. It holds no state between calls and is safe for
// concurrent use.
type QuickQuery struct {
	provider ConnectionProvider
	dialect  SQLDialect
	txOpts   *sql.TxOptions
	logger   *slog.Logger
}

// Option is a function that configures a QuickQuery instance.
type Option func(*QuickQuery)

// WithTxOptions sets the options used to begin the transaction of guarded
// executions (e.g. the isolation level).
// Default is nil, the driver's defaults.
func WithTxOptions(opts *sql.TxOptions) Option {
	return func(q *QuickQuery) {
		q.txOpts = opts
	}
}

// WithLogger sets the logger used for debug records of successful executions.
// Failures are never logged, they are returned to the caller.
// Default discards all records.
func WithLogger(logger *slog.Logger) Option {
	return func(q *QuickQuery) {
		if logger != nil {
			q.logger = logger
		}
	}
}

// New creates a new QuickQuery from a standard *sql.DB.
// Each call takes a dedicated connection from the pool and returns it when done.
func New(db *sql.DB, dialect SQLDialect, opts ...Option) *QuickQuery {
	return NewWithProvider(NewConnectionProvider(db), dialect, opts...)
}

// NewWithProvider creates a new QuickQuery with a custom ConnectionProvider.
// This is useful for users who want to provide their own connection handling or for testing.
func NewWithProvider(provider ConnectionProvider, dialect SQLDialect, opts ...Option) *QuickQuery {
	q := &QuickQuery{
		provider: provider,
		dialect:  dialect,
		logger:   logging.Noop(),
	}

	for _, opt := range opts {
		opt(q)
	}

	return q
}

// WithoutReturn runs the given statement and discards the number of affected rows.
// No transaction is started, the statement is committed according to the
// driver's default behaviour.
func (q *QuickQuery) WithoutReturn(ctx context.Context, query string, params Parameters) error {
	cmd, err := buildCommand(q.dialect, query, params)
	if err != nil {
		return err
	}

	conn, err := q.provider.Provide(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = conn.Close()
	}()

	affected, err := executeCommand(ctx, conn, cmd)
	if err != nil {
		return err
	}

	q.logger.DebugContext(ctx, "statement executed",
		"command_id", cmd.id,
		"affected", affected)

	return nil
}

// WithoutReturnAffecting runs the given statement within a transaction and
// commits it only if the number of affected rows satisfies policy.
//
// Otherwise the transaction is rolled back and an *UnexpectedRowCountError is
// returned. Driver errors are returned unchanged, also after a rollback.
//
// Example:
//
//	err := q.WithoutReturnAffecting(ctx,
//	    "UPDATE accounts SET balance = balance - @amount WHERE id = @id AND balance >= @amount",
//	    quickquery.Exactly(1),
//	    quickquery.Parameters{"id": accountID, "amount": amount})
//	if errors.Is(err, quickquery.ErrUnexpectedRowCount) {
//	    // nothing was changed
//	}
func (q *QuickQuery) WithoutReturnAffecting(ctx context.Context, query string, policy RowCountPolicy, params Parameters) error {
	if err := policy.validate(); err != nil {
		return err
	}

	cmd, err := buildCommand(q.dialect, query, params)
	if err != nil {
		return err
	}

	conn, err := q.provider.Provide(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = conn.Close()
	}()

	b, err := openBoundary(ctx, conn, q.txOpts)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		_ = b.Close()
	}()

	affected, err := executeCommand(ctx, b.tx, cmd)
	if err != nil {
		return err
	}

	if !policy.Allows(affected) {
		return &UnexpectedRowCountError{
			CommandID: cmd.id,
			Query:     cmd.query,
			Policy:    policy,
			Affected:  affected,
		}
	}

	if err := b.Complete(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	q.logger.DebugContext(ctx, "statement committed",
		"command_id", cmd.id,
		"affected", affected,
		"policy", policy.String())

	return nil
}

// WithoutReturnAffectingExactlyOneRow runs the given statement and rolls it back
// with an *UnexpectedRowCountError unless it affected exactly one row.
func (q *QuickQuery) WithoutReturnAffectingExactlyOneRow(ctx context.Context, query string, params Parameters) error {
	return q.WithoutReturnAffectingExactlyNRows(ctx, query, 1, params)
}

// WithoutReturnAffectingOneRowOrLess runs the given statement and rolls it back
// with an *UnexpectedRowCountError if it affected more than one row.
func (q *QuickQuery) WithoutReturnAffectingOneRowOrLess(ctx context.Context, query string, params Parameters) error {
	return q.WithoutReturnAffectingNRowsOrLess(ctx, query, 1, params)
}

// WithoutReturnAffectingExactlyNRows runs the given statement and rolls it back
// with an *UnexpectedRowCountError unless it affected exactly n rows.
func (q *QuickQuery) WithoutReturnAffectingExactlyNRows(ctx context.Context, query string, n int64, params Parameters) error {
	return q.WithoutReturnAffecting(ctx, query, Exactly(n), params)
}

// WithoutReturnAffectingNRowsOrLess runs the given statement and rolls it back
// with an *UnexpectedRowCountError if it affected more than n rows.
func (q *QuickQuery) WithoutReturnAffectingNRowsOrLess(ctx context.Context, query string, n int64, params Parameters) error {
	return q.WithoutReturnAffecting(ctx, query, AtMost(n), params)
}
