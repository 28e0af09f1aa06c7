package quickquery

import (
	"context"
	"database/sql"
)

type boundaryState int

const (
	boundaryPending boundaryState = iota
	boundaryCompleted
	boundaryRolledBack
)

// boundary scopes a transaction that is rolled back on Close unless Complete
// committed it first.
type boundary struct {
	tx    Tx
	state boundaryState
}

func openBoundary(ctx context.Context, conn Conn, opts *sql.TxOptions) (*boundary, error) {
	tx, err := conn.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &boundary{tx: tx}, nil
}

// Complete commits the transaction. A failed commit leaves the boundary
// pending so that Close still attempts a rollback.
func (b *boundary) Complete() error {
	if b.state != boundaryPending {
		return ErrBoundaryClosed
	}
	if err := b.tx.Commit(); err != nil {
		return err
	}
	b.state = boundaryCompleted
	return nil
}

// Close rolls back the transaction if it was not completed.
// Calling Close more than once is safe.
func (b *boundary) Close() error {
	if b.state != boundaryPending {
		return nil
	}
	b.state = boundaryRolledBack
	return b.tx.Rollback()
}
