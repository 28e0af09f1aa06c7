package quickquery

import (
	"context"
	"database/sql"
)

// Execer executes a statement that returns no rows.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Tx represents a database transaction.
// It is compatible with the standard sql.Tx type.
type Tx interface {
	Execer
	Commit() error
	Rollback() error
}

// Conn represents a single database connection.
// It is compatible with the standard sql.Conn type.
type Conn interface {
	Execer
	BeginTx(ctx context.Context, opts *sql.TxOptions) (Tx, error)
	Close() error
}

// ConnectionProvider hands out a connection for the duration of one call.
// The caller closes the returned Conn exactly once.
type ConnectionProvider interface {
	Provide(ctx context.Context) (Conn, error)
}

// NewConnectionProvider returns a ConnectionProvider that takes dedicated
// connections from the pool of a standard *sql.DB.
func NewConnectionProvider(db *sql.DB) ConnectionProvider {
	return &dbProvider{db: db}
}

// dbProvider is a wrapper around a sql.DB that implements the ConnectionProvider interface.
type dbProvider struct {
	db *sql.DB
}

func (p *dbProvider) Provide(ctx context.Context) (Conn, error) {
	conn, err := p.db.Conn(ctx)
	if err != nil {
		return nil, err
	}
	return &connAdapter{conn: conn}, nil
}

// connAdapter is a wrapper around a sql.Conn that implements the Conn interface.
type connAdapter struct {
	conn *sql.Conn
}

func (a *connAdapter) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return a.conn.ExecContext(ctx, query, args...)
}

func (a *connAdapter) BeginTx(ctx context.Context, opts *sql.TxOptions) (Tx, error) {
	tx, err := a.conn.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &txAdapter{tx}, nil
}

// Close returns the connection to the pool.
func (a *connAdapter) Close() error {
	return a.conn.Close()
}

// txAdapter is a wrapper around a sql.Tx that implements the Tx interface.
type txAdapter struct {
	tx *sql.Tx
}

func (a *txAdapter) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return a.tx.ExecContext(ctx, query, args...)
}

func (a *txAdapter) Commit() error {
	return a.tx.Commit()
}

func (a *txAdapter) Rollback() error {
	return a.tx.Rollback()
}
