package exec

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/oagudo/quickquery"
	"github.com/stretchr/testify/require"
)

func TestRunAgainstSQLite(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "exec.db")

	db, err := sql.Open("sqlite3", dsn)
	require.NoError(t, err)
	defer func() {
		_ = db.Close()
	}()
	_, err = db.Exec("CREATE TABLE entity (id INTEGER PRIMARY KEY, x INTEGER NOT NULL DEFAULT 0)")
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO entity (id) VALUES (1), (2)")
	require.NoError(t, err)

	cfg := Config{
		Dialect: quickquery.SQLDialectSQLite,
		Driver:  "sqlite3",
		DSN:     dsn,
		SQL:     "UPDATE entity SET x = 1",
	}

	policy := quickquery.Exactly(1)
	cfg.Policy = &policy
	err = Run(context.Background(), cfg)
	require.True(t, errors.Is(err, quickquery.ErrUnexpectedRowCount))

	var sum int
	require.NoError(t, db.QueryRow("SELECT SUM(x) FROM entity").Scan(&sum))
	require.Equal(t, 0, sum)

	cfg.SQL = "UPDATE entity SET x = 1 WHERE id = @id"
	cfg.Params = quickquery.Parameters{"id": "2"}
	require.NoError(t, Run(context.Background(), cfg))

	cfg.Policy = nil
	cfg.SQL = "UPDATE entity SET x = 1"
	cfg.Params = nil
	require.NoError(t, Run(context.Background(), cfg))

	require.NoError(t, db.QueryRow("SELECT SUM(x) FROM entity").Scan(&sum))
	require.Equal(t, 2, sum)
}
