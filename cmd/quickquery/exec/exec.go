package exec

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	_ "github.com/denisenkom/go-mssqldb"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	_ "github.com/sijms/go-ora/v2"

	"github.com/oagudo/quickquery"
	"github.com/oagudo/quickquery/internal/logging"
)

func Run(ctx context.Context, cfg Config) error {
	logger := logging.New(os.Stderr)

	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)
	db.SetConnMaxIdleTime(1 * time.Minute)

	q := quickquery.New(db, cfg.Dialect, quickquery.WithLogger(logger))

	if cfg.Policy == nil {
		if err := q.WithoutReturn(ctx, cfg.SQL, cfg.Params); err != nil {
			logger.Error("statement failed", "dialect", cfg.Dialect, "error", err.Error())
			return err
		}
		fmt.Println("OK")
		return nil
	}

	err = q.WithoutReturnAffecting(ctx, cfg.SQL, *cfg.Policy, cfg.Params)
	var rowErr *quickquery.UnexpectedRowCountError
	switch {
	case errors.As(err, &rowErr):
		logger.Warn("row count check failed, statement rolled back",
			"command_id", rowErr.CommandID.String(),
			"affected", rowErr.Affected,
			"policy", rowErr.Policy.String())
		return err
	case err != nil:
		logger.Error("statement failed", "dialect", cfg.Dialect, "error", err.Error())
		return err
	}

	fmt.Printf("OK (%s rows)\n", cfg.Policy)
	return nil
}
