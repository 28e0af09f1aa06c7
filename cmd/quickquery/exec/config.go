package exec

import (
	"fmt"
	"strings"

	"github.com/oagudo/quickquery"
	"github.com/urfave/cli/v3"
)

// drivers maps each dialect to the database/sql driver registered for it by default.
var drivers = map[quickquery.SQLDialect]string{
	quickquery.SQLDialectPostgres:  "postgres",
	quickquery.SQLDialectMySQL:     "mysql",
	quickquery.SQLDialectMariaDB:   "mysql",
	quickquery.SQLDialectSQLite:    "sqlite3",
	quickquery.SQLDialectOracle:    "oracle",
	quickquery.SQLDialectSQLServer: "sqlserver",
}

type Config struct {
	Dialect quickquery.SQLDialect
	Driver  string
	DSN     string
	SQL     string
	Params  quickquery.Parameters

	// Policy is nil when no row count check was requested.
	Policy *quickquery.RowCountPolicy
}

func newConfig(cmd *cli.Command) (Config, error) {
	cfg := Config{
		Dialect: quickquery.SQLDialect(cmd.String("dialect")),
		Driver:  cmd.String("driver"),
		DSN:     cmd.String("dsn"),
		SQL:     cmd.String("sql"),
	}

	if cfg.Driver == "" {
		driver, ok := drivers[cfg.Dialect]
		if !ok {
			return Config{}, fmt.Errorf("unknown dialect %q", cfg.Dialect)
		}
		cfg.Driver = driver
	}

	params, err := parseParams(cmd.StringSlice("param"))
	if err != nil {
		return Config{}, err
	}
	cfg.Params = params

	policy, err := parsePolicy(int64Flag(cmd, "exactly"), int64Flag(cmd, "at-most"))
	if err != nil {
		return Config{}, err
	}
	cfg.Policy = policy

	return cfg, nil
}

func parseParams(pairs []string) (quickquery.Parameters, error) {
	kv := make([]any, 0, len(pairs)*2)
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --param %q: want name=value", pair)
		}
		kv = append(kv, name, value)
	}
	return quickquery.Params(kv...)
}

// int64Flag returns the value of the named flag, or nil when it was not set.
func int64Flag(cmd *cli.Command, name string) *int64 {
	if !cmd.IsSet(name) {
		return nil
	}
	n := cmd.Int64(name)
	return &n
}

func parsePolicy(exactly, atMost *int64) (*quickquery.RowCountPolicy, error) {
	if exactly != nil && atMost != nil {
		return nil, fmt.Errorf("cannot specify both --exactly and --at-most")
	}

	var policy quickquery.RowCountPolicy
	switch {
	case exactly != nil:
		policy = quickquery.Exactly(*exactly)
	case atMost != nil:
		policy = quickquery.AtMost(*atMost)
	default:
		return nil, nil
	}

	return &policy, nil
}
