package exec

import (
	"context"

	"github.com/urfave/cli/v3"
)

var Cmd = &cli.Command{
	Name:  "exec",
	Usage: "Execute a statement that returns no rows",
	Flags: flags(),
	Action: func(ctx context.Context, cmd *cli.Command) error {
		cfg, err := newConfig(cmd)
		if err != nil {
			return err
		}
		return Run(ctx, cfg)
	},
}

func flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "dialect",
			Usage: "SQL dialect (postgres, mysql, mariadb, sqlite, oracle, sqlserver)",
			Value: "sqlite",
		},
		&cli.StringFlag{
			Name:  "driver",
			Usage: "database/sql driver name, defaults to the dialect's driver (e.g. pgx for postgres)",
		},
		&cli.StringFlag{
			Name:     "dsn",
			Usage:    "Data source name passed to the driver",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "sql",
			Usage:    "Statement to run, with @name placeholders",
			Required: true,
		},
		&cli.StringSliceFlag{
			Name:  "param",
			Usage: "Parameter as name=value, may be repeated",
		},
		&cli.Int64Flag{
			Name:  "exactly",
			Usage: "Roll back unless exactly N rows are affected (mutually exclusive with --at-most)",
		},
		&cli.Int64Flag{
			Name:  "at-most",
			Usage: "Roll back if more than N rows are affected (mutually exclusive with --exactly)",
		},
	}
}
