package main

import (
	"context"
	"fmt"
	"os"

	"github.com/oagudo/quickquery/cmd/quickquery/exec"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "quickquery",
		Usage: "Run SQL statements with row count checks",
		Commands: []*cli.Command{
			exec.Cmd,
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
