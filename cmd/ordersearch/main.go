package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"order_search/internal/app/config"
)

var app *cli.App

func init() {
	app = &cli.App{
		Name:    filepath.Base(os.Args[0]),
		Usage:   "search orders and print the order search page from the terminal",
		Version: "0.1.0",
		Before: func(*cli.Context) error {
			config.LoadEnv()
			return nil
		},
	}

	app.Commands = []*cli.Command{
		tableCommand,
		detailCommand,
		tokenCommand,
		seedCommand,
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
