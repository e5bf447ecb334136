package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/iudanet/accountbox/internal/cli"
	"github.com/iudanet/accountbox/internal/query"
	"github.com/iudanet/accountbox/internal/session"
	"github.com/iudanet/accountbox/internal/storage/boltdb"
	"github.com/iudanet/accountbox/internal/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	accountsPath := flag.String("db", "accountbox.db", "Path to the account database")
	sessionPath := flag.String("session-db", "accountbox-session.db", "Path to the session database")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	ctx := context.Background()

	accountStorage, err := sqlite.New(ctx, *accountsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open account database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := accountStorage.Close(); err != nil {
			slog.Error("failed to close account database", "error", err)
		}
	}()

	sessionStorage, err := boltdb.New(ctx, *sessionPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open session database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := sessionStorage.Close(); err != nil {
			slog.Error("failed to close session database", "error", err)
		}
	}()

	manager := session.NewManager(accountStorage, sessionStorage)
	queries := query.NewService(accountStorage)
	app := cli.New(manager, queries, sessionStorage, os.Stdin, os.Stdout)

	args := flag.Args()
	if len(args) == 0 {
		app.PrintUsage()
		os.Exit(1)
	}

	if err := app.Run(ctx, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("accountbox\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
