package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/neonsoul/neonsoul/internal/client/api"
	"github.com/neonsoul/neonsoul/internal/client/cli"
	"github.com/neonsoul/neonsoul/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:5000", "Server URL")
	dbPath := flag.String("db", "neonsoul-client.db", "Path to local database")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]

	ctx := context.Background()

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	// Создаем API клиент и CLI
	apiClient := api.NewClient(*serverURL)
	c := cli.New(apiClient, boltStorage)

	// Выполняем команду
	var cmdErr error
	switch command {
	case "register":
		cmdErr = c.RunRegister(ctx)
	case "login":
		cmdErr = c.RunLogin(ctx)
	case "logout":
		cmdErr = c.RunLogout(ctx)
	case "status":
		cmdErr = c.RunStatus(ctx)
	case "avatar":
		cmdErr = c.RunAvatar(ctx, args[1:])
	case "feed":
		cmdErr = c.RunFeed(ctx)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		cli.PrintUsage()
		os.Exit(1)
	}

	if cmdErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", cmdErr)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("NEONSOUL Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
