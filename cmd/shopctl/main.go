package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	authProcessor "shop-admin/internal/auth/processor"
	"shop-admin/internal/bootstrap"
	"shop-admin/internal/config"
	"shop-admin/internal/observability"
	"shop-admin/internal/store"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "shopctl",
		Usage: "operate the shop-admin database and Stripe catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "log level for workflow output on stderr",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "migrate",
				Usage:  "apply database migrations",
				Action: runMigrate,
			},
			{
				Name:      "hash-password",
				Usage:     "print a bcrypt hash for ADMIN_PASSWORD_HASH",
				ArgsUsage: "[password]",
				Action:    runHashPassword,
			},
			{
				Name:      "sync",
				Usage:     "sync a stored product to Stripe and persist the references",
				ArgsUsage: "<product-id>",
				Action:    runSync,
			},
			{
				Name:      "archive",
				Usage:     "archive a stored product's Stripe objects",
				ArgsUsage: "<product-id>",
				Action:    runArchive,
			},
		},
	}
}

func runMigrate(c *cli.Context) error {
	dbConfig, err := config.LoadDatabase()
	if err != nil {
		return err
	}
	if err := store.Migrate(c.Context, dbConfig.ConnectionString()); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	fmt.Fprintln(c.App.Writer, "migrations applied")
	return nil
}

func runHashPassword(c *cli.Context) error {
	password := c.Args().First()
	if password == "" {
		line, err := bufio.NewReader(c.App.Reader).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read password: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}
	if password == "" {
		return cli.Exit("password is required", 1)
	}

	hash, err := authProcessor.HashPassword(password)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, hash)
	return nil
}

func runSync(c *cli.Context) error {
	return withWorkflows(c, func(ctx context.Context, productID uuid.UUID, workflows bootstrap.Workflows) error {
		result, err := workflows.Products.ResyncProduct(ctx, productID)
		if err != nil {
			return err
		}
		if err := printJSON(c.App.Writer, result); err != nil {
			return err
		}
		if !result.Synced {
			return cli.Exit("sync failed", 1)
		}
		return nil
	})
}

func runArchive(c *cli.Context) error {
	return withWorkflows(c, func(ctx context.Context, productID uuid.UUID, workflows bootstrap.Workflows) error {
		result := workflows.Archiver.Archive(ctx, productID)
		return printJSON(c.App.Writer, result)
	})
}

// withWorkflows parses the product id argument and wires the store and
// Stripe client for one command.
func withWorkflows(c *cli.Context, run func(context.Context, uuid.UUID, bootstrap.Workflows) error) error {
	productID, err := uuid.Parse(c.Args().First())
	if err != nil {
		return cli.Exit("a valid product id is required", 1)
	}

	dbConfig, err := config.LoadDatabase()
	if err != nil {
		return err
	}
	logger := observability.NewLoggerWithOptions(observability.Options{Level: c.String("log-level")})
	defer func() { _ = logger.Sync() }()

	productStore, err := store.New(dbConfig.ConnectionString(), logger)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer productStore.Close()

	stripeClient := bootstrap.NewStripeClient(config.LoadStripe(), logger)
	return run(c.Context, productID, bootstrap.NewWorkflows(&productStore, stripeClient, logger))
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
