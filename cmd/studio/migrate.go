package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/macaddy2/leadskylab/internal/config"
	"github.com/macaddy2/leadskylab/internal/db"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	Long: `Create or update the products and contents tables.

With --status, list applied and pending migrations without changing anything.`,
	RunE: runMigrate,
}

var migrateFlags struct {
	status bool
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateFlags.status, "status", false, "show migration state only")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	store, err := db.NewStore(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer store.Close()

	if migrateFlags.status {
		status, err := store.MigrationStatus(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Database: %s\n", cfg.DatabasePath)
		for _, v := range status.Applied {
			fmt.Printf("  applied  %s\n", v)
		}
		for _, v := range status.Pending {
			fmt.Printf("  pending  %s\n", v)
		}
		return nil
	}

	done, err := store.Migrate(ctx)
	if err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	summary, err := store.Summary(ctx)
	if err != nil {
		return err
	}

	slog.Info("schema ready",
		"path", cfg.DatabasePath,
		"applied", len(done),
		"products", summary.Products,
		"drafts", summary.Drafts,
	)
	return nil
}
