package main

import (
	"database/sql"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-WeddingBooking/internal/config"
	"github.com/m04kA/SMC-WeddingBooking/migrations"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Миграции схемы базы данных",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Применить все миграции",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withDB(func(db *sql.DB) error {
					return reportChange(cmd.OutOrStdout(), "up")(migrations.Up(db))
				})
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Откатить все миграции",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withDB(func(db *sql.DB) error {
					return reportChange(cmd.OutOrStdout(), "down")(migrations.Down(db))
				})
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Показать текущую версию схемы",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withDB(func(db *sql.DB) error {
					version, dirty, err := migrations.Version(db)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "version=%d dirty=%t\n", version, dirty)
					return nil
				})
			},
		},
	)
	return cmd
}

func withDB(fn func(db *sql.DB) error) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := openDB(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	return fn(db)
}

func reportChange(out io.Writer, direction string) func(changed bool, err error) error {
	return func(changed bool, err error) error {
		if err != nil {
			return fmt.Errorf("migrate %s: %w", direction, err)
		}
		if !changed {
			fmt.Fprintln(out, "no change")
			return nil
		}
		fmt.Fprintf(out, "migrated %s\n", direction)
		return nil
	}
}
