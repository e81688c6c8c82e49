package main

import (
	"fmt"

	"ai-counsellor-be/pkg/database"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "up",
	Short: "Create or update every table with gorm AutoMigrate",
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warn: pgcrypto extension: %v\n", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Migrated %d tables\n", len(database.Models()))
	return nil
}
