package main

import (
	"fmt"

	"ai-counsellor-be/internal/repository/unitofwork"
	"ai-counsellor-be/pkg/database"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the built-in university catalog into an empty database",
	RunE:  runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}

	created, err := database.SeedCatalog(cmd.Context(), unitofwork.NewRepositoryFactory(db), database.DefaultCatalog())
	if err != nil {
		return err
	}
	if created == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Catalog already present, nothing seeded")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d universities\n", created)
	return nil
}
