package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coursekit/video-api/internal/database"
	"github.com/coursekit/video-api/internal/models"
	"github.com/coursekit/video-api/pkg/config"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Apply the database schema for the Course Video API.

Migrations are driven by GORM auto-migration over the registered models:
videos, transcripts and playback states. Running the command is idempotent;
existing tables are altered in place where the schema changed.`,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.Flags().Bool("dry-run", false, "list the models that would be migrated without touching the database")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	if dryRun {
		fmt.Println("Dry run mode - no changes will be made")
		for _, model := range models.AllModels() {
			fmt.Printf("  would migrate %T\n", model)
		}
		return nil
	}

	db, err := database.InitializeWithMigrations()
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	defer db.Close()

	fmt.Printf("Migrated %d model(s) in %s\n", len(models.AllModels()), config.GetString("database.path"))
	return nil
}
