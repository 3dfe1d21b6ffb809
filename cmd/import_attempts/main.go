package main

import (
	"context"
	"fmt"
	"os"

	"ai-tutor/internal/config"
	"ai-tutor/internal/database"
	"ai-tutor/internal/logger"
	"ai-tutor/internal/repository"
	"ai-tutor/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	var (
		csvPath   string
		replace   bool
		migrate   bool
		batchSize int
	)

	cmd := &cobra.Command{
		Use:   "import_attempts",
		Short: "Copy an attempts CSV into the configured SQL database",
		Long: "Reads a student_id,concept_tags,correct,response_time CSV and inserts every row into the " +
			"ATTEMPTS table of the sqlite or oracle database selected by db.driver.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if err := logger.Initialize(cfg.Logger); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer logger.Sync()
			log := logger.Get()

			if csvPath == "" {
				csvPath = cfg.Dataset.Path
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			log.Info("Reading attempts", zap.String("path", csvPath))
			attempts, err := repository.NewCSVAttemptSource(csvPath).Load(ctx)
			if err != nil {
				return err
			}

			db, err := database.Open(ctx, cfg.DB.Driver, cfg.GetDSN())
			if err != nil {
				return err
			}
			defer db.Close()

			if migrate {
				if err := database.Migrate(ctx, db, cfg.DB.Driver); err != nil {
					return err
				}
			}

			importer := service.NewImportService(
				repository.NewSQLAttemptWriter(db),
				repository.NewTransactionManagerAdapter(db),
				batchSize,
			)
			n, err := importer.Import(ctx, attempts, replace)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d attempts into %s\n", n, cfg.DB.Driver)
			return nil
		},
	}

	cmd.Flags().StringVarP(&csvPath, "file", "f", "", "CSV file to import (defaults to dataset.path)")
	cmd.Flags().BoolVar(&replace, "replace", false, "delete existing attempts before importing")
	cmd.Flags().BoolVar(&migrate, "migrate", true, "create the ATTEMPTS table first if needed")
	cmd.Flags().IntVar(&batchSize, "batch-size", 1000, "rows per insert batch")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
