// Package main provides masteryctl, an offline report CLI over the attempt dataset.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ai-tutor/internal/config"
	"ai-tutor/internal/dataset"
	"ai-tutor/internal/domain"
	"ai-tutor/internal/logger"
	"ai-tutor/internal/service"
	"ai-tutor/internal/store"
	"ai-tutor/internal/validation"
)

var (
	flagSource      string
	flagPath        string
	flagThreshold   float64
	flagMinAttempts int
	flagJSON        bool
	flagLogLevel    string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "masteryctl",
		Short:        "Concept-mastery reports over recorded quiz attempts",
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagSource, "source", "", "attempt source: csv, sqlite or oracle (default from config)")
	pf.StringVar(&flagPath, "path", "", "CSV path when --source=csv (default from config)")
	pf.Float64Var(&flagThreshold, "threshold", domain.DefaultWeakAccuracyThreshold, "accuracy below which a concept can be weak")
	pf.IntVar(&flagMinAttempts, "min-attempts", domain.DefaultWeakMinAttempts, "attempts needed before a concept can be weak")
	pf.BoolVar(&flagJSON, "json", false, "print JSON instead of a table")
	pf.StringVar(&flagLogLevel, "log-level", "warn", "log level")

	rootCmd.AddCommand(newStudentsCmd())
	rootCmd.AddCommand(newSummaryCmd())
	rootCmd.AddCommand(newWeakCmd())
	rootCmd.AddCommand(newCatalogCmd())
	rootCmd.AddCommand(newCohortCmd())

	return rootCmd
}

// loadAnalytics builds the same AnalyticsService the API uses, over a one-shot snapshot.
func loadAnalytics(cmd *cobra.Command) (service.AnalyticsService, func() error, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("source") {
		cfg.Dataset.Source = flagSource
	}
	if cmd.Flags().Changed("path") {
		cfg.Dataset.Path = flagPath
	}
	if cmd.Flags().Changed("threshold") {
		cfg.Mastery.WeakAccuracyThreshold = flagThreshold
	}
	if cmd.Flags().Changed("min-attempts") {
		cfg.Mastery.WeakMinAttempts = flagMinAttempts
	}
	cfg.Logger.Level = flagLogLevel
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	src, closeSource, err := dataset.OpenSource(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	holder, err := store.NewHolder(ctx, src)
	if err != nil {
		closeSource()
		return nil, nil, err
	}

	svc := service.NewAnalyticsService(holder, domain.NewMasteryAggregator(dataset.Policy(cfg)), cfg)
	return svc, closeSource, nil
}

func parseStudentArg(raw string) (int64, error) {
	id, errs := validation.NewValidator().ValidateStudentID(raw)
	if len(errs) > 0 {
		return 0, errs
	}
	return id, nil
}

func newStudentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "students",
		Short: "List student IDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, closeFn, err := loadAnalytics(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			resp, err := svc.ListStudents(cmd.Context())
			if err != nil {
				return err
			}
			if flagJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			return renderStudents(cmd.OutOrStdout(), resp)
		},
	}
}

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary <student_id>",
		Short: "Show overall and per-concept stats for a student",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseStudentArg(args[0])
			if err != nil {
				return err
			}
			svc, closeFn, err := loadAnalytics(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			resp, err := svc.GetStudentSummary(cmd.Context(), id)
			if err != nil {
				return err
			}
			if flagJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			return renderSummary(cmd.OutOrStdout(), resp)
		},
	}
}

func newWeakCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "weak <student_id>",
		Short: "Show weak concepts for a student",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseStudentArg(args[0])
			if err != nil {
				return err
			}
			svc, closeFn, err := loadAnalytics(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			resp, err := svc.GetWeakTopics(cmd.Context(), id)
			if err != nil {
				return err
			}
			if flagJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			return renderWeak(cmd.OutOrStdout(), resp)
		},
	}
}

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List every concept in the dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, closeFn, err := loadAnalytics(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			resp, err := svc.GetConceptCatalog(cmd.Context())
			if err != nil {
				return err
			}
			if flagJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			return renderCatalog(cmd.OutOrStdout(), resp)
		},
	}
}

func newCohortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cohort",
		Short: "Rank concepts by how many students are weak in them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, closeFn, err := loadAnalytics(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			resp, err := svc.GetCohortWeakTopics(cmd.Context())
			if err != nil {
				return err
			}
			if flagJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			return renderCohort(cmd.OutOrStdout(), resp)
		},
	}
}
