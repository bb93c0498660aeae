package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mghazyfawazh/smart-attendance/internal/config"
	"github.com/mghazyfawazh/smart-attendance/internal/logging"
	"github.com/mghazyfawazh/smart-attendance/internal/repo"
	"github.com/mghazyfawazh/smart-attendance/internal/schedule"
)

type migrateOptions struct {
	dryRun bool
}

func newMigrateCmd() *cobra.Command {
	var opts migrateOptions

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Flatten legacy teacher timetables into the schedules collection",
		Long: "Copies every period of teachers.schedule.timetable into schedules. " +
			"Does nothing if schedules already holds any document. Run it once, from one place.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd.Context(), opts)
		},
	}
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Scan and report without writing")
	return cmd
}

func runMigrate(ctx context.Context, opts migrateOptions) error {
	cfg := config.LoadConfig()
	logger, err := logging.New(cfg.Development())
	if err != nil {
		return err
	}
	defer logger.Sync()

	logger.Info("connecting", zap.String("db", cfg.DBName))
	client, err := repo.Connect(ctx, cfg.MongoURI, cfg.ConnectTimeout)
	if err != nil {
		return fmt.Errorf("connect mongo: %w", err)
	}
	defer client.Disconnect(context.Background())
	db := client.Database(cfg.DBName)

	m := &schedule.Migrator{
		Entries: repo.NewMongoRepo(ctx, db.Collection("schedules"), false, logger),
		Legacy:  repo.NewLegacyRepo(db, logger),
		Log:     logger,
		DryRun:  opts.dryRun,
	}
	res, err := m.Run(ctx)
	if err != nil {
		return err
	}

	switch {
	case res.Existing > 0:
		fmt.Printf("schedules already has %d documents, skipped (clear it manually first)\n", res.Existing)
	case res.Migrated == 0:
		fmt.Println("no schedule data found to migrate")
	case res.DryRun:
		fmt.Printf("dry run: would migrate %d entries, %d skipped\n", res.Migrated, res.Skipped)
	default:
		fmt.Printf("migrated %d entries, %d skipped\n", res.Migrated, res.Skipped)
	}
	return nil
}

func main() {
	if err := newMigrateCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
