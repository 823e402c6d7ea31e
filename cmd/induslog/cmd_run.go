package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/rob21runner/induslog/internal/config"
	"github.com/rob21runner/induslog/internal/sim"
	"github.com/rob21runner/induslog/internal/storage"
	"github.com/rob21runner/induslog/pkg/logger"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate one simulated day of clickstream logs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}

			// Flags override file and environment when set explicitly.
			if cmd.Flags().Changed("users") {
				cfg.Users, _ = cmd.Flags().GetInt("users")
			}
			if cmd.Flags().Changed("products") {
				cfg.Products, _ = cmd.Flags().GetInt("products")
			}
			if cmd.Flags().Changed("journeys") {
				cfg.JourneysPerHour, _ = cmd.Flags().GetInt("journeys")
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed, _ = cmd.Flags().GetInt64("seed")
			}
			if cmd.Flags().Changed("out") {
				cfg.OutputPath, _ = cmd.Flags().GetString("out")
			}

			logger.Init(cfg.LogMode == "prod")
			log := logger.Get()

			seed := cfg.Seed
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			rng := rand.New(rand.NewSource(seed))

			day := time.Now()
			if dateStr, _ := cmd.Flags().GetString("date"); dateStr != "" {
				day, err = time.ParseInLocation("2006-01-02", dateStr, time.Local)
				if err != nil {
					return fmt.Errorf("parse --date: %w", err)
				}
			}

			log.Infow("starting simulation",
				"day", day.Format("2006-01-02"),
				"seed", seed,
				"users", cfg.Users,
				"products", cfg.Products,
				"journeys_per_hour", cfg.JourneysPerHour,
				"output", cfg.OutputPath,
			)

			engine, err := sim.NewEngine(cfg, rng)
			if err != nil {
				return err
			}
			engine.RunDay(day)

			return storage.NewJSONFileSink().Write(engine.Entries(), cfg.OutputPath)
		},
	}

	cmd.Flags().String("config", "", "Path to a YAML config file")
	cmd.Flags().String("out", "", "Output file path (default app.json)")
	cmd.Flags().String("date", "", "Simulated day as YYYY-MM-DD (default today)")
	cmd.Flags().Int("users", 100, "User pool size")
	cmd.Flags().Int("products", 50, "Product catalog size")
	cmd.Flags().Int("journeys", 5, "Journeys started per simulated hour")
	cmd.Flags().Int64("seed", 0, "Random seed, 0 derives one from the current time")
	return cmd
}
