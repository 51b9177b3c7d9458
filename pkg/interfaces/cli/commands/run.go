package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/reliefops/aidcycle/pkg/application/services/allocation"
	"github.com/reliefops/aidcycle/pkg/application/services/assessment"
	"github.com/reliefops/aidcycle/pkg/application/services/execution"
	"github.com/reliefops/aidcycle/pkg/application/services/logistics"
	"github.com/reliefops/aidcycle/pkg/application/services/monitoring"
	"github.com/reliefops/aidcycle/pkg/application/services/orchestration"
	"github.com/reliefops/aidcycle/pkg/domain/entities"
	"github.com/reliefops/aidcycle/pkg/domain/repositories"
	"github.com/reliefops/aidcycle/pkg/infrastructure/advisory"
	"github.com/reliefops/aidcycle/pkg/infrastructure/config"
	"github.com/reliefops/aidcycle/pkg/infrastructure/events"
	"github.com/reliefops/aidcycle/pkg/infrastructure/logging"
	"github.com/reliefops/aidcycle/pkg/infrastructure/repositories/csv"
	"github.com/reliefops/aidcycle/pkg/infrastructure/repositories/memory"
	"github.com/reliefops/aidcycle/pkg/infrastructure/settlement"
	"github.com/reliefops/aidcycle/pkg/interfaces/cli/output"
)

func newRunCommand() *cobra.Command {
	var (
		cycles   int
		scenario string
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one or more aid distribution cycles",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("cycles") {
				cfg.Cycles = cycles
			}
			if cmd.Flags().Changed("scenario") {
				cfg.Scenario = scenario
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			return runCycles(cmd, cfg, verbose)
		},
	}

	cmd.Flags().IntVarP(&cycles, "cycles", "n", 1, "number of cycles to run")
	cmd.Flags().StringVarP(&scenario, "scenario", "s", "normal", "resource scenario (abundant, normal, scarce)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show per-route and per-zone detail")

	return cmd
}

func runCycles(cmd *cobra.Command, cfg *config.Config, verbose bool) error {
	log, err := logging.New(logging.Config{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Console:    cfg.Log.Console,
	})
	if err != nil {
		return err
	}

	source, err := buildZoneSource(cfg)
	if err != nil {
		return err
	}

	var advisor *advisory.Client
	if cfg.Advisory.Enabled {
		advisor = advisory.NewClient(advisory.Config{
			BaseURL:    cfg.Advisory.BaseURL,
			Model:      cfg.Advisory.Model,
			Timeout:    time.Duration(cfg.Advisory.TimeoutSeconds) * time.Second,
			NumPredict: cfg.Advisory.NumPredict,
		}, log)
	}

	// A nil *Client must stay a nil interface in each service, so the
	// advisor is only passed through when enabled.
	var (
		assessAdvisor   assessment.Advisor
		allocAdvisor    allocation.Advisor
		logisticAdvisor logistics.Advisor
		monitorAdvisor  monitoring.Advisor
	)
	if advisor != nil {
		assessAdvisor = advisor
		allocAdvisor = advisor
		logisticAdvisor = advisor
		monitorAdvisor = advisor
	}

	orchestrator := orchestration.NewCycleOrchestrator(
		source,
		assessment.NewService(assessAdvisor, log),
		allocation.NewService(allocAdvisor, cfg.Allocation.ReserveFraction, log),
		logistics.NewPlanner(logisticAdvisor, log),
		execution.NewSimulator(cfg.Seed, log),
		monitoring.NewService(monitorAdvisor, log),
		memory.NewHistoryRepository(),
		events.NewJournal(),
		entities.Scenario(cfg.Scenario),
		cfg.MaxZonesPerCycle,
		log,
	)

	outConfig := output.Config{
		Format:    cfg.Output.Format,
		OutputDir: cfg.Output.Dir,
		Verbose:   verbose,
	}

	records, err := orchestrator.RunCycles(cmd.Context(), cfg.Cycles)
	for _, record := range records {
		if werr := output.Write(cmd.OutOrStdout(), record, outConfig); werr != nil {
			return werr
		}
	}
	if err != nil {
		return err
	}

	if len(records) > 1 {
		report, err := orchestrator.SummaryReport()
		if err != nil {
			return err
		}
		output.WriteSummary(cmd.OutOrStdout(), report)
	}

	return nil
}

func newZonesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "zones",
		Short: "Show the settlement zone snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			source, err := buildZoneSource(cfg)
			if err != nil {
				return err
			}
			zones, err := source.Zones()
			if err != nil {
				return err
			}
			output.WriteZones(cmd.OutOrStdout(), zones)
			return nil
		},
	}
}

// buildZoneSource picks the fixture source when a fixture file is configured
// (YAML, or CSV by extension), otherwise the seeded settlement simulator
func buildZoneSource(cfg *config.Config) (repositories.ZoneSource, error) {
	switch {
	case cfg.FixtureFile == "":
		return settlement.NewSimulator(cfg.Zones, cfg.Seed), nil
	case strings.HasSuffix(cfg.FixtureFile, ".csv"):
		source, err := csv.LoadZones(cfg.FixtureFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load zones CSV: %w", err)
		}
		return source, nil
	default:
		source, err := settlement.LoadFixture(cfg.FixtureFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load fixture: %w", err)
		}
		return source, nil
	}
}
