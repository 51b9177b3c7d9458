// Package output renders completed cycle records for the CLI.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/reliefops/aidcycle/pkg/application/dto"
	"github.com/reliefops/aidcycle/pkg/domain/entities"
)

// Config holds output settings for a run
type Config struct {
	Format    string // text, json
	OutputDir string
	Verbose   bool
}

// Write renders one cycle record per the configured format. JSON always
// writes a timestamped file under the output directory; text prints the
// human-readable summary to the writer.
func Write(w io.Writer, record *entities.CycleRecord, config Config) error {
	switch config.Format {
	case "text":
		return writeText(w, record, config.Verbose)
	case "json":
		path, err := WriteJSON(record, config.OutputDir)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Results saved to %s\n", path)
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// WriteJSON persists a cycle record as cycle_<n>_<timestamp>.json and
// returns the written path
func WriteJSON(record *entities.CycleRecord, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	doc := dto.NewCycleDocument(record)
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal cycle record: %w", err)
	}

	filename := fmt.Sprintf("cycle_%d_%s.json", record.CycleNumber, time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

func writeText(w io.Writer, record *entities.CycleRecord, verbose bool) error {
	fmt.Fprintf(w, "Distribution Cycle #%d (%s scenario)\n", record.CycleNumber, record.Scenario)
	fmt.Fprintf(w, "=====================================\n\n")

	fmt.Fprintf(w, "Settlement: %d zones, %d people\n",
		len(record.Zones), entities.TotalPopulation(record.Zones))
	fmt.Fprintf(w, "Assessment: %d critical zones, %d high priority, average score %s\n",
		record.NeedsReport.CriticalZones,
		record.NeedsReport.HighPriorityZones,
		record.NeedsReport.AveragePriorityScore)

	fmt.Fprintf(w, "\nTop Priority Zones:\n")
	for i, rank := range record.NeedsReport.TopPriorityZones {
		fmt.Fprintf(w, "  %d. %s (%s): %s\n", i+1, rank.ZoneName, rank.ZoneID, rank.PriorityScore)
	}

	fmt.Fprintf(w, "\nAllocation: %d/%d zones served, %s%% of population covered\n",
		record.Coverage.ZonesServed,
		record.Coverage.TotalZones,
		record.Coverage.CoveragePercentage)

	fmt.Fprintf(w, "\nDelivery Plan: %d routes, %d vehicles, %s hours total\n",
		len(record.DeliveryPlan.Routes),
		record.DeliveryPlan.TotalVehiclesNeeded,
		record.DeliveryPlan.TotalDeliveryTimeHours)

	if verbose {
		for _, route := range record.DeliveryPlan.Routes {
			fmt.Fprintf(w, "  Route %d: %v (%s km, %s hours)\n",
				route.RouteID, route.ZoneNames, route.TotalDistanceKm, route.EstimatedTimeHours)
		}
		for _, rs := range record.Schedule {
			fmt.Fprintf(w, "  Schedule route %d: %s to %s\n", rs.RouteID, rs.StartTime, rs.EndTime)
		}
		for _, lp := range record.LoadingPlans {
			fmt.Fprintf(w, "  Loading route %d: %s kg (%s%% capacity, %s)\n",
				lp.RouteID, lp.TotalWeightKg, lp.CapacityUsedPercent, lp.WeightStatus)
		}
	}

	fmt.Fprintf(w, "\nDelivery Results:\n")
	fmt.Fprintf(w, "  Overall success rate: %s%%\n", record.Analysis.OverallSuccessRate)
	fmt.Fprintf(w, "  Fully served: %d, partially served: %d, follow-up needed: %d\n",
		len(record.Analysis.ZonesFullyServed),
		len(record.Analysis.ZonesPartiallyServed),
		len(record.Analysis.ZonesRequiringFollowup))

	if verbose {
		fmt.Fprintf(w, "\n%-8s %-14s %-10s %-18s %s\n",
			"Zone", "Name", "Delivered", "Challenge", "Status")
		for _, o := range record.Outcomes {
			fmt.Fprintf(w, "%-8s %-14s %8s%%  %-18s %s\n",
				o.ZoneID, o.ZoneName, o.DeliveredPercentage, o.Challenge, o.Status)
		}
	}

	fmt.Fprintf(w, "\nKey Recommendations:\n")
	for i, rec := range record.Analysis.RecommendationsNextCycle {
		if i >= 3 {
			break
		}
		fmt.Fprintf(w, "  %d. %s\n", i+1, rec)
	}

	fmt.Fprintf(w, "\nCycle completed in %s\n\n", record.Duration.Round(time.Millisecond))
	return nil
}

// WriteSummary renders the cross-cycle summary report
func WriteSummary(w io.Writer, report entities.SummaryReport) {
	fmt.Fprintf(w, "Run Summary\n")
	fmt.Fprintf(w, "===========\n")
	fmt.Fprintf(w, "Cycles completed:  %d\n", report.TotalCyclesCompleted)
	fmt.Fprintf(w, "Average success:   %s%%\n", report.AverageSuccessRate)
	fmt.Fprintf(w, "Population served: %d\n", report.TotalPopulationServed)
	fmt.Fprintf(w, "Best cycle:        #%d\n", report.BestCycleNumber)
}

// WriteZones renders the zone snapshot as a table
func WriteZones(w io.Writer, zones []entities.Zone) {
	fmt.Fprintf(w, "%-6s %-12s %10s %6s %6s %7s %6s %-6s %-10s %-8s\n",
		"ID", "Name", "Population", "Food", "Water", "Medical", "Dist", "Road", "Access", "Security")
	for _, z := range zones {
		fmt.Fprintf(w, "%-6s %-12s %10d %6.2f %6.2f %7.2f %6.1f %-6s %-10s %-8s\n",
			z.ZoneID, z.ZoneName, z.Population,
			z.FoodShortage, z.WaterShortage, z.MedicalSeverity,
			z.DistanceFromDepotKm, z.RoadCondition, z.Accessibility, z.SecurityLevel)
	}
	fmt.Fprintf(w, "\nTotal: %d zones, %d people\n", len(zones), entities.TotalPopulation(zones))
}
