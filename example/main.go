package main

import (
	"context"
	"fmt"

	"github.com/reliefops/aidcycle/pkg/aidcycle"
	"github.com/reliefops/aidcycle/pkg/domain/entities"
)

// Minimal deterministic run: simulated settlement, no advisory service,
// three cycles under the normal scenario.
func main() {
	engine := aidcycle.New(aidcycle.Options{
		Zones:            10,
		Seed:             42,
		Scenario:         entities.ScenarioNormal,
		MaxZonesPerCycle: 8,
	})

	records, err := engine.RunCycles(context.Background(), 3)
	if err != nil {
		fmt.Printf("run failed: %v\n", err)
		return
	}

	for _, record := range records {
		fmt.Printf("Cycle %d: %d zones served, success rate %s%%, %d people reached\n",
			record.CycleNumber,
			record.Metrics.ZonesServed,
			record.Metrics.SuccessRate,
			record.Metrics.PopulationServed)
	}

	report, err := engine.SummaryReport()
	if err != nil {
		fmt.Printf("summary failed: %v\n", err)
		return
	}
	fmt.Println(report.Summary)
}
