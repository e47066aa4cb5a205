package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/vsinha/procure/pkg/application/services/orchestration"
	"github.com/vsinha/procure/pkg/application/services/portfolio"
	"github.com/vsinha/procure/pkg/application/services/recommendation"
	"github.com/vsinha/procure/pkg/domain/entities"
	"github.com/vsinha/procure/pkg/infrastructure/fixtures"
	"github.com/vsinha/procure/pkg/infrastructure/random"
)

func main() {
	ctx := context.Background()

	// Reference catalog, loaded once and shared read-only
	catalog := fixtures.ReferenceCatalog()

	gen, err := recommendation.NewGenerator(recommendation.Config{
		Catalog: catalog,
		Random:  random.NewSeeded(2024),
	})
	if err != nil {
		log.Fatal(err)
	}
	advisor := orchestration.NewAdvisor(gen, portfolio.NewAggregator(catalog), catalog, portfolio.DefaultWatchlistLimit)

	parts, err := catalog.GetAllParts()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("🔎 Baseline recommendations")
	for _, p := range parts {
		rec, err := advisor.Recommend(ctx, p.ID, nil)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("  %-16s %-10s %3d%%  %s\n", p.MPN, rec.Action, rec.Confidence, rec.DisplayDrivers()[0])
	}

	// What happens to the regulator if lead times stretch by 8 weeks and stock drops by half?
	scenario := &entities.ScenarioDelta{LeadTimeChange: 8, InventoryChange: -50}
	rec, err := advisor.Recommend(ctx, "p3", scenario)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("\n🧪 Scenario for LM7805CT: %s (confidence %d%%, risk delta %+d)\n",
		rec.Action, rec.Confidence, rec.FinancialImpact.RiskDelta)

	snap, err := advisor.WithClock(func() time.Time { return time.Now().UTC() }).Dashboard(ctx)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println()
	fmt.Println(orchestration.Summary(snap))
}
