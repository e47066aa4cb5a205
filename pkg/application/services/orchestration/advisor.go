package orchestration

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/vsinha/procure/pkg/application/dto"
	"github.com/vsinha/procure/pkg/application/services/portfolio"
	"github.com/vsinha/procure/pkg/application/services/recommendation"
	"github.com/vsinha/procure/pkg/domain/entities"
	"github.com/vsinha/procure/pkg/domain/repositories"
	"github.com/vsinha/procure/pkg/domain/services"
)

// Advisor coordinates the recommendation generator and portfolio aggregator for a presentation layer
type Advisor struct {
	generator      *recommendation.Generator
	aggregator     *portfolio.Aggregator
	catalog        repositories.Catalog
	clock          func() time.Time
	watchlistLimit int
}

// NewAdvisor creates a new advisor
func NewAdvisor(
	generator *recommendation.Generator,
	aggregator *portfolio.Aggregator,
	catalog repositories.Catalog,
	watchlistLimit int,
) *Advisor {
	if watchlistLimit <= 0 {
		watchlistLimit = portfolio.DefaultWatchlistLimit
	}
	return &Advisor{
		generator:      generator,
		aggregator:     aggregator,
		catalog:        catalog,
		clock:          time.Now,
		watchlistLimit: watchlistLimit,
	}
}

// WithClock overrides the snapshot clock
func (a *Advisor) WithClock(clock func() time.Time) *Advisor {
	a.clock = clock
	return a
}

// Recommend evaluates one part under an optional scenario
func (a *Advisor) Recommend(
	ctx context.Context,
	partID entities.PartID,
	scenario *entities.ScenarioDelta,
) (*entities.Recommendation, error) {
	rec, err := a.generator.Generate(ctx, partID, scenario)
	if err != nil {
		return nil, fmt.Errorf("failed to generate recommendation for %s: %w", partID, err)
	}
	return rec, nil
}

// Dashboard recomputes every portfolio view from the catalog
func (a *Advisor) Dashboard(ctx context.Context) (*dto.DashboardSnapshot, error) {
	kpis, err := a.aggregator.ComputeKPIs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute KPIs: %w", err)
	}
	pulse, err := a.aggregator.ComputeMarketPulse(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute market pulse: %w", err)
	}
	watch, err := a.aggregator.CriticalWatchlist(ctx, a.watchlistLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to build watchlist: %w", err)
	}

	return &dto.DashboardSnapshot{
		KPIs:        kpis,
		MarketPulse: pulse,
		Watchlist:   watch,
		GeneratedAt: a.clock(),
	}, nil
}

// Parts runs a catalog query and attaches each part's risk assessment
func (a *Advisor) Parts(ctx context.Context, q portfolio.PartQuery) (*dto.PartsReport, error) {
	parts, err := a.aggregator.AnalyzeParts(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze parts: %w", err)
	}

	report := &dto.PartsReport{Parts: make([]dto.PartInsight, 0, len(parts))}
	for _, p := range parts {
		report.Parts = append(report.Parts, a.insight(p))
	}
	dist := portfolio.RiskDistribution(parts)
	report.High, report.Medium, report.Low = dist.High, dist.Medium, dist.Low
	return report, nil
}

// Part returns the risk assessment of a single part
func (a *Advisor) Part(ctx context.Context, partID entities.PartID) (*dto.PartInsight, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := a.catalog.GetPart(partID)
	if err != nil {
		return nil, err
	}
	insight := a.insight(p)
	return &insight, nil
}

func (a *Advisor) insight(p *entities.Part) dto.PartInsight {
	inv, _ := a.catalog.GetInventory(p.ID)
	fc, _ := a.catalog.GetForecast(p.ID)
	return dto.PartInsight{
		Part:        p,
		Inventory:   inv,
		Forecast:    fc,
		RiskBand:    services.RiskBand(p.RiskScore),
		RiskFactors: services.RiskFactors(p, inv),
	}
}

// ValidateCatalog checks cross-collection consistency of the loaded catalog
func (a *Advisor) ValidateCatalog(ctx context.Context) (*services.CatalogValidationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	parts, err := a.catalog.GetAllParts()
	if err != nil {
		return nil, fmt.Errorf("failed to read parts: %w", err)
	}
	inventory, err := a.catalog.GetAllInventory()
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory: %w", err)
	}
	forecasts, err := a.catalog.GetAllForecasts()
	if err != nil {
		return nil, fmt.Errorf("failed to read forecasts: %w", err)
	}
	return services.ValidateCatalog(parts, inventory, forecasts), nil
}

// Summary returns a formatted one-screen summary of a dashboard snapshot
func Summary(s *dto.DashboardSnapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Portfolio Summary (%s):\n", s.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "  Supply risk %d, demand pressure %d, coverage %.1f weeks\n",
		s.KPIs.SupplyRiskIndex, s.KPIs.DemandPressureIndex, s.KPIs.InventoryCoverageWeeks)
	fmt.Fprintf(&b, "  Cash exposure $%s, cost avoidance $%s\n",
		humanize.CommafWithDigits(s.KPIs.CashExposure.InexactFloat64(), 2),
		humanize.CommafWithDigits(s.KPIs.CostAvoidancePotential.InexactFloat64(), 2))
	fmt.Fprintf(&b, "  EOL risk parts: %d, watchlist: %d", s.MarketPulse.EOLRiskCount, len(s.Watchlist))
	return b.String()
}
