package portfolio

import (
	"context"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/vsinha/procure/pkg/domain/entities"
	"github.com/vsinha/procure/pkg/domain/repositories"
	"github.com/vsinha/procure/pkg/domain/services"
)

// AtRiskThreshold is the risk score above which a part counts toward exposure and the watchlist
const AtRiskThreshold = 50

// DefaultWatchlistLimit caps the critical-parts watchlist
const DefaultWatchlistLimit = 5

// Config holds aggregation parameters. Zero fields take the defaults.
type Config struct {
	// PriceEscalation is the expected price rise avoided by buying ahead (0.08 = 8%)
	PriceEscalation decimal.Decimal
	// TrendWindow is the number of weekly points in each market pulse series
	TrendWindow int
	// LeadTimeDrift and PriceDrift are the weekly relative change implied by a trend
	LeadTimeDrift float64
	PriceDrift    float64
	// Regions maps inventory locations to regions; unmapped locations fall into DefaultRegion
	Regions map[string]string
}

// DefaultConfig returns the standard aggregation parameters
func DefaultConfig() Config {
	return Config{
		PriceEscalation: decimal.NewFromFloat(0.08),
		TrendWindow:     8,
		LeadTimeDrift:   0.02,
		PriceDrift:      0.015,
		Regions: map[string]string{
			"Austin TX": "Americas",
			"Shenzhen":  "Asia Pacific",
		},
	}
}

// Aggregator computes read-only portfolio reductions over a catalog.
// Every call re-reads the catalog; nothing is cached between calls.
type Aggregator struct {
	catalog repositories.Catalog
	config  Config
}

// NewAggregator creates an aggregator with the default configuration
func NewAggregator(catalog repositories.Catalog) *Aggregator {
	return NewAggregatorWithConfig(catalog, DefaultConfig())
}

// NewAggregatorWithConfig creates an aggregator with custom parameters
func NewAggregatorWithConfig(catalog repositories.Catalog, config Config) *Aggregator {
	def := DefaultConfig()
	if config.PriceEscalation.IsZero() {
		config.PriceEscalation = def.PriceEscalation
	}
	if config.TrendWindow <= 0 {
		config.TrendWindow = def.TrendWindow
	}
	if config.LeadTimeDrift == 0 {
		config.LeadTimeDrift = def.LeadTimeDrift
	}
	if config.PriceDrift == 0 {
		config.PriceDrift = def.PriceDrift
	}
	if config.Regions == nil {
		config.Regions = def.Regions
	}
	return &Aggregator{catalog: catalog, config: config}
}

// snapshot is one consistent read of the catalog
type snapshot struct {
	parts     []*entities.Part
	inventory []*entities.InternalInventory
	forecasts []*entities.Forecast
}

func (a *Aggregator) load(ctx context.Context) (*snapshot, error) {
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
	return &snapshot{parts: parts, inventory: inventory, forecasts: forecasts}, nil
}

// ComputeKPIs reduces the catalog into the headline portfolio indicators
func (a *Aggregator) ComputeKPIs(ctx context.Context) (entities.KPIData, error) {
	snap, err := a.load(ctx)
	if err != nil {
		return entities.KPIData{}, err
	}

	kpi := entities.KPIData{
		SupplyRiskIndex:        supplyRiskIndex(snap.parts),
		DemandPressureIndex:    a.demandPressureIndex(snap.forecasts),
		InventoryCoverageWeeks: meanCoverage(snap.inventory),
		CashExposure:           decimal.Zero,
		CostAvoidancePotential: decimal.Zero,
	}

	for _, p := range snap.parts {
		if p.RiskScore <= AtRiskThreshold {
			continue
		}
		inv, ok := a.catalog.GetInventory(p.ID)
		if !ok {
			continue
		}
		kpi.CashExposure = kpi.CashExposure.Add(p.PriceUSD.Mul(decimal.NewFromInt(inv.Quantity)))

		if p.PriceTrend != entities.Increasing {
			continue
		}
		fc, ok := a.catalog.GetForecast(p.ID)
		if !ok {
			continue
		}
		shortfall := math.Max(0, fc.HorizonDemand()-float64(inv.Quantity))
		kpi.CostAvoidancePotential = kpi.CostAvoidancePotential.Add(
			decimal.NewFromFloat(shortfall).Mul(p.PriceUSD).Mul(a.config.PriceEscalation),
		)
	}
	kpi.CashExposure = kpi.CashExposure.Round(2)
	kpi.CostAvoidancePotential = kpi.CostAvoidancePotential.Round(2)

	return kpi, nil
}

func supplyRiskIndex(parts []*entities.Part) int {
	if len(parts) == 0 {
		return 0
	}
	total := 0
	for _, p := range parts {
		total += p.RiskScore
	}
	return services.DisplayRisk(float64(total) / float64(len(parts)))
}

// demandPressureIndex scores how far current coverage falls short of each forecast horizon
func (a *Aggregator) demandPressureIndex(forecasts []*entities.Forecast) int {
	if len(forecasts) == 0 {
		return 0
	}
	var total float64
	for _, fc := range forecasts {
		inv, _ := a.catalog.GetInventory(fc.PartID)
		coverage := services.CoverageWeeks(inv)
		pressure := 100 * (1 - coverage/float64(fc.HorizonWeeks))
		total += math.Max(0, math.Min(100, pressure))
	}
	return int(math.Round(total / float64(len(forecasts))))
}

func meanCoverage(inventory []*entities.InternalInventory) float64 {
	if len(inventory) == 0 {
		return 0
	}
	var total float64
	for _, inv := range inventory {
		total += inv.CoverageWeeks
	}
	return roundTenth(total / float64(len(inventory)))
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
