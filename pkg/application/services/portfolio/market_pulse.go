package portfolio

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/vsinha/procure/pkg/domain/entities"
	"github.com/vsinha/procure/pkg/domain/services"
)

// DefaultRegion collects inventory held at unmapped locations
const DefaultRegion = "Global"

var regionOrder = map[string]int{
	"Asia Pacific": 0,
	"Europe":       1,
	"Americas":     2,
}

// ComputeMarketPulse derives trend series, EOL exposure and regional constraints
func (a *Aggregator) ComputeMarketPulse(ctx context.Context) (entities.MarketPulse, error) {
	snap, err := a.load(ctx)
	if err != nil {
		return entities.MarketPulse{}, err
	}

	return entities.MarketPulse{
		LeadTimeTrend:       a.leadTimeTrend(snap.parts),
		PricingTrend:        a.pricingTrend(snap.parts),
		EOLRiskCount:        eolRiskCount(snap.parts),
		RegionalConstraints: a.regionalConstraints(snap),
	}, nil
}

// backProject estimates a value k weeks ago from its current value and trend
func backProject(current float64, trend entities.Trend, drift float64, k int) float64 {
	switch trend {
	case entities.Increasing:
		return current * math.Max(0, 1-drift*float64(k))
	case entities.Decreasing:
		return current * (1 + drift*float64(k))
	default:
		return current
	}
}

func weekLabel(i int) string {
	return fmt.Sprintf("W%d", i+1)
}

// leadTimeTrend is the mean lead time per week, oldest first
func (a *Aggregator) leadTimeTrend(parts []*entities.Part) []entities.TrendPoint {
	n := a.config.TrendWindow
	points := make([]entities.TrendPoint, n)
	for i := 0; i < n; i++ {
		k := n - 1 - i
		var total float64
		for _, p := range parts {
			total += backProject(float64(p.LeadTimeWeeks), p.LeadTimeTrend, a.config.LeadTimeDrift, k)
		}
		value := 0.0
		if len(parts) > 0 {
			value = roundTenth(total / float64(len(parts)))
		}
		points[i] = entities.TrendPoint{Week: weekLabel(i), Value: value}
	}
	return points
}

// pricingTrend is a basket price index with the oldest week at 100
func (a *Aggregator) pricingTrend(parts []*entities.Part) []entities.TrendPoint {
	n := a.config.TrendWindow
	sums := make([]float64, n)
	for i := 0; i < n; i++ {
		k := n - 1 - i
		for _, p := range parts {
			sums[i] += backProject(p.PriceUSD.InexactFloat64(), p.PriceTrend, a.config.PriceDrift, k)
		}
	}

	points := make([]entities.TrendPoint, n)
	for i := range sums {
		value := 0.0
		if sums[0] > 0 {
			value = roundTenth(sums[i] / sums[0] * 100)
		}
		points[i] = entities.TrendPoint{Week: weekLabel(i), Value: value}
	}
	return points
}

// eolRiskCount counts parts at or past end of life, or in the high risk band
func eolRiskCount(parts []*entities.Part) int {
	count := 0
	for _, p := range parts {
		if p.Lifecycle.IsEndOfLife() || p.RiskScore >= services.HighRiskThreshold {
			count++
		}
	}
	return count
}

func (a *Aggregator) region(location string) string {
	if r, ok := a.config.Regions[location]; ok {
		return r
	}
	return DefaultRegion
}

// regionalConstraints grades each stocked region by the mean risk of the parts held there
func (a *Aggregator) regionalConstraints(snap *snapshot) []entities.RegionalConstraint {
	risk := make(map[entities.PartID]int, len(snap.parts))
	for _, p := range snap.parts {
		risk[p.ID] = p.RiskScore
	}

	type tally struct{ total, count int }
	byRegion := make(map[string]*tally)
	for _, inv := range snap.inventory {
		score, ok := risk[inv.PartID]
		if !ok {
			continue
		}
		r := a.region(inv.Location)
		t := byRegion[r]
		if t == nil {
			t = &tally{}
			byRegion[r] = t
		}
		t.total += score
		t.count++
	}

	constraints := make([]entities.RegionalConstraint, 0, len(byRegion))
	for r, t := range byRegion {
		mean := int(math.Round(float64(t.total) / float64(t.count)))
		constraints = append(constraints, entities.RegionalConstraint{
			Region:   r,
			Severity: services.RiskBand(mean),
		})
	}
	sort.Slice(constraints, func(i, j int) bool {
		oi, iKnown := regionOrder[constraints[i].Region]
		oj, jKnown := regionOrder[constraints[j].Region]
		switch {
		case iKnown && jKnown:
			return oi < oj
		case iKnown != jKnown:
			return iKnown
		default:
			return constraints[i].Region < constraints[j].Region
		}
	})
	return constraints
}
