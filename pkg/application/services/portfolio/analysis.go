package portfolio

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/vsinha/procure/pkg/domain/entities"
	"github.com/vsinha/procure/pkg/domain/services"
)

// AllCategories disables category filtering
const AllCategories = "all"

// SortField selects the ordering key for part analysis
type SortField int

const (
	SortByRisk SortField = iota
	SortByLeadTime
	SortByPrice
)

// String method for SortField enum
func (f SortField) String() string {
	switch f {
	case SortByRisk:
		return "risk"
	case SortByLeadTime:
		return "leadTime"
	case SortByPrice:
		return "price"
	default:
		return "unknown"
	}
}

// ParseSortField parses risk, leadTime or price
func ParseSortField(s string) (SortField, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "risk":
		return SortByRisk, nil
	case "leadtime", "lead-time", "lead_time":
		return SortByLeadTime, nil
	case "price":
		return SortByPrice, nil
	default:
		return SortByRisk, entities.InvalidInputf("unknown sort field %q", s)
	}
}

// PartQuery filters and orders catalog parts. The zero value lists every part by risk, highest first.
type PartQuery struct {
	Search    string
	Category  string
	SortBy    SortField
	Ascending bool
}

// RiskCounts is the number of parts per risk band
type RiskCounts struct {
	High   int `json:"high" yaml:"high"`
	Medium int `json:"medium" yaml:"medium"`
	Low    int `json:"low" yaml:"low"`
}

// CriticalWatchlist returns parts above the at-risk threshold in catalog order, capped at limit
func (a *Aggregator) CriticalWatchlist(ctx context.Context, limit int) ([]*entities.Part, error) {
	if limit <= 0 {
		limit = DefaultWatchlistLimit
	}
	snap, err := a.load(ctx)
	if err != nil {
		return nil, err
	}

	watch := make([]*entities.Part, 0, limit)
	for _, p := range snap.parts {
		if p.RiskScore <= AtRiskThreshold {
			continue
		}
		watch = append(watch, p)
		if len(watch) == limit {
			break
		}
	}
	return watch, nil
}

// AnalyzeParts searches, filters and sorts the catalog. Ties keep catalog order.
func (a *Aggregator) AnalyzeParts(ctx context.Context, q PartQuery) ([]*entities.Part, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	parts, err := a.catalog.GetAllParts()
	if err != nil {
		return nil, fmt.Errorf("failed to read parts: %w", err)
	}

	search := strings.ToLower(strings.TrimSpace(q.Search))
	category := strings.TrimSpace(q.Category)

	matched := make([]*entities.Part, 0, len(parts))
	for _, p := range parts {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.MPN), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		if category != "" && !strings.EqualFold(category, AllCategories) && !strings.EqualFold(category, p.Category) {
			continue
		}
		matched = append(matched, p)
	}

	less := func(x, y *entities.Part) bool {
		switch q.SortBy {
		case SortByLeadTime:
			return x.LeadTimeWeeks < y.LeadTimeWeeks
		case SortByPrice:
			return x.PriceUSD.LessThan(y.PriceUSD)
		default:
			return x.RiskScore < y.RiskScore
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if q.Ascending {
			return less(matched[i], matched[j])
		}
		return less(matched[j], matched[i])
	})
	return matched, nil
}

// Categories returns "all" followed by each distinct category in catalog order
func (a *Aggregator) Categories(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	parts, err := a.catalog.GetAllParts()
	if err != nil {
		return nil, fmt.Errorf("failed to read parts: %w", err)
	}

	seen := make(map[string]bool)
	categories := []string{AllCategories}
	for _, p := range parts {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	return categories, nil
}

// RiskDistribution tallies parts into the high, medium and low risk bands
func RiskDistribution(parts []*entities.Part) RiskCounts {
	var d RiskCounts
	for _, p := range parts {
		switch services.RiskBand(p.RiskScore) {
		case entities.SeverityHigh:
			d.High++
		case entities.SeverityMedium:
			d.Medium++
		default:
			d.Low++
		}
	}
	return d
}
