package portfolio

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/procure/pkg/domain/entities"
	"github.com/vsinha/procure/pkg/infrastructure/fixtures"
	"github.com/vsinha/procure/pkg/infrastructure/repositories/memory"
)

func TestCriticalWatchlist(t *testing.T) {
	agg := NewAggregator(fixtures.ReferenceCatalog())

	tests := []struct {
		name  string
		limit int
		want  []entities.PartID
	}{
		{"default cap", 0, []entities.PartID{"p1", "p3", "p6", "p8"}},
		{"explicit cap", 5, []entities.PartID{"p1", "p3", "p6", "p8"}},
		{"truncated", 2, []entities.PartID{"p1", "p3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			watch, err := agg.CriticalWatchlist(context.Background(), tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(watch))
			for _, p := range watch {
				assert.Greater(t, p.RiskScore, AtRiskThreshold)
			}
		})
	}
}

func TestCriticalWatchlist_CapsAtFive(t *testing.T) {
	parts := make([]*entities.Part, 0, 7)
	for _, id := range []entities.PartID{"a", "b", "c", "d", "e", "f", "g"} {
		parts = append(parts, testPart(id, 51, "1"))
	}
	catalog, err := memory.LoadCatalog(parts, nil, nil)
	require.NoError(t, err)

	watch, err := NewAggregator(catalog).CriticalWatchlist(context.Background(), DefaultWatchlistLimit)
	require.NoError(t, err)
	assert.Equal(t, []entities.PartID{"a", "b", "c", "d", "e"}, ids(watch))
}

func TestAnalyzeParts(t *testing.T) {
	agg := NewAggregator(fixtures.ReferenceCatalog())

	tests := []struct {
		name  string
		query PartQuery
		want  []entities.PartID
	}{
		{
			name:  "default risk descending",
			query: PartQuery{},
			want:  []entities.PartID{"p6", "p8", "p1", "p3", "p7", "p2", "p4", "p5"},
		},
		{
			name:  "search matches description case-insensitively",
			query: PartQuery{Search: "mcu"},
			want:  []entities.PartID{"p1"},
		},
		{
			name:  "search matches mpn",
			query: PartQuery{Search: "esp32"},
			want:  []entities.PartID{"p4"},
		},
		{
			name:  "category with lead time ascending",
			query: PartQuery{Category: "power", SortBy: SortByLeadTime, Ascending: true},
			want:  []entities.PartID{"p3", "p6"},
		},
		{
			name:  "all categories by price ascending",
			query: PartQuery{Category: AllCategories, SortBy: SortByPrice, Ascending: true},
			want:  []entities.PartID{"p5", "p3", "p6", "p2", "p4", "p7", "p1", "p8"},
		},
		{
			name:  "no matches",
			query: PartQuery{Search: "fpga"},
			want:  []entities.PartID{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts, err := agg.AnalyzeParts(context.Background(), tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(parts))
		})
	}
}

func TestAnalyzeParts_StableOnTies(t *testing.T) {
	catalog, err := memory.LoadCatalog([]*entities.Part{
		testPart("a", 50, "2"),
		testPart("b", 70, "1"),
		testPart("c", 50, "3"),
		testPart("d", 50, "1"),
	}, nil, nil)
	require.NoError(t, err)
	agg := NewAggregator(catalog)

	desc, err := agg.AnalyzeParts(context.Background(), PartQuery{})
	require.NoError(t, err)
	assert.Equal(t, []entities.PartID{"b", "a", "c", "d"}, ids(desc))

	asc, err := agg.AnalyzeParts(context.Background(), PartQuery{Ascending: true})
	require.NoError(t, err)
	assert.Equal(t, []entities.PartID{"a", "c", "d", "b"}, ids(asc))
}

func TestCategories(t *testing.T) {
	categories, err := NewAggregator(fixtures.ReferenceCatalog()).Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"all", "MCU", "Power", "Wireless", "Passive", "Analog"}, categories)
}

func TestRiskDistribution(t *testing.T) {
	assert.Equal(t, RiskCounts{High: 3, Medium: 3, Low: 2}, RiskDistribution(fixtures.ReferenceParts()))
	assert.Equal(t, RiskCounts{}, RiskDistribution(nil))
	assert.Equal(t, RiskCounts{High: 1, Medium: 1, Low: 1}, RiskDistribution([]*entities.Part{
		testPart("a", 70, "1"),
		testPart("b", 40, "1"),
		testPart("c", 39, "1"),
	}))
}

func TestParseSortField(t *testing.T) {
	f, err := ParseSortField("leadTime")
	require.NoError(t, err)
	assert.Equal(t, SortByLeadTime, f)

	f, err = ParseSortField("")
	require.NoError(t, err)
	assert.Equal(t, SortByRisk, f)

	_, err = ParseSortField("weight")
	assert.ErrorIs(t, err, entities.ErrInvalidInput)
}
