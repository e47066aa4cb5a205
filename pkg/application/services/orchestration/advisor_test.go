package orchestration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/procure/pkg/application/services/portfolio"
	"github.com/vsinha/procure/pkg/application/services/recommendation"
	"github.com/vsinha/procure/pkg/domain/entities"
	"github.com/vsinha/procure/pkg/infrastructure/fixtures"
	"github.com/vsinha/procure/pkg/infrastructure/random"
	"github.com/vsinha/procure/pkg/infrastructure/repositories/memory"
)

var snapshotTime = time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)

func newTestAdvisor(t *testing.T, catalog *memory.Catalog) *Advisor {
	t.Helper()
	gen, err := recommendation.NewGenerator(recommendation.Config{
		Catalog: catalog,
		Random:  random.NewSeeded(2024),
		Clock:   func() time.Time { return snapshotTime },
	})
	require.NoError(t, err)
	return NewAdvisor(gen, portfolio.NewAggregator(catalog), catalog, 0).
		WithClock(func() time.Time { return snapshotTime })
}

func TestAdvisor_Recommend(t *testing.T) {
	advisor := newTestAdvisor(t, fixtures.ReferenceCatalog())

	rec, err := advisor.Recommend(context.Background(), "p6", nil)
	require.NoError(t, err)
	assert.Equal(t, entities.BuyNow, rec.Action)
	assert.Equal(t, snapshotTime, rec.Timestamp)

	_, err = advisor.Recommend(context.Background(), "missing", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, entities.ErrNotFound)
	assert.Contains(t, err.Error(), "missing")
}

func TestAdvisor_Dashboard(t *testing.T) {
	advisor := newTestAdvisor(t, fixtures.ReferenceCatalog())

	snap, err := advisor.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, snapshotTime, snap.GeneratedAt)
	assert.Equal(t, 55, snap.KPIs.SupplyRiskIndex)
	assert.Equal(t, 3, snap.MarketPulse.EOLRiskCount)
	require.Len(t, snap.Watchlist, 4)
	assert.Equal(t, entities.PartID("p1"), snap.Watchlist[0].ID)

	summary := Summary(snap)
	assert.Contains(t, summary, "Supply risk 55")
	assert.Contains(t, summary, "$62,052.5")
	assert.Contains(t, summary, "watchlist: 4")
}

func TestAdvisor_DashboardIsRecomputed(t *testing.T) {
	catalog := fixtures.ReferenceCatalog()
	advisor := newTestAdvisor(t, catalog)

	before, err := advisor.Dashboard(context.Background())
	require.NoError(t, err)

	part := *fixtures.ReferenceParts()[0]
	part.ID = "p9"
	part.RiskScore = 99
	catalog.AddPart(part)

	after, err := advisor.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Len(t, after.Watchlist, len(before.Watchlist)+1)
	assert.Greater(t, after.KPIs.SupplyRiskIndex, before.KPIs.SupplyRiskIndex)
}

func TestAdvisor_Parts(t *testing.T) {
	advisor := newTestAdvisor(t, fixtures.ReferenceCatalog())

	report, err := advisor.Parts(context.Background(), portfolio.PartQuery{Category: "Power"})
	require.NoError(t, err)
	require.Len(t, report.Parts, 2)

	p6 := report.Parts[0]
	assert.Equal(t, entities.PartID("p6"), p6.Part.ID)
	assert.Equal(t, entities.SeverityHigh, p6.RiskBand)
	assert.Equal(t, []string{
		"Non-active lifecycle status",
		"Lead times extending",
		"Price trending upward",
		"Low inventory coverage",
	}, p6.RiskFactors)
	require.NotNil(t, p6.Inventory)
	assert.Equal(t, "Austin TX", p6.Inventory.Location)
	assert.Equal(t, 1, report.High)
	assert.Equal(t, 1, report.Medium)
	assert.Equal(t, 0, report.Low)
}

func TestAdvisor_Part(t *testing.T) {
	advisor := newTestAdvisor(t, fixtures.ReferenceCatalog())

	insight, err := advisor.Part(context.Background(), "p5")
	require.NoError(t, err)
	assert.Equal(t, entities.SeverityLow, insight.RiskBand)
	assert.Empty(t, insight.RiskFactors)
	require.NotNil(t, insight.Forecast)
	assert.Equal(t, 9500.0, insight.Forecast.WeeklyDemand)

	_, err = advisor.Part(context.Background(), "zz")
	assert.ErrorIs(t, err, entities.ErrNotFound)
}

func TestAdvisor_ValidateCatalog(t *testing.T) {
	advisor := newTestAdvisor(t, fixtures.ReferenceCatalog())
	result, err := advisor.ValidateCatalog(context.Background())
	require.NoError(t, err)
	assert.True(t, result.Valid())
	assert.Empty(t, result.PartsWithoutInventory)

	sparse, err := memory.LoadCatalog(fixtures.ReferenceParts()[:2], fixtures.ReferenceInventory()[:1], nil)
	require.NoError(t, err)
	result, err = newTestAdvisor(t, sparse).ValidateCatalog(context.Background())
	require.NoError(t, err)
	assert.True(t, result.Valid())
	assert.Equal(t, []entities.PartID{"p2"}, result.PartsWithoutInventory)
	assert.Equal(t, []entities.PartID{"p1", "p2"}, result.PartsWithoutForecast)
}
