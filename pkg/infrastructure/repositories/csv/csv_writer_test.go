package csv

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/procure/pkg/infrastructure/fixtures"
)

func TestWriter_RoundTripsReferenceCatalog(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "export")
	parts, inventory, forecasts := fixtures.ReferenceParts(), fixtures.ReferenceInventory(), fixtures.ReferenceForecasts()

	require.NoError(t, NewWriter().WriteCatalogDir(dir, parts, inventory, forecasts))

	catalog, err := NewLoader().LoadCatalogDir(dir)
	require.NoError(t, err)

	loaded, err := catalog.GetAllParts()
	require.NoError(t, err)
	require.Len(t, loaded, len(parts))
	for i, p := range parts {
		got := loaded[i]
		assert.Equal(t, p.ID, got.ID)
		assert.Equal(t, p.MPN, got.MPN)
		assert.Equal(t, p.Description, got.Description)
		assert.Equal(t, p.Lifecycle, got.Lifecycle)
		assert.Equal(t, p.LeadTimeTrend, got.LeadTimeTrend)
		assert.Equal(t, p.PriceTrend, got.PriceTrend)
		assert.Equal(t, p.RiskScore, got.RiskScore)
		assert.True(t, p.PriceUSD.Equal(got.PriceUSD), "%s price %s != %s", p.ID, p.PriceUSD, got.PriceUSD)
	}

	inv, ok := catalog.GetInventory("p6")
	require.True(t, ok)
	assert.Equal(t, "Austin TX", inv.Location)
	assert.Equal(t, 3.0, inv.CoverageWeeks)

	fc, ok := catalog.GetForecast("p5")
	require.True(t, ok)
	assert.Equal(t, 9500.0, fc.WeeklyDemand)
	assert.Equal(t, 26, fc.HorizonWeeks)
}

func TestWriter_BadDirectory(t *testing.T) {
	file := writeFile(t, t.TempDir(), "blocker", "x")
	err := NewWriter().WriteCatalogDir(filepath.Join(file, "sub"), fixtures.ReferenceParts(), nil, nil)
	assert.Error(t, err)
}
