package yaml

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/procure/pkg/domain/entities"
	"github.com/vsinha/procure/pkg/infrastructure/fixtures"
)

const catalogYAML = `
parts:
  - id: p5
    mpn: MLCC-0805-10uF
    description: 10uF MLCC Capacitor
    manufacturer: Murata
    category: Passive
    lifecycle: Active
    lead_time: 8
    lead_time_trend: stable
    price_usd: 0.12
    price_trend: stable
    inventory_global: 5000000
    risk_score: 15
inventory:
  - part_id: p5
    quantity: 500000
    location: Multiple
    safety_stock: 100000
    coverage_weeks: 52
forecasts:
  - part_id: p5
    weekly_demand: 9500
    horizon: 26
`

func TestLoader_LoadCatalog(t *testing.T) {
	catalog, err := NewLoader().LoadCatalog(strings.NewReader(catalogYAML))
	require.NoError(t, err)

	p5, err := catalog.GetPart("p5")
	require.NoError(t, err)
	assert.Equal(t, entities.Active, p5.Lifecycle)
	assert.Equal(t, entities.Stable, p5.PriceTrend)
	assert.Equal(t, "0.12", p5.PriceUSD.String())

	inv, ok := catalog.GetInventory("p5")
	require.True(t, ok)
	assert.Equal(t, 52.0, inv.CoverageWeeks)
}

func TestLoader_RejectsUnknownFieldsAndValues(t *testing.T) {
	_, err := NewLoader().LoadCatalog(strings.NewReader("parts:\n  - id: p1\n    colour: red\n"))
	require.Error(t, err)

	_, err = NewLoader().LoadCatalog(strings.NewReader("parts:\n  - id: p1\n    lifecycle: Retired\n"))
	require.Error(t, err)

	_, err = NewLoader().LoadCatalog(strings.NewReader("inventory: []\n"))
	require.Error(t, err)
	assert.Equal(t, "catalog YAML must contain at least one part", err.Error())
}

func TestLoader_WriteThenLoadReferenceCatalog(t *testing.T) {
	var buf bytes.Buffer
	loader := NewLoader()
	require.NoError(t, loader.WriteCatalog(&buf, Document{
		Parts:     fixtures.ReferenceParts(),
		Inventory: fixtures.ReferenceInventory(),
		Forecasts: fixtures.ReferenceForecasts(),
	}))

	catalog, err := loader.LoadCatalog(&buf)
	require.NoError(t, err)

	parts, err := catalog.GetAllParts()
	require.NoError(t, err)
	require.Len(t, parts, 8)
	assert.Equal(t, "AD7606BSTZ", parts[7].MPN)
	assert.Equal(t, "28.5", parts[7].PriceUSD.String())
	assert.Equal(t, entities.NRND, parts[2].Lifecycle)
}
