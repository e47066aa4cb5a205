package csv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/procure/pkg/domain/entities"
)

const partsCSV = `id,mpn,description,manufacturer,category,lifecycle,lead_time_weeks,lead_time_trend,price_usd,price_trend,inventory_global,risk_score
p1,STM32F407VGT6,32-bit ARM Cortex-M4 MCU,STMicroelectronics,MCU,Active,18,increasing,12.45,increasing,45000,72
p6,TPS62090RGTR,Step-Down DC/DC Converter,Texas Instruments,Power,EOL,52,increasing,2.95,increasing,8500,92
`

const inventoryCSV = `part_id,quantity,location,safety_stock,coverage_weeks
p1,2500,Austin TX,1000,8
`

const forecastsCSV = `part_id,weekly_demand,horizon_weeks
p1,300,26
p6,150,26
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_LoadCatalogDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, PartsFile, partsCSV)
	writeFile(t, dir, InventoryFile, inventoryCSV)
	writeFile(t, dir, ForecastsFile, forecastsCSV)

	catalog, err := NewLoader().LoadCatalogDir(dir)
	require.NoError(t, err)

	p6, err := catalog.GetPart("p6")
	require.NoError(t, err)
	assert.Equal(t, entities.EOL, p6.Lifecycle)
	assert.Equal(t, "2.95", p6.PriceUSD.String())
	assert.Equal(t, "Texas Instruments", p6.Manufacturer)

	_, ok := catalog.GetInventory("p6")
	assert.False(t, ok, "p6 has no inventory row")

	inv, ok := catalog.GetInventory("p1")
	require.True(t, ok)
	assert.Equal(t, "Austin TX", inv.Location)

	f, ok := catalog.GetForecast("p6")
	require.True(t, ok)
	assert.Equal(t, 26, f.HorizonWeeks)
}

func TestLoader_OptionalFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, PartsFile, partsCSV)

	catalog, err := NewLoader().LoadCatalogDir(dir)
	require.NoError(t, err)

	all, err := catalog.GetAllInventory()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestLoader_Errors(t *testing.T) {
	testCases := []struct {
		name        string
		content     string
		expectError string
	}{
		{
			"header only",
			"id,mpn,description,manufacturer,category,lifecycle,lead_time_weeks,lead_time_trend,price_usd,price_trend,inventory_global,risk_score\n",
			"parts CSV must have header and at least one data row",
		},
		{
			"bad lifecycle",
			"id,mpn,description,manufacturer,category,lifecycle,lead_time_weeks,lead_time_trend,price_usd,price_trend,inventory_global,risk_score\np1,M,d,m,c,Retired,1,stable,1,stable,1,1\n",
			"parts CSV row 2: invalid lifecycle: Retired (expected: Active, NRND, EOL, or Obsolete)",
		},
		{
			"bad price",
			"id,mpn,description,manufacturer,category,lifecycle,lead_time_weeks,lead_time_trend,price_usd,price_trend,inventory_global,risk_score\np1,M,d,m,c,Active,1,stable,abc,stable,1,1\n",
			"parts CSV row 2: invalid price_usd: abc",
		},
		{
			"out of range risk",
			"id,mpn,description,manufacturer,category,lifecycle,lead_time_weeks,lead_time_trend,price_usd,price_trend,inventory_global,risk_score\np1,M,d,m,c,Active,1,stable,1,stable,1,140\n",
			"parts CSV row 2: risk score must be within [0,100], got 140",
		},
		{
			"short row",
			"id,mpn,description,manufacturer,category,lifecycle,lead_time_weeks,lead_time_trend,price_usd,price_trend,inventory_global,risk_score\np1,M\n",
			"parts CSV row 2: expected 12 columns, got 2",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), PartsFile, tc.content)
			_, err := NewLoader().LoadParts(path)
			require.Error(t, err)
			assert.Equal(t, tc.expectError, err.Error())
		})
	}
}

func TestLoader_HeaderMismatch(t *testing.T) {
	path := writeFile(t, t.TempDir(), InventoryFile, "part,qty\np1,1\n")
	_, err := NewLoader().LoadInventory(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inventory CSV header mismatch")
}
