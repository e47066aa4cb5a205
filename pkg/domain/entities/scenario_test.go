package entities

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarioDelta_Validate(t *testing.T) {
	require.NoError(t, (&ScenarioDelta{}).Validate())
	require.NoError(t, (&ScenarioDelta{ForecastChange: -50, InventoryChange: 50, PriceChange: 30, LeadTimeChange: -8}).Validate())

	testCases := []struct {
		name     string
		scenario ScenarioDelta
		field    string
	}{
		{"nan forecast", ScenarioDelta{ForecastChange: math.NaN()}, "forecastChange"},
		{"inf inventory", ScenarioDelta{InventoryChange: math.Inf(1)}, "inventoryChange"},
		{"nan price", ScenarioDelta{PriceChange: math.NaN()}, "priceChange"},
		{"negative inf lead time", ScenarioDelta{LeadTimeChange: math.Inf(-1)}, "leadTimeChange"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.scenario.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestScenarioDelta_IsZero(t *testing.T) {
	var nilScenario *ScenarioDelta
	assert.True(t, nilScenario.IsZero())
	assert.True(t, (&ScenarioDelta{}).IsZero())
	assert.False(t, (&ScenarioDelta{PriceChange: 5}).IsZero())
}
