package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/procure/pkg/domain/entities"
	"github.com/vsinha/procure/pkg/domain/services"
)

func TestReferenceCatalog_IsConsistent(t *testing.T) {
	result := services.ValidateCatalog(ReferenceParts(), ReferenceInventory(), ReferenceForecasts())
	assert.True(t, result.Valid(), "errors: %v", result.Errors)
	assert.Empty(t, result.OrphanedInventory)
	assert.Empty(t, result.PartsWithoutInventory)
	assert.Empty(t, result.PartsWithoutForecast)
	assert.Equal(t, []entities.PartID{"p6"}, result.BelowSafetyStock)
}

func TestReferenceCatalog_MPNsInOrder(t *testing.T) {
	parts, err := ReferenceCatalog().GetAllParts()
	require.NoError(t, err)

	mpns := make([]string, 0, len(parts))
	for _, p := range parts {
		mpns = append(mpns, p.MPN)
	}
	assert.Equal(t, []string{
		"STM32F407VGT6", "ATMEGA328P-PU", "LM7805CT", "ESP32-WROOM-32E",
		"MLCC-0805-10uF", "TPS62090RGTR", "NRF52840-QIAA", "AD7606BSTZ",
	}, mpns)

	p6, err := ReferenceCatalog().GetPart("p6")
	require.NoError(t, err)
	assert.Equal(t, entities.EOL, p6.Lifecycle)
	assert.Equal(t, 92, p6.RiskScore)
}
