// Package fixtures holds the canonical reference dataset used for conformance
// testing and as the default catalog of the CLI.
package fixtures

import (
	"github.com/shopspring/decimal"

	"github.com/vsinha/procure/pkg/domain/entities"
	"github.com/vsinha/procure/pkg/infrastructure/repositories/memory"
)

// ReferenceParts returns the eight reference parts in catalog order
func ReferenceParts() []*entities.Part {
	return []*entities.Part{
		{
			ID:              "p1",
			MPN:             "STM32F407VGT6",
			Description:     "32-bit ARM Cortex-M4 MCU",
			Manufacturer:    "STMicroelectronics",
			Category:        "MCU",
			Lifecycle:       entities.Active,
			LeadTimeWeeks:   18,
			LeadTimeTrend:   entities.Increasing,
			PriceUSD:        decimal.RequireFromString("12.45"),
			PriceTrend:      entities.Increasing,
			InventoryGlobal: 45000,
			RiskScore:       72,
		},
		{
			ID:              "p2",
			MPN:             "ATMEGA328P-PU",
			Description:     "8-bit AVR Microcontroller",
			Manufacturer:    "Microchip",
			Category:        "MCU",
			Lifecycle:       entities.Active,
			LeadTimeWeeks:   24,
			LeadTimeTrend:   entities.Stable,
			PriceUSD:        decimal.RequireFromString("3.85"),
			PriceTrend:      entities.Stable,
			InventoryGlobal: 120000,
			RiskScore:       45,
		},
		{
			ID:              "p3",
			MPN:             "LM7805CT",
			Description:     "5V Linear Voltage Regulator",
			Manufacturer:    "Texas Instruments",
			Category:        "Power",
			Lifecycle:       entities.NRND,
			LeadTimeWeeks:   12,
			LeadTimeTrend:   entities.Decreasing,
			PriceUSD:        decimal.RequireFromString("0.85"),
			PriceTrend:      entities.Increasing,
			InventoryGlobal: 500000,
			RiskScore:       58,
		},
		{
			ID:              "p4",
			MPN:             "ESP32-WROOM-32E",
			Description:     "WiFi + BT Module",
			Manufacturer:    "Espressif",
			Category:        "Wireless",
			Lifecycle:       entities.Active,
			LeadTimeWeeks:   16,
			LeadTimeTrend:   entities.Decreasing,
			PriceUSD:        decimal.RequireFromString("4.20"),
			PriceTrend:      entities.Decreasing,
			InventoryGlobal: 250000,
			RiskScore:       32,
		},
		{
			ID:              "p5",
			MPN:             "MLCC-0805-10uF",
			Description:     "10µF MLCC Capacitor",
			Manufacturer:    "Murata",
			Category:        "Passive",
			Lifecycle:       entities.Active,
			LeadTimeWeeks:   8,
			LeadTimeTrend:   entities.Stable,
			PriceUSD:        decimal.RequireFromString("0.12"),
			PriceTrend:      entities.Stable,
			InventoryGlobal: 5000000,
			RiskScore:       15,
		},
		{
			ID:              "p6",
			MPN:             "TPS62090RGTR",
			Description:     "Step-Down DC/DC Converter",
			Manufacturer:    "Texas Instruments",
			Category:        "Power",
			Lifecycle:       entities.EOL,
			LeadTimeWeeks:   52,
			LeadTimeTrend:   entities.Increasing,
			PriceUSD:        decimal.RequireFromString("2.95"),
			PriceTrend:      entities.Increasing,
			InventoryGlobal: 8500,
			RiskScore:       92,
		},
		{
			ID:              "p7",
			MPN:             "NRF52840-QIAA",
			Description:     "Bluetooth 5.0 SoC",
			Manufacturer:    "Nordic Semi",
			Category:        "Wireless",
			Lifecycle:       entities.Active,
			LeadTimeWeeks:   20,
			LeadTimeTrend:   entities.Stable,
			PriceUSD:        decimal.RequireFromString("6.75"),
			PriceTrend:      entities.Stable,
			InventoryGlobal: 85000,
			RiskScore:       48,
		},
		{
			ID:              "p8",
			MPN:             "AD7606BSTZ",
			Description:     "16-bit 8-Channel ADC",
			Manufacturer:    "Analog Devices",
			Category:        "Analog",
			Lifecycle:       entities.Active,
			LeadTimeWeeks:   28,
			LeadTimeTrend:   entities.Increasing,
			PriceUSD:        decimal.RequireFromString("28.50"),
			PriceTrend:      entities.Increasing,
			InventoryGlobal: 12000,
			RiskScore:       78,
		},
	}
}

// ReferenceInventory returns one internal inventory record per reference part
func ReferenceInventory() []*entities.InternalInventory {
	return []*entities.InternalInventory{
		{PartID: "p1", Quantity: 2500, Location: "Austin TX", SafetyStock: 1000, CoverageWeeks: 8},
		{PartID: "p2", Quantity: 15000, Location: "Austin TX", SafetyStock: 5000, CoverageWeeks: 24},
		{PartID: "p3", Quantity: 8000, Location: "Shenzhen", SafetyStock: 3000, CoverageWeeks: 12},
		{PartID: "p4", Quantity: 6000, Location: "Austin TX", SafetyStock: 2000, CoverageWeeks: 10},
		{PartID: "p5", Quantity: 500000, Location: "Multiple", SafetyStock: 100000, CoverageWeeks: 52},
		{PartID: "p6", Quantity: 450, Location: "Austin TX", SafetyStock: 500, CoverageWeeks: 3},
		{PartID: "p7", Quantity: 4200, Location: "Austin TX", SafetyStock: 1500, CoverageWeeks: 14},
		{PartID: "p8", Quantity: 800, Location: "Shenzhen", SafetyStock: 400, CoverageWeeks: 6},
	}
}

// ReferenceForecasts returns one forecast per reference part
func ReferenceForecasts() []*entities.Forecast {
	return []*entities.Forecast{
		{PartID: "p1", WeeklyDemand: 300, HorizonWeeks: 26},
		{PartID: "p2", WeeklyDemand: 600, HorizonWeeks: 26},
		{PartID: "p3", WeeklyDemand: 650, HorizonWeeks: 26},
		{PartID: "p4", WeeklyDemand: 580, HorizonWeeks: 26},
		{PartID: "p5", WeeklyDemand: 9500, HorizonWeeks: 26},
		{PartID: "p6", WeeklyDemand: 150, HorizonWeeks: 26},
		{PartID: "p7", WeeklyDemand: 300, HorizonWeeks: 26},
		{PartID: "p8", WeeklyDemand: 120, HorizonWeeks: 26},
	}
}

// ReferenceCatalog loads the reference dataset into a fresh in-memory catalog
func ReferenceCatalog() *memory.Catalog {
	catalog, err := memory.LoadCatalog(ReferenceParts(), ReferenceInventory(), ReferenceForecasts())
	if err != nil {
		panic(err)
	}
	return catalog
}
