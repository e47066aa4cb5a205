package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vsinha/procure/pkg/domain/entities"
)

// Writer exports catalog data in the layout Loader reads
type Writer struct{}

// NewWriter creates a new CSV writer
func NewWriter() *Writer {
	return &Writer{}
}

// WriteCatalogDir writes parts.csv, inventory.csv and forecasts.csv into dir, creating it if needed
func (w *Writer) WriteCatalogDir(
	dir string,
	parts []*entities.Part,
	inventory []*entities.InternalInventory,
	forecasts []*entities.Forecast,
) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	partRows := make([][]string, len(parts))
	for i, p := range parts {
		partRows[i] = []string{
			string(p.ID), p.MPN, p.Description, p.Manufacturer, p.Category, p.Lifecycle.String(),
			strconv.Itoa(p.LeadTimeWeeks), p.LeadTimeTrend.String(),
			p.PriceUSD.String(), p.PriceTrend.String(),
			strconv.FormatInt(p.InventoryGlobal, 10), strconv.Itoa(p.RiskScore),
		}
	}
	if err := writeRecords(filepath.Join(dir, PartsFile), partsHeader, partRows); err != nil {
		return err
	}

	invRows := make([][]string, len(inventory))
	for i, inv := range inventory {
		invRows[i] = []string{
			string(inv.PartID),
			strconv.FormatInt(inv.Quantity, 10),
			inv.Location,
			strconv.FormatInt(inv.SafetyStock, 10),
			strconv.FormatFloat(inv.CoverageWeeks, 'f', -1, 64),
		}
	}
	if err := writeRecords(filepath.Join(dir, InventoryFile), inventoryHeader, invRows); err != nil {
		return err
	}

	fcRows := make([][]string, len(forecasts))
	for i, f := range forecasts {
		fcRows[i] = []string{
			string(f.PartID),
			strconv.FormatFloat(f.WeeklyDemand, 'f', -1, 64),
			strconv.Itoa(f.HorizonWeeks),
		}
	}
	return writeRecords(filepath.Join(dir, ForecastsFile), forecastsHeader, fcRows)
}

func writeRecords(filename string, header []string, rows [][]string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
