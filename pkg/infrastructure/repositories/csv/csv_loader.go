package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vsinha/procure/pkg/domain/entities"
	"github.com/vsinha/procure/pkg/infrastructure/repositories/memory"
)

// File names expected inside a catalog directory
const (
	PartsFile     = "parts.csv"
	InventoryFile = "inventory.csv"
	ForecastsFile = "forecasts.csv"
)

var (
	partsHeader = []string{
		"id", "mpn", "description", "manufacturer", "category", "lifecycle",
		"lead_time_weeks", "lead_time_trend", "price_usd", "price_trend", "inventory_global", "risk_score",
	}
	inventoryHeader = []string{"part_id", "quantity", "location", "safety_stock", "coverage_weeks"}
	forecastsHeader = []string{"part_id", "weekly_demand", "horizon_weeks"}
)

// Loader handles loading catalog data from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadCatalogDir loads parts.csv, inventory.csv and forecasts.csv from dir.
// inventory.csv and forecasts.csv are optional.
func (l *Loader) LoadCatalogDir(dir string) (*memory.Catalog, error) {
	parts, err := l.LoadParts(filepath.Join(dir, PartsFile))
	if err != nil {
		return nil, err
	}

	var inventory []*entities.InternalInventory
	if path := filepath.Join(dir, InventoryFile); fileExists(path) {
		inventory, err = l.LoadInventory(path)
		if err != nil {
			return nil, err
		}
	}

	var forecasts []*entities.Forecast
	if path := filepath.Join(dir, ForecastsFile); fileExists(path) {
		forecasts, err = l.LoadForecasts(path)
		if err != nil {
			return nil, err
		}
	}

	return memory.LoadCatalog(parts, inventory, forecasts)
}

// LoadParts loads parts from a CSV file
func (l *Loader) LoadParts(filename string) ([]*entities.Part, error) {
	records, err := readRecords(filename, "parts", partsHeader, true)
	if err != nil {
		return nil, err
	}

	parts := make([]*entities.Part, 0, len(records))
	for i, record := range records {
		part, err := parsePart(record)
		if err != nil {
			return nil, fmt.Errorf("parts CSV row %d: %w", i+2, err)
		}
		parts = append(parts, part)
	}

	return parts, nil
}

// LoadInventory loads internal inventory records from a CSV file
func (l *Loader) LoadInventory(filename string) ([]*entities.InternalInventory, error) {
	records, err := readRecords(filename, "inventory", inventoryHeader, false)
	if err != nil {
		return nil, err
	}

	inventory := make([]*entities.InternalInventory, 0, len(records))
	for i, record := range records {
		inv, err := parseInventory(record)
		if err != nil {
			return nil, fmt.Errorf("inventory CSV row %d: %w", i+2, err)
		}
		inventory = append(inventory, inv)
	}

	return inventory, nil
}

// LoadForecasts loads demand forecasts from a CSV file
func (l *Loader) LoadForecasts(filename string) ([]*entities.Forecast, error) {
	records, err := readRecords(filename, "forecasts", forecastsHeader, false)
	if err != nil {
		return nil, err
	}

	forecasts := make([]*entities.Forecast, 0, len(records))
	for i, record := range records {
		f, err := parseForecast(record)
		if err != nil {
			return nil, fmt.Errorf("forecasts CSV row %d: %w", i+2, err)
		}
		forecasts = append(forecasts, f)
	}

	return forecasts, nil
}

// Helper functions for parsing CSV records

// readRecords opens a CSV file, checks its header and returns the data rows
func readRecords(filename, name string, expectedHeader []string, requireRows bool) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s file %s: %w", name, filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s CSV: %w", name, err)
	}

	if len(records) == 0 || (requireRows && len(records) < 2) {
		return nil, fmt.Errorf("%s CSV must have header and at least one data row", name)
	}

	header := records[0]
	if !validateHeader(header, expectedHeader) {
		return nil, fmt.Errorf("%s CSV header mismatch. Expected: %v, Got: %v", name, expectedHeader, header)
	}

	rows := records[1:]
	for i, record := range rows {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("%s CSV row %d: expected %d columns, got %d", name, i+2, len(expectedHeader), len(record))
		}
	}

	return rows, nil
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}

	return true
}

func parsePart(record []string) (*entities.Part, error) {
	lifecycle, err := entities.ParseLifecycle(record[5])
	if err != nil {
		return nil, fmt.Errorf("invalid lifecycle: %s (expected: Active, NRND, EOL, or Obsolete)", record[5])
	}

	leadTime, err := strconv.Atoi(strings.TrimSpace(record[6]))
	if err != nil {
		return nil, fmt.Errorf("invalid lead_time_weeks: %s", record[6])
	}

	leadTimeTrend, err := entities.ParseTrend(record[7])
	if err != nil {
		return nil, fmt.Errorf("invalid lead_time_trend: %s (expected: increasing, stable, or decreasing)", record[7])
	}

	price, err := decimal.NewFromString(strings.TrimSpace(record[8]))
	if err != nil {
		return nil, fmt.Errorf("invalid price_usd: %s", record[8])
	}

	priceTrend, err := entities.ParseTrend(record[9])
	if err != nil {
		return nil, fmt.Errorf("invalid price_trend: %s (expected: increasing, stable, or decreasing)", record[9])
	}

	inventoryGlobal, err := strconv.ParseInt(strings.TrimSpace(record[10]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid inventory_global: %s", record[10])
	}

	riskScore, err := strconv.Atoi(strings.TrimSpace(record[11]))
	if err != nil {
		return nil, fmt.Errorf("invalid risk_score: %s", record[11])
	}

	return entities.NewPart(
		entities.PartID(strings.TrimSpace(record[0])),
		record[1], record[2], record[3], record[4],
		lifecycle,
		leadTime,
		leadTimeTrend,
		price,
		priceTrend,
		inventoryGlobal,
		riskScore,
	)
}

func parseInventory(record []string) (*entities.InternalInventory, error) {
	quantity, err := strconv.ParseInt(strings.TrimSpace(record[1]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid quantity: %s", record[1])
	}

	safetyStock, err := strconv.ParseInt(strings.TrimSpace(record[3]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid safety_stock: %s", record[3])
	}

	coverage, err := strconv.ParseFloat(strings.TrimSpace(record[4]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid coverage_weeks: %s", record[4])
	}

	return entities.NewInternalInventory(
		entities.PartID(strings.TrimSpace(record[0])),
		quantity,
		record[2],
		safetyStock,
		coverage,
	)
}

func parseForecast(record []string) (*entities.Forecast, error) {
	weeklyDemand, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid weekly_demand: %s", record[1])
	}

	horizon, err := strconv.Atoi(strings.TrimSpace(record[2]))
	if err != nil {
		return nil, fmt.Errorf("invalid horizon_weeks: %s", record[2])
	}

	return entities.NewForecast(entities.PartID(strings.TrimSpace(record[0])), weeklyDemand, horizon)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
