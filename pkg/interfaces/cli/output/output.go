package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/vsinha/procure/pkg/application/dto"
	"github.com/vsinha/procure/pkg/domain/entities"
	"github.com/vsinha/procure/pkg/domain/services"
)

// Supported formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// render writes v in the requested format, delegating text to the caller
func render(w io.Writer, format string, v any, text func(io.Writer) error) error {
	switch strings.ToLower(format) {
	case "", FormatText:
		return text(w)
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func money(d decimal.Decimal) string {
	return "$" + humanize.CommafWithDigits(d.InexactFloat64(), 2)
}

// Recommendation writes a single recommendation
func Recommendation(w io.Writer, format string, rec *entities.Recommendation) error {
	return render(w, format, rec, func(w io.Writer) error {
		fmt.Fprintf(w, "📋 Recommendation %s\n", rec.ID)
		fmt.Fprintf(w, "======================\n\n")
		fmt.Fprintf(w, "Part:        %s\n", rec.PartID)
		fmt.Fprintf(w, "Action:      %s\n", rec.Action)
		fmt.Fprintf(w, "Confidence:  %d%%\n", rec.Confidence)
		fmt.Fprintf(w, "Savings:     %s\n", money(rec.FinancialImpact.Savings))
		fmt.Fprintf(w, "Risk delta:  %+d\n", rec.FinancialImpact.RiskDelta)
		fmt.Fprintf(w, "Generated:   %s\n\n", rec.Timestamp.Format("2006-01-02 15:04:05"))
		fmt.Fprintf(w, "%s\n\n", rec.Explanation)

		fmt.Fprintf(w, "Key drivers:\n")
		for _, d := range rec.Drivers {
			fmt.Fprintf(w, "  • %s\n", d)
		}
		fmt.Fprintf(w, "\nTradeoffs:\n")
		for _, t := range rec.Tradeoffs {
			fmt.Fprintf(w, "  • %s\n", t)
		}
		return nil
	})
}

// Dashboard writes a portfolio snapshot
func Dashboard(w io.Writer, format string, snap *dto.DashboardSnapshot) error {
	return render(w, format, snap, func(w io.Writer) error {
		k := snap.KPIs
		fmt.Fprintf(w, "📊 Portfolio Dashboard (%s)\n", snap.GeneratedAt.Format("2006-01-02 15:04:05"))
		fmt.Fprintf(w, "======================\n\n")
		fmt.Fprintf(w, "Supply Risk Index:        %d\n", k.SupplyRiskIndex)
		fmt.Fprintf(w, "Demand Pressure Index:    %d\n", k.DemandPressureIndex)
		fmt.Fprintf(w, "Inventory Coverage:       %.1f weeks\n", k.InventoryCoverageWeeks)
		fmt.Fprintf(w, "Cash Exposure:            %s\n", money(k.CashExposure))
		fmt.Fprintf(w, "Cost Avoidance Potential: %s\n\n", money(k.CostAvoidancePotential))

		p := snap.MarketPulse
		fmt.Fprintf(w, "📈 Market Pulse\n")
		fmt.Fprintf(w, "%-6s %-12s %-12s\n", "Week", "Lead Time", "Price Index")
		fmt.Fprintf(w, "%-6s %-12s %-12s\n", "------", "------------", "------------")
		for i := range p.LeadTimeTrend {
			price := 0.0
			if i < len(p.PricingTrend) {
				price = p.PricingTrend[i].Value
			}
			fmt.Fprintf(w, "%-6s %-12.1f %-12.1f\n", p.LeadTimeTrend[i].Week, p.LeadTimeTrend[i].Value, price)
		}
		fmt.Fprintf(w, "\nEOL risk parts: %d\n", p.EOLRiskCount)
		for _, rc := range p.RegionalConstraints {
			fmt.Fprintf(w, "  %-14s %s\n", rc.Region, rc.Severity)
		}
		fmt.Fprintln(w)

		fmt.Fprintf(w, "⚠️  Critical Watchlist:\n")
		writePartTable(w, snap.Watchlist)
		return nil
	})
}

func writePartTable(w io.Writer, parts []*entities.Part) {
	fmt.Fprintf(w, "%-4s %-18s %-10s %-9s %-6s %-10s %-12s\n",
		"ID", "MPN", "Category", "Lifecycle", "Risk", "Lead Time", "Price")
	fmt.Fprintf(w, "%-4s %-18s %-10s %-9s %-6s %-10s %-12s\n",
		"----", "------------------", "----------", "---------", "------", "----------", "------------")
	for _, p := range parts {
		fmt.Fprintf(w, "%-4s %-18s %-10s %-9s %-6d %-10s %-12s\n",
			p.ID, p.MPN, p.Category, p.Lifecycle, p.RiskScore,
			fmt.Sprintf("%dw", p.LeadTimeWeeks), "$"+p.PriceUSD.StringFixed(2))
	}
}

// Parts writes a catalog query result
func Parts(w io.Writer, format string, report *dto.PartsReport) error {
	return render(w, format, report, func(w io.Writer) error {
		fmt.Fprintf(w, "🔍 Parts (%d): %d high, %d medium, %d low risk\n\n",
			len(report.Parts), report.High, report.Medium, report.Low)

		parts := make([]*entities.Part, len(report.Parts))
		for i, in := range report.Parts {
			parts[i] = in.Part
		}
		writePartTable(w, parts)

		for _, in := range report.Parts {
			if len(in.RiskFactors) == 0 {
				continue
			}
			fmt.Fprintf(w, "\n%s (%s risk): %s", in.Part.MPN, in.RiskBand, strings.Join(in.RiskFactors, ", "))
		}
		fmt.Fprintln(w)
		return nil
	})
}

// Validation writes a catalog validation report
func Validation(w io.Writer, format string, result *services.CatalogValidationResult) error {
	return render(w, format, result, func(w io.Writer) error {
		if result.Valid() {
			fmt.Fprintf(w, "✅ Catalog is valid\n")
		} else {
			fmt.Fprintf(w, "❌ Catalog has %d error(s):\n", len(result.Errors))
			for _, e := range result.Errors {
				fmt.Fprintf(w, "  • %s\n", e)
			}
		}
		report := func(label string, ids []entities.PartID) {
			if len(ids) > 0 {
				fmt.Fprintf(w, "⚠️  %s: %v\n", label, ids)
			}
		}
		report("Inventory for unknown parts", result.OrphanedInventory)
		report("Forecasts for unknown parts", result.OrphanedForecasts)
		report("Parts without inventory", result.PartsWithoutInventory)
		report("Parts without forecast", result.PartsWithoutForecast)
		report("Parts below safety stock", result.BelowSafetyStock)
		return nil
	})
}
