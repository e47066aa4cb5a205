package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	csvrepo "github.com/vsinha/procure/pkg/infrastructure/repositories/csv"
	yamlrepo "github.com/vsinha/procure/pkg/infrastructure/repositories/yaml"
)

func newExportCommand(a *app) *cobra.Command {
	var (
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the loaded catalog as a CSV directory or YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				return fmt.Errorf("--out is required")
			}
			parts, err := a.catalog.GetAllParts()
			if err != nil {
				return err
			}
			inventory, err := a.catalog.GetAllInventory()
			if err != nil {
				return err
			}
			forecasts, err := a.catalog.GetAllForecasts()
			if err != nil {
				return err
			}

			switch strings.ToLower(format) {
			case "csv":
				err = csvrepo.NewWriter().WriteCatalogDir(out, parts, inventory, forecasts)
			case "yaml":
				err = writeYAMLCatalog(out, yamlrepo.Document{Parts: parts, Inventory: inventory, Forecasts: forecasts})
			default:
				return fmt.Errorf("unsupported export format: %s", format)
			}
			if err != nil {
				return err
			}
			a.log.Info().Str("path", out).Int("parts", len(parts)).Msg("catalog exported")
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "yaml", "export format: yaml or csv")
	cmd.Flags().StringVar(&out, "out", "", "output file (yaml) or directory (csv)")
	return cmd
}

func writeYAMLCatalog(path string, doc yamlrepo.Document) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()
	return yamlrepo.NewLoader().WriteCatalog(file, doc)
}
