package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vsinha/procure/pkg/application/dto"
	"github.com/vsinha/procure/pkg/application/services/portfolio"
	"github.com/vsinha/procure/pkg/application/services/recommendation"
	"github.com/vsinha/procure/pkg/domain/entities"
	"github.com/vsinha/procure/pkg/interfaces/cli/output"
)

func newPartsCommand(a *app) *cobra.Command {
	var (
		search   string
		category string
		sortBy   string
		order    string
	)

	cmd := &cobra.Command{
		Use:   "parts [part-id]",
		Short: "Search, filter and sort catalog parts with their risk factors",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			advisor, err := a.advisor(recommendation.PolicyStrict, a.cfg.Seed)
			if err != nil {
				return err
			}

			if len(args) == 1 {
				insight, err := advisor.Part(cmd.Context(), entities.PartID(args[0]))
				if err != nil {
					return err
				}
				dist := portfolio.RiskDistribution([]*entities.Part{insight.Part})
				return output.Parts(a.opts.Stdout, a.cfg.Output, &dto.PartsReport{
					Parts:  []dto.PartInsight{*insight},
					High:   dist.High,
					Medium: dist.Medium,
					Low:    dist.Low,
				})
			}

			field, err := portfolio.ParseSortField(sortBy)
			if err != nil {
				return err
			}
			var ascending bool
			switch strings.ToLower(order) {
			case "asc":
				ascending = true
			case "", "desc":
			default:
				return entities.InvalidInputf("unknown sort order %q: expected asc or desc", order)
			}

			report, err := advisor.Parts(cmd.Context(), portfolio.PartQuery{
				Search:    search,
				Category:  category,
				SortBy:    field,
				Ascending: ascending,
			})
			if err != nil {
				return err
			}
			return output.Parts(a.opts.Stdout, a.cfg.Output, report)
		},
	}

	f := cmd.Flags()
	f.StringVar(&search, "search", "", "case-insensitive match on MPN or description")
	f.StringVar(&category, "category", portfolio.AllCategories, "category filter")
	f.StringVar(&sortBy, "sort", "risk", "sort by risk, leadTime or price")
	f.StringVar(&order, "order", "desc", "sort order: asc or desc")
	return cmd
}
