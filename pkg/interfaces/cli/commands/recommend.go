package commands

import (
	"github.com/spf13/cobra"

	"github.com/vsinha/procure/pkg/application/services/recommendation"
	"github.com/vsinha/procure/pkg/domain/entities"
	"github.com/vsinha/procure/pkg/interfaces/cli/output"
)

var scenarioFlags = []string{"forecast-change", "inventory-change", "price-change", "lead-time-change"}

func newRecommendCommand(a *app) *cobra.Command {
	var (
		delta  entities.ScenarioDelta
		policy string
		seed   uint64
	)

	cmd := &cobra.Command{
		Use:   "recommend <part-id>",
		Short: "Recommend a procurement action for one part",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("policy") {
				policy = a.cfg.Policy
			}
			if !flags.Changed("seed") {
				seed = a.cfg.Seed
			}
			p, err := recommendation.ParsePolicy(policy)
			if err != nil {
				return err
			}

			var scenario *entities.ScenarioDelta
			for _, name := range scenarioFlags {
				if flags.Changed(name) {
					scenario = &delta
					break
				}
			}

			advisor, err := a.advisor(p, seed)
			if err != nil {
				return err
			}
			rec, err := advisor.Recommend(cmd.Context(), entities.PartID(args[0]), scenario)
			if err != nil {
				return err
			}
			return output.Recommendation(a.opts.Stdout, a.cfg.Output, rec)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&delta.ForecastChange, "forecast-change", 0, "scenario: forecast change in percent")
	f.Float64Var(&delta.InventoryChange, "inventory-change", 0, "scenario: inventory change in percent")
	f.Float64Var(&delta.PriceChange, "price-change", 0, "scenario: price change in percent")
	f.Float64Var(&delta.LeadTimeChange, "lead-time-change", 0, "scenario: lead time change in weeks")
	f.StringVar(&policy, "policy", "strict", "unknown part policy: strict or lenient")
	f.Uint64Var(&seed, "seed", 0, "random seed for reproducible output (0 = system entropy)")
	return cmd
}
