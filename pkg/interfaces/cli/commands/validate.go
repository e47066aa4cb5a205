package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vsinha/procure/pkg/application/services/recommendation"
	"github.com/vsinha/procure/pkg/interfaces/cli/output"
)

func newValidateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check catalog consistency",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			advisor, err := a.advisor(recommendation.PolicyStrict, a.cfg.Seed)
			if err != nil {
				return err
			}
			result, err := advisor.ValidateCatalog(cmd.Context())
			if err != nil {
				return err
			}
			if err := output.Validation(a.opts.Stdout, a.cfg.Output, result); err != nil {
				return err
			}
			if !result.Valid() {
				return fmt.Errorf("catalog validation failed with %d error(s)", len(result.Errors))
			}
			return nil
		},
	}
}
