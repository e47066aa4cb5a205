package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/vsinha/procure/pkg/application/dto"
	"github.com/vsinha/procure/pkg/application/services/orchestration"
	"github.com/vsinha/procure/pkg/application/services/recommendation"
	"github.com/vsinha/procure/pkg/interfaces/cli/output"
)

func newDashboardCommand(a *app) *cobra.Command {
	var (
		watch  string
		svgDir string
	)

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show portfolio KPIs, market pulse and the critical watchlist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			advisor, err := a.advisor(recommendation.PolicyStrict, a.cfg.Seed)
			if err != nil {
				return err
			}
			refresh := func(ctx context.Context) error {
				snap, err := advisor.Dashboard(ctx)
				if err != nil {
					return err
				}
				if svgDir != "" {
					if err := writeCharts(svgDir, snap); err != nil {
						return err
					}
				}
				a.log.Debug().Msg(orchestration.Summary(snap))
				return output.Dashboard(a.opts.Stdout, a.cfg.Output, snap)
			}

			if watch == "" {
				return refresh(cmd.Context())
			}
			return a.watch(cmd.Context(), watch, refresh)
		},
	}

	cmd.Flags().StringVar(&watch, "watch", "", `recompute on a cron schedule, e.g. "@every 30s"`)
	cmd.Flags().StringVar(&svgDir, "svg", "", "also write market pulse charts as SVG into this directory")
	return cmd
}

// watch renders once, then again on every tick of expr until ctx is done
func (a *app) watch(ctx context.Context, expr string, refresh func(context.Context) error) error {
	sched, err := cron.ParseStandard(expr)
	if err != nil {
		return fmt.Errorf("invalid watch schedule %q: %w", expr, err)
	}
	if err := refresh(ctx); err != nil {
		return err
	}

	errs := make(chan error, 1)
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	c.Schedule(sched, cron.FuncJob(func() {
		if ctx.Err() != nil {
			return
		}
		if err := refresh(ctx); err != nil {
			select {
			case errs <- err:
			default:
			}
		}
	}))
	a.log.Info().Str("schedule", expr).Msg("watching dashboard")
	c.Start()
	defer func() { <-c.Stop().Done() }()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errs:
		if ctx.Err() != nil {
			return nil
		}
		return err
	}
}

func writeCharts(dir string, snap *dto.DashboardSnapshot) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create chart directory: %w", err)
	}
	charts := []struct {
		file string
		svg  string
	}{
		{"lead_time_trend.svg", output.NewTrendChart("Average Lead Time", "weeks").GenerateSVG(snap.MarketPulse.LeadTimeTrend)},
		{"pricing_trend.svg", output.NewTrendChart("Price Index", "").GenerateSVG(snap.MarketPulse.PricingTrend)},
	}
	for _, c := range charts {
		if err := os.WriteFile(filepath.Join(dir, c.file), []byte(c.svg), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", c.file, err)
		}
	}
	return nil
}
