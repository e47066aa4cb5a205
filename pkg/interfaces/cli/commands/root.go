package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vsinha/procure/pkg/application/services/orchestration"
	"github.com/vsinha/procure/pkg/application/services/portfolio"
	"github.com/vsinha/procure/pkg/application/services/recommendation"
	"github.com/vsinha/procure/pkg/infrastructure/config"
	"github.com/vsinha/procure/pkg/infrastructure/fixtures"
	"github.com/vsinha/procure/pkg/infrastructure/logging"
	"github.com/vsinha/procure/pkg/infrastructure/random"
	csvrepo "github.com/vsinha/procure/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/procure/pkg/infrastructure/repositories/memory"
	yamlrepo "github.com/vsinha/procure/pkg/infrastructure/repositories/yaml"
)

// Options injects the process environment; zero fields use stdout, stderr and config.Load
type Options struct {
	Stdout     io.Writer
	Stderr     io.Writer
	LoadConfig func() (config.Config, error)
}

// app is the state shared by subcommands for one invocation
type app struct {
	opts    Options
	cfg     config.Config
	log     zerolog.Logger
	catalog *memory.Catalog

	catalogFlag  string
	outputFlag   string
	logLevelFlag string
}

// NewRootCommand builds the procure command tree
func NewRootCommand(opts Options) *cobra.Command {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.LoadConfig == nil {
		opts.LoadConfig = config.Load
	}
	a := &app{opts: opts}

	root := &cobra.Command{
		Use:           "procure",
		Short:         "procure - component procurement decision engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(opts.Stdout)
	root.SetErr(opts.Stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.catalogFlag, "catalog", "", "catalog CSV directory or YAML file (default: reference dataset)")
	flags.StringVarP(&a.outputFlag, "output", "o", "", "output format: text, json, yaml")
	flags.StringVar(&a.logLevelFlag, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		newRecommendCommand(a),
		newDashboardCommand(a),
		newPartsCommand(a),
		newValidateCommand(a),
		newExportCommand(a),
	)
	return root
}

// setup resolves configuration, logging and the catalog. Flags override the environment.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := a.opts.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	flags := cmd.Flags()
	if flags.Changed("catalog") {
		cfg.CatalogPath = a.catalogFlag
	}
	if flags.Changed("output") {
		cfg.Output = strings.ToLower(a.outputFlag)
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevelFlag
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	a.log, err = logging.New(cfg.LogLevel, cfg.LogFormat, a.opts.Stderr)
	if err != nil {
		return err
	}

	a.catalog, err = loadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}
	a.log.Debug().
		Str("catalog", catalogName(cfg.CatalogPath)).
		Int("parts", a.catalog.Len()).
		Msg("catalog loaded")
	return nil
}

func catalogName(path string) string {
	if path == "" {
		return "reference"
	}
	return path
}

// loadCatalog reads a CSV directory or YAML file; an empty path selects the reference dataset
func loadCatalog(path string) (*memory.Catalog, error) {
	if path == "" {
		return fixtures.ReferenceCatalog(), nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	if info.IsDir() {
		return csvrepo.NewLoader().LoadCatalogDir(path)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlrepo.NewLoader().LoadCatalogFile(path)
	default:
		return nil, fmt.Errorf("unsupported catalog %s: expected a CSV directory or a .yaml file", path)
	}
}

// randomSource seeds deterministically when a seed is given, otherwise draws from system entropy
func randomSource(seed uint64) recommendation.RandomSource {
	if seed != 0 {
		return random.NewSeeded(seed)
	}
	return random.NewCrypto()
}

func (a *app) advisor(policy recommendation.Policy, seed uint64) (*orchestration.Advisor, error) {
	gen, err := recommendation.NewGenerator(recommendation.Config{
		Catalog: a.catalog,
		Random:  randomSource(seed),
		Policy:  policy,
		Logger:  &a.log,
	})
	if err != nil {
		return nil, err
	}
	return orchestration.NewAdvisor(gen, portfolio.NewAggregator(a.catalog), a.catalog, a.cfg.WatchlistLimit), nil
}
