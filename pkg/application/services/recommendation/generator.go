package recommendation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/vsinha/procure/pkg/domain/entities"
	"github.com/vsinha/procure/pkg/domain/repositories"
	"github.com/vsinha/procure/pkg/domain/services"
)

// Decision thresholds
const (
	BuyNowRiskThreshold     = 70.0
	BuyNowCoverageThreshold = 8.0
	WaitCoverageThreshold   = 16.0
	WaitRiskThreshold       = 40.0
	DefaultConfidence       = 75
)

const (
	explanationScenario = "Analysis based on current market conditions and modified scenario parameters."
	explanationBaseline = "Analysis based on current market conditions and default assumptions."
)

var baselineTradeoffs = []string{
	"Working capital impact",
	"Storage and handling costs",
	"Demand forecast uncertainty",
}

// RandomSource supplies uniform integers in [0, n)
type RandomSource interface {
	IntN(n int) (int, error)
}

// Policy decides what happens when a requested part is not in the catalog
type Policy int

const (
	// PolicyStrict fails with a NotFound error
	PolicyStrict Policy = iota
	// PolicyLenient evaluates the first catalog part in place of the unknown one
	PolicyLenient
)

// String method for Policy enum
func (p Policy) String() string {
	switch p {
	case PolicyStrict:
		return "strict"
	case PolicyLenient:
		return "lenient"
	default:
		return "unknown"
	}
}

// ParsePolicy parses "strict" or "lenient"
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return PolicyStrict, nil
	case "lenient":
		return PolicyLenient, nil
	default:
		return PolicyStrict, entities.InvalidInputf("unknown policy %q", s)
	}
}

// Config wires the generator's dependencies. Catalog and Random are required.
type Config struct {
	Catalog repositories.Catalog
	Random  RandomSource
	Clock   func() time.Time
	NewID   func() (string, error)
	Policy  Policy
	Logger  *zerolog.Logger
}

// Generator produces procurement recommendations. It holds no per-call state
// and is safe for concurrent use when its RandomSource is.
type Generator struct {
	catalog repositories.Catalog
	random  RandomSource
	clock   func() time.Time
	newID   func() (string, error)
	policy  Policy
	log     zerolog.Logger
}

// NewGenerator creates a generator from config
func NewGenerator(cfg Config) (*Generator, error) {
	if cfg.Catalog == nil {
		return nil, fmt.Errorf("catalog is required")
	}
	if cfg.Random == nil {
		return nil, fmt.Errorf("random source is required")
	}
	g := &Generator{
		catalog: cfg.Catalog,
		random:  cfg.Random,
		clock:   cfg.Clock,
		newID:   cfg.NewID,
		policy:  cfg.Policy,
		log:     zerolog.Nop(),
	}
	if cfg.Logger != nil {
		g.log = *cfg.Logger
	}
	if g.clock == nil {
		g.clock = time.Now
	}
	if g.newID == nil {
		g.newID = newRecommendationID
	}
	return g, nil
}

func newRecommendationID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return "rec-" + id.String(), nil
}

// Generate evaluates a part under an optional scenario and returns a new recommendation
func (g *Generator) Generate(ctx context.Context, partID entities.PartID, scenario *entities.ScenarioDelta) (*entities.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if scenario != nil {
		if err := scenario.Validate(); err != nil {
			return nil, err
		}
	}

	part, err := g.resolvePart(partID)
	if err != nil {
		return nil, err
	}

	inventory, _ := g.catalog.GetInventory(partID)
	eval := services.Evaluate(part, inventory, scenario)

	action, confidence, err := g.decide(part, eval)
	if err != nil {
		return nil, err
	}
	impact, err := g.financialImpact(action)
	if err != nil {
		return nil, err
	}
	id, err := g.newID()
	if err != nil {
		return nil, entities.Unavailable("failed to generate recommendation id", err)
	}

	explanation := explanationBaseline
	if scenario != nil {
		explanation = explanationScenario
	}

	g.log.Debug().
		Str("part", string(partID)).
		Float64("effective_risk", eval.EffectiveRisk).
		Float64("effective_coverage", eval.EffectiveCoverage).
		Str("action", action.String()).
		Msg("recommendation generated")

	return &entities.Recommendation{
		ID:              id,
		PartID:          partID,
		Action:          action,
		Confidence:      confidence,
		Explanation:     explanation,
		Drivers:         Drivers(part),
		Tradeoffs:       append([]string(nil), baselineTradeoffs...),
		FinancialImpact: impact,
		Timestamp:       g.clock(),
	}, nil
}

func (g *Generator) resolvePart(partID entities.PartID) (*entities.Part, error) {
	part, err := g.catalog.GetPart(partID)
	if err == nil {
		return part, nil
	}
	if g.policy != PolicyLenient || entities.KindOf(err) != entities.KindNotFound {
		return nil, err
	}

	parts, listErr := g.catalog.GetAllParts()
	if listErr != nil {
		return nil, fmt.Errorf("failed to list catalog: %w", listErr)
	}
	if len(parts) == 0 {
		return nil, entities.NotFoundf("part not found: %s (catalog is empty)", partID)
	}
	g.log.Warn().
		Str("requested", string(partID)).
		Str("substitute", string(parts[0].ID)).
		Msg("unknown part, substituting first catalog entry")
	return parts[0], nil
}

// decide applies the decision rules in order; the first match wins
func (g *Generator) decide(part *entities.Part, eval services.Evaluation) (entities.Action, int, error) {
	switch {
	case eval.EffectiveRisk > BuyNowRiskThreshold && eval.EffectiveCoverage < BuyNowCoverageThreshold:
		c, err := g.between(85, 10)
		return entities.BuyNow, c, err
	case part.Lifecycle.IsEndOfLife():
		c, err := g.between(90, 8)
		return entities.Resource, c, err
	case eval.EffectiveCoverage > WaitCoverageThreshold && eval.EffectiveRisk < WaitRiskThreshold:
		c, err := g.between(70, 15)
		return entities.Wait, c, err
	default:
		return entities.Wait, DefaultConfidence, nil
	}
}

func (g *Generator) financialImpact(action entities.Action) (entities.FinancialImpact, error) {
	savings, err := g.between(50000, 300000)
	if err != nil {
		return entities.FinancialImpact{}, err
	}

	var delta int
	if action == entities.BuyNow {
		d, err := g.between(20, 15)
		if err != nil {
			return entities.FinancialImpact{}, err
		}
		delta = -d
	} else {
		delta, err = g.between(0, 10)
		if err != nil {
			return entities.FinancialImpact{}, err
		}
	}

	return entities.FinancialImpact{
		Savings:   decimal.NewFromInt(int64(savings)),
		RiskDelta: delta,
	}, nil
}

// between draws uniformly from [base, base+span)
func (g *Generator) between(base, span int) (int, error) {
	n, err := g.random.IntN(span)
	if err != nil {
		return 0, entities.Unavailable("randomness source failed", err)
	}
	return base + n, nil
}

// Drivers returns the four fixed-order decision drivers for a part
func Drivers(part *entities.Part) []string {
	return []string{
		fmt.Sprintf("%s lifecycle status", part.Lifecycle),
		fmt.Sprintf("%d week lead time (%s)", part.LeadTimeWeeks, part.LeadTimeTrend),
		fmt.Sprintf("Price trend: %s", part.PriceTrend),
		fmt.Sprintf("Global inventory: %s units", humanize.Comma(part.InventoryGlobal)),
	}
}
