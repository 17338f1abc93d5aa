package salvo

import (
	"fmt"

	"github.com/mcoot/battleship-go/internal/model"
)

// Context is the read-only view a rule receives at the start of a turn
type Context struct {
	Side       model.Side // The side about to fire
	ShipsAlive int        // The side's own ships still afloat
	ShipsSunk  int        // Opponent ships the side has sunk this game
}

// Rule computes how many shots a side may fire this turn.
// The set of rules is closed: only this package can implement it.
type Rule interface {
	Variant() model.RuleVariant
	// ShotsForTurn is called exactly once at the start of each turn
	ShotsForTurn(ctx Context) int

	sealed()
}

// New creates a fresh rule for one game
func New(variant model.RuleVariant) (Rule, error) {
	switch variant {
	case model.RuleDefault:
		return NewDefault(), nil
	case model.RuleFury:
		return NewFury(), nil
	case model.RuleCharge:
		return NewCharge(), nil
	default:
		return nil, fmt.Errorf("%q: %w", variant, model.ErrUnknownRule)
	}
}

// DefaultRule grants one shot every turn
type DefaultRule struct{}

func NewDefault() *DefaultRule { return &DefaultRule{} }

func (r *DefaultRule) Variant() model.RuleVariant { return model.RuleDefault }

func (r *DefaultRule) ShotsForTurn(Context) int { return 1 }

func (r *DefaultRule) sealed() {}

// FuryRule grants one shot per own ship still afloat, so the salvo shrinks
// as the side takes losses
type FuryRule struct{}

func NewFury() *FuryRule { return &FuryRule{} }

func (r *FuryRule) Variant() model.RuleVariant { return model.RuleFury }

func (r *FuryRule) ShotsForTurn(ctx Context) int { return ctx.ShipsAlive }

func (r *FuryRule) sealed() {}

// ChargeRule keeps a per-side counter that starts at 1 and grows by one for
// each opponent ship the side sinks. A sink mid-salvo only pays out on the
// side's next turn. The counter never decreases.
type ChargeRule struct {
	counters map[model.Side]int
}

func NewCharge() *ChargeRule {
	return &ChargeRule{counters: make(map[model.Side]int)}
}

func (r *ChargeRule) Variant() model.RuleVariant { return model.RuleCharge }

func (r *ChargeRule) ShotsForTurn(ctx Context) int {
	current := max(r.counters[ctx.Side], 1+ctx.ShipsSunk)
	r.counters[ctx.Side] = current
	return current
}

func (r *ChargeRule) sealed() {}

var (
	_ Rule = (*DefaultRule)(nil)
	_ Rule = (*FuryRule)(nil)
	_ Rule = (*ChargeRule)(nil)
)
