package game

import (
	"fmt"
	"strings"
)

type Action string

const (
	ActionTravel Action = "travel"
	ActionHunt   Action = "hunt"
	ActionRest   Action = "rest"
	ActionTrade  Action = "trade"
)

// ActionParams carries the optional arguments of an action. A zero Pace keeps
// the last pace, a nil AmmoSpent hunts with DefaultHuntAmmo and a nil
// OfferIndex declines the trading post.
type ActionParams struct {
	Pace       Pace
	AmmoSpent  *int
	OfferIndex *int
}

type ActionSpec struct {
	Type       Action
	Stationary bool
	Handler    ActionHandler
}

type ActionHandler interface {
	Precheck(g *Game, params ActionParams) error
	Execute(g *Game, params ActionParams) ActionOutcome
}

type ActionOutcome struct {
	Message   string
	ExtraFood int
}

func actionRegistry() map[Action]ActionSpec {
	return map[Action]ActionSpec{
		ActionTravel: {Type: ActionTravel, Handler: travelActionHandler{}},
		ActionHunt:   {Type: ActionHunt, Handler: huntActionHandler{}},
		ActionRest:   {Type: ActionRest, Handler: restActionHandler{}},
		ActionTrade:  {Type: ActionTrade, Stationary: true, Handler: tradeActionHandler{}},
	}
}

// SupportedActions lists every action in menu order.
func SupportedActions() []Action {
	return []Action{ActionTravel, ActionHunt, ActionRest, ActionTrade}
}

func ParseAction(raw string) (Action, error) {
	action := Action(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := actionRegistry()[action]; !ok {
		return "", fmt.Errorf("%w: unknown action %q", ErrInvalidArgument, raw)
	}
	return action, nil
}

func resolveAction(action Action) (ActionSpec, error) {
	parsed, err := ParseAction(string(action))
	if err != nil {
		return ActionSpec{}, err
	}
	return actionRegistry()[parsed], nil
}

func IntParam(v int) *int {
	return &v
}

type travelActionHandler struct{}

func (travelActionHandler) Precheck(g *Game, params ActionParams) error {
	_, err := g.resolvePace(params.Pace)
	return err
}

func (travelActionHandler) Execute(g *Game, params ActionParams) ActionOutcome {
	pace, _ := g.resolvePace(params.Pace)
	miles, extraFood := g.travel(pace)
	return ActionOutcome{
		Message: fmt.Sprintf(
			"You travel %d miles at a %s pace through %s weather and %s terrain.",
			miles, pace, strings.ToLower(g.state.Weather), strings.ToLower(g.state.Terrain),
		),
		ExtraFood: extraFood,
	}
}

type huntActionHandler struct{}

func (huntActionHandler) Precheck(g *Game, params ActionParams) error {
	ammo := huntAmmo(params)
	if ammo <= 0 {
		return fmt.Errorf("%w: ammo spent must be positive when hunting", ErrInvalidArgument)
	}
	if ammo > g.state.Ammo {
		return fmt.Errorf("%w: not enough ammunition to hunt (have %d, need %d)", ErrInvalidArgument, g.state.Ammo, ammo)
	}
	return nil
}

func (huntActionHandler) Execute(g *Game, params ActionParams) ActionOutcome {
	ammo := huntAmmo(params)
	gained := g.hunt(ammo)
	return ActionOutcome{
		Message: fmt.Sprintf("You spend %d ammo hunting and bring back %d lbs of food.", ammo, gained),
	}
}

func huntAmmo(params ActionParams) int {
	if params.AmmoSpent == nil {
		return DefaultHuntAmmo
	}
	return *params.AmmoSpent
}

type restActionHandler struct{}

func (restActionHandler) Precheck(*Game, ActionParams) error { return nil }

func (restActionHandler) Execute(g *Game, _ ActionParams) ActionOutcome {
	gained := g.rest()
	if gained <= 0 {
		return ActionOutcome{Message: "You rest for the day but feel no better."}
	}
	return ActionOutcome{Message: fmt.Sprintf("You rest for the day and recover %d health.", gained)}
}

type tradeActionHandler struct{}

func (tradeActionHandler) Precheck(g *Game, params ActionParams) error {
	if !g.state.TradeAvailable || len(g.offers) == 0 || params.OfferIndex == nil {
		return nil
	}
	idx := *params.OfferIndex
	if idx < 0 || idx >= len(g.offers) {
		return fmt.Errorf("%w: invalid trade offer selection %d", ErrInvalidArgument, idx)
	}
	offer := g.offers[idx]
	if offer.IsPurchase() {
		if g.state.Money < offer.Price {
			return fmt.Errorf("%w: not enough money for that trade", ErrInvalidArgument)
		}
		return nil
	}
	stock, ok := g.state.resource(offer.Item)
	if !ok {
		return fmt.Errorf("%w: unsupported trade item %q", ErrInvalidArgument, offer.Item)
	}
	if stock < offer.Quantity {
		return fmt.Errorf("%w: you do not have enough %s for that trade", ErrInvalidArgument, offer.Item)
	}
	return nil
}

func (tradeActionHandler) Execute(g *Game, params ActionParams) ActionOutcome {
	if !g.state.TradeAvailable || len(g.offers) == 0 {
		return ActionOutcome{Message: "There is no trading post available today."}
	}
	if params.OfferIndex == nil {
		g.closeTradePost()
		return ActionOutcome{Message: "You browse the trading post but decide not to trade."}
	}
	return ActionOutcome{Message: g.trade(*params.OfferIndex)}
}
