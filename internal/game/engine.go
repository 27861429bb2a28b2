package game

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"time"
)

// Game owns the state of one journey. It is not safe for concurrent use;
// callers that share a Game must serialize access.
type Game struct {
	rules    Rules
	settings DifficultySettings
	seed     int64
	rng      *rand.Rand
	state    GameState
	offers   []TradeOffer
	over     bool
}

func New(config Config) (*Game, error) {
	resolved := config

	if err := resolved.Validate(); err != nil {
		return nil, err
	}

	profession, _ := ParseProfession(string(resolved.Profession))
	difficulty := DifficultyNormal
	if resolved.Difficulty != "" {
		difficulty, _ = ParseDifficulty(string(resolved.Difficulty))
	}

	rules := DefaultRules()
	if resolved.Rules != nil {
		rules = resolved.Rules.Clone()
	}
	settings, ok := rules.Settings(difficulty)
	if !ok {
		return nil, fmt.Errorf("%w: no settings for difficulty %q", ErrInvalidArgument, difficulty)
	}

	if resolved.Seed == 0 {
		resolved.Seed = time.Now().UnixNano()
	}

	name := strings.TrimSpace(resolved.PlayerName)
	if name == "" {
		name = DefaultPlayerName
	}

	bonus := BonusFor(profession)
	g := &Game{
		rules:    rules,
		settings: settings,
		seed:     resolved.Seed,
		rng:      seededRNG(resolved.Seed),
		state: GameState{
			PlayerName: name,
			Profession: profession,
			Difficulty: difficulty,
			Day:        1,
			Food:       settings.Food + bonus.Food,
			Ammo:       settings.Ammo + bonus.Ammo,
			Money:      settings.Money + bonus.Money,
			Health:     clamp(MaxHealth+bonus.Health, 0, MaxHealth),
			Pace:       PaceSteady,
			Alive:      true,
			Status:     StatusOnTrail,
			EventLog:   []string{},
		},
	}

	g.rollEnvironment()
	g.maybePrepareTradePost(rules.InitialTradeChance)

	return g, nil
}

func (g *Game) Seed() int64 {
	return g.seed
}

func (g *Game) Settings() DifficultySettings {
	return g.settings
}

func (g *Game) IsOver() bool {
	return g.over
}

func (g *Game) State() GameState {
	return g.state.Snapshot()
}

// AvailableActions is empty once the journey is over.
func (g *Game) AvailableActions() []Action {
	if g.over {
		return []Action{}
	}
	actions := []Action{ActionTravel, ActionHunt, ActionRest}
	if g.state.TradeAvailable {
		actions = append(actions, ActionTrade)
	}
	return actions
}

func (g *Game) TradeOffers() []TradeOffer {
	return slices.Clone(g.offers)
}

// PerformAction advances the journey by exactly one day. Validation runs
// before anything is mutated or drawn from the random stream, so a rejected
// action leaves the game exactly as it was.
func (g *Game) PerformAction(action Action, params ActionParams) (DayReport, error) {
	if g.over {
		return DayReport{}, fmt.Errorf("%w: the game has ended, start a new game to continue playing", ErrInvalidState)
	}

	spec, err := resolveAction(action)
	if err != nil {
		return DayReport{}, err
	}
	if err := spec.Handler.Precheck(g, params); err != nil {
		return DayReport{}, err
	}

	g.state.EventLog = []string{}
	g.rollEnvironment()

	outcome := spec.Handler.Execute(g, params)
	ration := BaseFoodPerDay + outcome.ExtraFood
	if spec.Stationary {
		ration = max(1, StationaryRation)
	}
	g.consumeFood(ration)
	g.applyRandomEvent()
	g.endOfDay()

	if !g.over {
		g.state.Day++
		g.maybePrepareTradePost(g.rules.DailyTradeChance)
	}

	messages := make([]string, 0, 1+len(g.state.EventLog))
	messages = append(messages, outcome.Message)
	messages = append(messages, g.state.EventLog...)

	return DayReport{
		GameState:   g.State(),
		Messages:    messages,
		TradeOffers: g.describeOffers(),
	}, nil
}

func (g *Game) describeOffers() []string {
	out := make([]string, 0, len(g.offers))
	for _, offer := range g.offers {
		out = append(out, offer.Describe())
	}
	return out
}
