package game

import "fmt"

type eventBand struct {
	label string
	upper float64
	apply func(g *Game) string
}

// eventBands is evaluated top to bottom against a single uniform roll. The
// order fixes both the outcome odds and the draw sequence for a seed.
var eventBands = []eventBand{
	{label: "Spoilage", upper: 0.2, apply: spoilageEvent},
	{label: "Wagon accident", upper: 0.4, apply: accidentEvent},
	{label: "Illness", upper: 0.6, apply: illnessEvent},
	{label: "Bandit raid", upper: 0.75, apply: raidEvent},
	{label: "Foraging", upper: 0.9, apply: forageEvent},
	{label: "Lost trail", upper: 1.0, apply: lostTrailEvent},
}

// EventOdds is the chance of a random event kind given that an event fires.
type EventOdds struct {
	Label       string
	Probability float64
}

func RandomEventOdds() []EventOdds {
	out := make([]EventOdds, 0, len(eventBands))
	lower := 0.0
	for _, band := range eventBands {
		out = append(out, EventOdds{Label: band.label, Probability: band.upper - lower})
		lower = band.upper
	}
	return out
}

func (g *Game) consumeFood(amount int) {
	g.state.Food = max(0, g.state.Food-max(0, amount))
}

func (g *Game) applyRandomEvent() {
	if !rollChance(g.rng, g.settings.EventChance) {
		return
	}
	roll := g.rng.Float64()
	for _, band := range eventBands {
		if roll < band.upper {
			g.logEvent(band.apply(g))
			break
		}
	}
	clampState(&g.state)
}

func spoilageEvent(g *Game) string {
	loss := rollInt(g.rng, 10, 30)
	g.state.Food = max(0, g.state.Food-loss)
	return fmt.Sprintf("Spoiled supplies force you to discard %d lbs of food.", loss)
}

func accidentEvent(g *Game) string {
	injury := rollInt(g.rng, 8, 15)
	g.state.Health = max(0, g.state.Health-injury)
	return fmt.Sprintf("A wagon accident injures you for %d health.", injury)
}

func illnessEvent(g *Game) string {
	disease := rollInt(g.rng, 12, 20)
	g.state.Health = max(0, g.state.Health-disease)
	return fmt.Sprintf("You fall ill and lose %d health fighting the sickness.", disease)
}

func raidEvent(g *Game) string {
	stolen := min(g.state.Ammo, rollInt(g.rng, 4, 10))
	g.state.Ammo -= stolen
	return fmt.Sprintf("Bandits raid your camp and steal %d ammo.", stolen)
}

func forageEvent(g *Game) string {
	found := rollInt(g.rng, 20, 45)
	g.state.Food += found
	return fmt.Sprintf("You find wild game and add %d lbs of food to your stores.", found)
}

func lostTrailEvent(g *Game) string {
	g.state.Distance = max(0, g.state.Distance-LostTrailMiles)
	return fmt.Sprintf("You lose the trail and backtrack %d miles.", LostTrailMiles)
}

func (g *Game) logEvent(message string) {
	g.state.EventLog = append(g.state.EventLog, message)
}

// endOfDay applies starvation and then settles the outcome: death first,
// arrival second, the day limit last. A finished journey has no trading post.
func (g *Game) endOfDay() {
	if g.state.Food <= 0 {
		g.state.Health = max(0, g.state.Health-g.settings.StarvationPenalty)
		g.logEvent("Without food your health deteriorates quickly.")
	}

	switch {
	case g.state.Health <= 0:
		g.state.Alive = false
		g.state.Status = StatusPerished
		g.over = true
	case g.state.Distance >= TargetMiles:
		g.state.Won = true
		g.state.Status = StatusArrived
		g.over = true
	case g.state.Day >= g.settings.MaxDays:
		g.state.Alive = false
		g.state.Status = StatusOutOfTime
		g.over = true
	default:
		g.state.Status = StatusOnTrail
	}
	if g.over {
		g.closeTradePost()
	}
}

type RunOutcomeStatus string

const (
	RunOutcomeOngoing  RunOutcomeStatus = "ongoing"
	RunOutcomeWon      RunOutcomeStatus = "won"
	RunOutcomePerished RunOutcomeStatus = "perished"
	RunOutcomeExpired  RunOutcomeStatus = "out_of_time"
)

// Outcome classifies the current state; exactly one status applies.
func (g *Game) Outcome() RunOutcomeStatus {
	switch {
	case !g.over:
		return RunOutcomeOngoing
	case g.state.Won:
		return RunOutcomeWon
	case g.state.Status == StatusOutOfTime:
		return RunOutcomeExpired
	default:
		return RunOutcomePerished
	}
}
