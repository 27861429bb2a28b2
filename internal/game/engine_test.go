package game

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"
)

// quietRules removes every source of randomness that is not part of the
// action under test: no events and no trading posts.
func quietRules() *Rules {
	r := DefaultRules()
	for d, s := range r.Difficulties {
		s.EventChance = 0
		r.Difficulties[d] = s
	}
	r.InitialTradeChance = 0
	r.DailyTradeChance = 0
	return &r
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := New(Config{
		PlayerName: "Tester",
		Profession: ProfessionBanker,
		Difficulty: DifficultyNormal,
		Seed:       1,
		Rules:      quietRules(),
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	return g
}

func TestNewBankerNormalResources(t *testing.T) {
	g := newTestGame(t)
	s := g.State()
	if s.Food != 240 || s.Ammo != 55 || s.Money != 1700 || s.Health != 100 {
		t.Fatalf("unexpected starting supplies: food=%d ammo=%d money=%d health=%d", s.Food, s.Ammo, s.Money, s.Health)
	}
	if s.Day != 1 || s.Distance != 0 {
		t.Fatalf("expected day 1 at mile 0, got day=%d distance=%d", s.Day, s.Distance)
	}
	if !s.Alive || s.Won || s.Status != StatusOnTrail {
		t.Fatalf("unexpected outcome fields: %+v", s)
	}
}

func TestNewResourcesArePresetPlusBonus(t *testing.T) {
	rules := DefaultRules()
	for _, d := range Difficulties() {
		for _, p := range AvailableProfessions() {
			g, err := New(Config{Profession: p, Difficulty: d, Seed: 3})
			if err != nil {
				t.Fatalf("New(%s,%s) error: %v", p, d, err)
			}
			preset := rules.Difficulties[d]
			bonus := BonusFor(p)
			s := g.State()
			if s.Food != preset.Food+bonus.Food {
				t.Fatalf("%s/%s food=%d want %d", d, p, s.Food, preset.Food+bonus.Food)
			}
			if s.Ammo != preset.Ammo+bonus.Ammo {
				t.Fatalf("%s/%s ammo=%d want %d", d, p, s.Ammo, preset.Ammo+bonus.Ammo)
			}
			if s.Money != preset.Money+bonus.Money {
				t.Fatalf("%s/%s money=%d want %d", d, p, s.Money, preset.Money+bonus.Money)
			}
			if want := min(MaxHealth, MaxHealth+bonus.Health); s.Health != want {
				t.Fatalf("%s/%s health=%d want %d", d, p, s.Health, want)
			}
		}
	}
}

func TestNewRejectsUnknownNames(t *testing.T) {
	tests := []Config{
		{Profession: "wizard", Difficulty: DifficultyNormal},
		{Profession: ProfessionFarmer, Difficulty: "nightmare"},
	}
	for _, cfg := range tests {
		_, err := New(cfg)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("New(%+v) expected ErrInvalidArgument, got %v", cfg, err)
		}
	}
}

func TestNewNormalisesInput(t *testing.T) {
	g, err := New(Config{PlayerName: "   ", Profession: " Doctor ", Difficulty: "HARD", Seed: 5})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	s := g.State()
	if s.PlayerName != DefaultPlayerName {
		t.Fatalf("expected placeholder name, got %q", s.PlayerName)
	}
	if s.Profession != ProfessionDoctor || s.Difficulty != DifficultyHard {
		t.Fatalf("unexpected identity: %s/%s", s.Profession, s.Difficulty)
	}
}

func TestNewDefaultsDifficultyToNormal(t *testing.T) {
	g, err := New(Config{Profession: ProfessionFarmer, Seed: 5})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if got := g.State().Difficulty; got != DifficultyNormal {
		t.Fatalf("expected normal difficulty, got %s", got)
	}
}

func TestNewWithoutSeedPicksOne(t *testing.T) {
	g, err := New(Config{Profession: ProfessionBanker})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if g.Seed() == 0 {
		t.Fatalf("expected a generated seed")
	}
}

func TestTravelMovesForwardAndEatsRation(t *testing.T) {
	g := newTestGame(t)
	before := g.State()

	report, err := g.PerformAction(ActionTravel, ActionParams{Pace: PaceSteady})
	if err != nil {
		t.Fatalf("travel error: %v", err)
	}

	gained := report.Distance - before.Distance
	if gained < MinTravelMiles {
		t.Fatalf("expected at least %d miles, got %d", MinTravelMiles, gained)
	}
	exact := 18 * conditionModifier(weatherTable, report.Weather) * conditionModifier(terrainTable, report.Terrain)
	if want := max(MinTravelMiles, int(math.RoundToEven(exact))); gained != want {
		t.Fatalf("distance gained=%d want %d (%s/%s)", gained, want, report.Weather, report.Terrain)
	}
	if report.Food != before.Food-BaseFoodPerDay {
		t.Fatalf("steady pace should eat the base ration: food %d -> %d", before.Food, report.Food)
	}
	if report.Day != before.Day+1 {
		t.Fatalf("expected day to advance by one, got %d -> %d", before.Day, report.Day)
	}
	if len(report.Messages) == 0 || !strings.Contains(report.Messages[0], "steady pace") {
		t.Fatalf("unexpected messages: %+v", report.Messages)
	}
}

func TestTravelGruelingEatsExtraFood(t *testing.T) {
	g := newTestGame(t)
	before := g.State()

	report, err := g.PerformAction(ActionTravel, ActionParams{Pace: PaceGrueling})
	if err != nil {
		t.Fatalf("travel error: %v", err)
	}
	// ceil(5 * 0.35) = 2
	if report.Food != before.Food-BaseFoodPerDay-2 {
		t.Fatalf("grueling food=%d want %d", report.Food, before.Food-BaseFoodPerDay-2)
	}
	if report.Pace != PaceGrueling {
		t.Fatalf("expected pace to be remembered, got %s", report.Pace)
	}

	next, err := g.PerformAction(ActionTravel, ActionParams{})
	if err != nil {
		t.Fatalf("travel error: %v", err)
	}
	if next.Pace != PaceGrueling {
		t.Fatalf("omitted pace should reuse grueling, got %s", next.Pace)
	}
}

func TestTravelSlowEatsOnlyBaseRation(t *testing.T) {
	g := newTestGame(t)
	before := g.State()
	report, err := g.PerformAction(ActionTravel, ActionParams{Pace: PaceSlow})
	if err != nil {
		t.Fatalf("travel error: %v", err)
	}
	if report.Food != before.Food-BaseFoodPerDay {
		t.Fatalf("slow pace food=%d want %d", report.Food, before.Food-BaseFoodPerDay)
	}
}

func TestTravelInvalidPaceLeavesStateUntouched(t *testing.T) {
	g := newTestGame(t)
	before := g.State()

	_, err := g.PerformAction(ActionTravel, ActionParams{Pace: "sprint"})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if after := g.State(); !reflect.DeepEqual(before, after) {
		t.Fatalf("state changed after rejected travel:\nbefore=%+v\nafter=%+v", before, after)
	}
}

func TestHuntSpendsAmmoAndAddsFood(t *testing.T) {
	g := newTestGame(t)
	before := g.State()

	report, err := g.PerformAction(ActionHunt, ActionParams{AmmoSpent: IntParam(5)})
	if err != nil {
		t.Fatalf("hunt error: %v", err)
	}
	if report.Ammo != before.Ammo-5 {
		t.Fatalf("ammo=%d want %d", report.Ammo, before.Ammo-5)
	}
	gained := report.Food - before.Food + BaseFoodPerDay
	if gained < 25+10 || gained > 55+10 {
		t.Fatalf("food gained %d outside [35,65]", gained)
	}
}

func TestHuntDefaultsToFiveAmmo(t *testing.T) {
	g := newTestGame(t)
	before := g.State()
	report, err := g.PerformAction(ActionHunt, ActionParams{})
	if err != nil {
		t.Fatalf("hunt error: %v", err)
	}
	if report.Ammo != before.Ammo-DefaultHuntAmmo {
		t.Fatalf("ammo=%d want %d", report.Ammo, before.Ammo-DefaultHuntAmmo)
	}
}

func TestHuntRejectsBadAmmo(t *testing.T) {
	tests := []struct {
		name string
		ammo int
	}{
		{name: "zero", ammo: 0},
		{name: "negative", ammo: -3},
		{name: "more than carried", ammo: 56},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t)
			before := g.State()
			_, err := g.PerformAction(ActionHunt, ActionParams{AmmoSpent: IntParam(tc.ammo)})
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("expected ErrInvalidArgument, got %v", err)
			}
			if after := g.State(); !reflect.DeepEqual(before, after) {
				t.Fatalf("state changed after rejected hunt:\nbefore=%+v\nafter=%+v", before, after)
			}
		})
	}
}

func TestRestRecoversHealth(t *testing.T) {
	g := newTestGame(t)
	g.state.Health = 50

	report, err := g.PerformAction(ActionRest, ActionParams{})
	if err != nil {
		t.Fatalf("rest error: %v", err)
	}
	if report.Health != 50+g.Settings().RestHealth {
		t.Fatalf("health=%d want %d", report.Health, 50+g.Settings().RestHealth)
	}
}

func TestRestCapsAtMaxHealth(t *testing.T) {
	g := newTestGame(t)
	g.state.Health = 95

	report, err := g.PerformAction(ActionRest, ActionParams{})
	if err != nil {
		t.Fatalf("rest error: %v", err)
	}
	if report.Health != MaxHealth {
		t.Fatalf("health=%d want %d", report.Health, MaxHealth)
	}

	report, err = g.PerformAction(ActionRest, ActionParams{})
	if err != nil {
		t.Fatalf("rest error: %v", err)
	}
	if report.Messages[0] != "You rest for the day but feel no better." {
		t.Fatalf("unexpected rest message: %q", report.Messages[0])
	}
}

func TestTradePurchase(t *testing.T) {
	g := newTestGame(t)
	g.state.TradeAvailable = true
	g.offers = []TradeOffer{{Item: ItemFood, Quantity: 20, Price: 40}}
	before := g.State()

	report, err := g.PerformAction(ActionTrade, ActionParams{OfferIndex: IntParam(0)})
	if err != nil {
		t.Fatalf("trade error: %v", err)
	}
	if report.Money != before.Money-40 {
		t.Fatalf("money=%d want %d", report.Money, before.Money-40)
	}
	if report.Food != before.Food+20-StationaryRation {
		t.Fatalf("food=%d want %d", report.Food, before.Food+20-StationaryRation)
	}
	if len(g.TradeOffers()) != 0 {
		t.Fatalf("expected accepted offer to be gone, got %+v", g.TradeOffers())
	}
}

func TestTradeRemovesOnlyChosenOffer(t *testing.T) {
	g := newTestGame(t)
	g.state.TradeAvailable = true
	g.offers = []TradeOffer{
		{Item: ItemFood, Quantity: 20, Price: 40},
		{Item: ItemAmmo, Quantity: 10, Price: 18},
	}

	msg := g.trade(0)
	if msg != "You buy 20 food for $40." {
		t.Fatalf("unexpected trade message %q", msg)
	}
	offers := g.TradeOffers()
	if len(offers) != 1 || offers[0].Item != ItemAmmo {
		t.Fatalf("expected only the ammo offer to remain, got %+v", offers)
	}
	if g.state.TradeAvailable {
		t.Fatalf("expected trading to close after a deal")
	}
	if got := g.AvailableActions(); len(got) != 3 {
		t.Fatalf("trade should not be offered after a deal, got %v", got)
	}
}

func TestTradeSale(t *testing.T) {
	g := newTestGame(t)
	g.state.TradeAvailable = true
	g.offers = []TradeOffer{{Item: ItemAmmo, Quantity: 10, Price: -18}}
	before := g.State()

	report, err := g.PerformAction(ActionTrade, ActionParams{OfferIndex: IntParam(0)})
	if err != nil {
		t.Fatalf("trade error: %v", err)
	}
	if report.Ammo != before.Ammo-10 {
		t.Fatalf("ammo=%d want %d", report.Ammo, before.Ammo-10)
	}
	if report.Money != before.Money+18 {
		t.Fatalf("money=%d want %d", report.Money, before.Money+18)
	}
	if report.Messages[0] != "You sell 10 ammo for $18." {
		t.Fatalf("unexpected message %q", report.Messages[0])
	}
}

func TestTradeRejections(t *testing.T) {
	tests := []struct {
		name   string
		offers []TradeOffer
		index  int
		setup  func(g *Game)
	}{
		{
			name:   "index out of range",
			offers: []TradeOffer{{Item: ItemFood, Quantity: 20, Price: 40}},
			index:  1,
		},
		{
			name:   "negative index",
			offers: []TradeOffer{{Item: ItemFood, Quantity: 20, Price: 40}},
			index:  -1,
		},
		{
			name:   "not enough money",
			offers: []TradeOffer{{Item: ItemFood, Quantity: 20, Price: 40}},
			index:  0,
			setup:  func(g *Game) { g.state.Money = 39 },
		},
		{
			name:   "not enough goods",
			offers: []TradeOffer{{Item: ItemAmmo, Quantity: 10, Price: -18}},
			index:  0,
			setup:  func(g *Game) { g.state.Ammo = 9 },
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t)
			g.state.TradeAvailable = true
			g.offers = tc.offers
			if tc.setup != nil {
				tc.setup(g)
			}
			before := g.State()
			_, err := g.PerformAction(ActionTrade, ActionParams{OfferIndex: IntParam(tc.index)})
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("expected ErrInvalidArgument, got %v", err)
			}
			if after := g.State(); !reflect.DeepEqual(before, after) {
				t.Fatalf("state changed after rejected trade")
			}
			if len(g.TradeOffers()) != len(tc.offers) {
				t.Fatalf("offers changed after rejected trade")
			}
		})
	}
}

func TestTradeDeclineAndNoPost(t *testing.T) {
	g := newTestGame(t)
	g.state.TradeAvailable = true
	g.offers = []TradeOffer{{Item: ItemFood, Quantity: 20, Price: 40}}
	before := g.State()

	report, err := g.PerformAction(ActionTrade, ActionParams{})
	if err != nil {
		t.Fatalf("decline error: %v", err)
	}
	if report.Messages[0] != "You browse the trading post but decide not to trade." {
		t.Fatalf("unexpected decline message %q", report.Messages[0])
	}
	if report.Food != before.Food-StationaryRation {
		t.Fatalf("trading day should eat the reduced ration: %d -> %d", before.Food, report.Food)
	}

	report, err = g.PerformAction(ActionTrade, ActionParams{OfferIndex: IntParam(7)})
	if err != nil {
		t.Fatalf("trade without post should not fail: %v", err)
	}
	if report.Messages[0] != "There is no trading post available today." {
		t.Fatalf("unexpected message %q", report.Messages[0])
	}
}

func TestUnknownActionRejected(t *testing.T) {
	g := newTestGame(t)
	_, err := g.PerformAction("fish", ActionParams{})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if g.State().Day != 1 {
		t.Fatalf("rejected action should not advance the day")
	}
}

func TestActionNamesAreNormalised(t *testing.T) {
	g := newTestGame(t)
	if _, err := g.PerformAction(" REST ", ActionParams{}); err != nil {
		t.Fatalf("expected normalised action name to work, got %v", err)
	}
}

func TestReachingTargetWins(t *testing.T) {
	g := newTestGame(t)
	g.state.Distance = TargetMiles - 1

	report, err := g.PerformAction(ActionTravel, ActionParams{Pace: PaceSlow})
	if err != nil {
		t.Fatalf("travel error: %v", err)
	}
	if !report.Won || !report.Alive {
		t.Fatalf("expected won=true alive=true, got won=%v alive=%v", report.Won, report.Alive)
	}
	if report.Status != StatusArrived {
		t.Fatalf("unexpected status %q", report.Status)
	}
	if report.Day != 1 {
		t.Fatalf("terminal day should not advance, got %d", report.Day)
	}
	if g.Outcome() != RunOutcomeWon {
		t.Fatalf("unexpected outcome %s", g.Outcome())
	}
}

func TestStarvationKills(t *testing.T) {
	g := newTestGame(t)
	g.state.Food = 0
	g.state.Health = 5

	report, err := g.PerformAction(ActionTravel, ActionParams{})
	if err != nil {
		t.Fatalf("travel error: %v", err)
	}
	if report.Alive || report.Won {
		t.Fatalf("expected alive=false won=false, got alive=%v won=%v", report.Alive, report.Won)
	}
	if report.Health != 0 {
		t.Fatalf("health=%d want 0", report.Health)
	}
	if report.Status != StatusPerished {
		t.Fatalf("unexpected status %q", report.Status)
	}
	last := report.Messages[len(report.Messages)-1]
	if last != "Without food your health deteriorates quickly." {
		t.Fatalf("expected starvation message last, got %q", last)
	}
	if g.Outcome() != RunOutcomePerished {
		t.Fatalf("unexpected outcome %s", g.Outcome())
	}
}

func TestStarvationWithoutDeath(t *testing.T) {
	g := newTestGame(t)
	g.state.Food = 3

	report, err := g.PerformAction(ActionRest, ActionParams{})
	if err != nil {
		t.Fatalf("rest error: %v", err)
	}
	if report.Food != 0 {
		t.Fatalf("food should floor at zero, got %d", report.Food)
	}
	if report.Health != MaxHealth-g.Settings().StarvationPenalty {
		t.Fatalf("health=%d want %d", report.Health, MaxHealth-g.Settings().StarvationPenalty)
	}
	if len(report.EventLog) != 1 {
		t.Fatalf("expected starvation in the event log, got %+v", report.EventLog)
	}
}

func TestDeathTakesPriorityOverArrival(t *testing.T) {
	g := newTestGame(t)
	g.state.Distance = TargetMiles + 100
	g.state.Food = 0
	g.state.Health = 1

	report, err := g.PerformAction(ActionRest, ActionParams{})
	if err != nil {
		t.Fatalf("rest error: %v", err)
	}
	// rest heals 12, starvation takes 10
	if !report.Alive || !report.Won {
		t.Fatalf("expected arrival with 3 health, got %+v", report.GameState)
	}

	g = newTestGame(t)
	g.state.Distance = TargetMiles + 100
	g.state.Food = 0
	g.state.Health = 1
	report, err = g.PerformAction(ActionTravel, ActionParams{})
	if err != nil {
		t.Fatalf("travel error: %v", err)
	}
	if report.Alive || report.Won {
		t.Fatalf("death must win over arrival, got alive=%v won=%v", report.Alive, report.Won)
	}
}

func TestDayLimitEndsJourney(t *testing.T) {
	g := newTestGame(t)
	g.state.Day = g.Settings().MaxDays

	report, err := g.PerformAction(ActionRest, ActionParams{})
	if err != nil {
		t.Fatalf("rest error: %v", err)
	}
	if report.Alive || report.Won {
		t.Fatalf("expected alive=false won=false, got alive=%v won=%v", report.Alive, report.Won)
	}
	if report.Status != StatusOutOfTime {
		t.Fatalf("unexpected status %q", report.Status)
	}
	if g.Outcome() != RunOutcomeExpired {
		t.Fatalf("unexpected outcome %s", g.Outcome())
	}
}

func TestTerminalGameRejectsEveryAction(t *testing.T) {
	g := newTestGame(t)
	g.state.Distance = TargetMiles
	if _, err := g.PerformAction(ActionRest, ActionParams{}); err != nil {
		t.Fatalf("rest error: %v", err)
	}
	if !g.IsOver() {
		t.Fatalf("expected the game to be over")
	}
	before := g.State()

	actions := append(SupportedActions(), "fish")
	for _, a := range actions {
		_, err := g.PerformAction(a, ActionParams{Pace: PaceSteady, AmmoSpent: IntParam(1), OfferIndex: IntParam(0)})
		if !errors.Is(err, ErrInvalidState) {
			t.Fatalf("%s on a finished game: expected ErrInvalidState, got %v", a, err)
		}
	}
	if after := g.State(); !reflect.DeepEqual(before, after) {
		t.Fatalf("state changed after the game ended")
	}
}

func TestFinishedGameClosesTradePost(t *testing.T) {
	rules := quietRules()
	rules.InitialTradeChance = 1
	g, err := New(Config{Profession: ProfessionBanker, Difficulty: DifficultyNormal, Seed: 5, Rules: rules})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if !g.State().TradeAvailable || len(g.TradeOffers()) == 0 {
		t.Fatalf("expected a trading post on day 1")
	}
	g.state.Day = g.Settings().MaxDays

	report, err := g.PerformAction(ActionRest, ActionParams{})
	if err != nil {
		t.Fatalf("rest error: %v", err)
	}
	if !g.IsOver() {
		t.Fatalf("expected the day limit to end the game")
	}
	if report.TradeAvailable || g.State().TradeAvailable {
		t.Fatalf("finished game still reports a trading post")
	}
	if len(report.TradeOffers) != 0 || len(g.TradeOffers()) != 0 {
		t.Fatalf("finished game still carries offers: %v", report.TradeOffers)
	}
	if actions := g.AvailableActions(); len(actions) != 0 {
		t.Fatalf("finished game still lists actions %v", actions)
	}
}

func TestAvailableActions(t *testing.T) {
	g := newTestGame(t)
	got := g.AvailableActions()
	want := []Action{ActionTravel, ActionHunt, ActionRest}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("actions=%v want %v", got, want)
	}

	g.state.TradeAvailable = true
	got = g.AvailableActions()
	if len(got) != 4 || got[3] != ActionTrade {
		t.Fatalf("expected trade to be offered last, got %v", got)
	}
}

func TestStateIsACopy(t *testing.T) {
	g := newTestGame(t)
	g.state.Food = 0
	if _, err := g.PerformAction(ActionRest, ActionParams{}); err != nil {
		t.Fatalf("rest error: %v", err)
	}
	s := g.State()
	if len(s.EventLog) == 0 {
		t.Fatalf("expected an event log entry")
	}
	s.EventLog[0] = "tampered"
	s.Food = 999
	if g.State().EventLog[0] == "tampered" || g.State().Food == 999 {
		t.Fatalf("snapshot shares memory with the game")
	}

	g.state.TradeAvailable = true
	g.offers = []TradeOffer{{Item: ItemFood, Quantity: 20, Price: 40}}
	offers := g.TradeOffers()
	offers[0].Price = 1
	if g.TradeOffers()[0].Price != 40 {
		t.Fatalf("TradeOffers shares memory with the game")
	}
}

func TestEventAlwaysFiresWhenChanceIsOne(t *testing.T) {
	rules := quietRules()
	s := rules.Difficulties[DifficultyNormal]
	s.EventChance = 1
	rules.Difficulties[DifficultyNormal] = s

	g, err := New(Config{Profession: ProfessionBanker, Difficulty: DifficultyNormal, Seed: 11, Rules: rules})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	for i := 0; i < 10 && !g.IsOver(); i++ {
		report, err := g.PerformAction(ActionRest, ActionParams{})
		if err != nil {
			t.Fatalf("rest error: %v", err)
		}
		if len(report.EventLog) == 0 {
			t.Fatalf("day %d: expected an event", report.Day)
		}
		if len(report.Messages) != 1+len(report.EventLog) {
			t.Fatalf("messages should be the action message followed by the event log")
		}
	}
}

func TestTradePostAppearsWithCertainChance(t *testing.T) {
	rules := quietRules()
	rules.InitialTradeChance = 1
	rules.DailyTradeChance = 1

	g, err := New(Config{Profession: ProfessionBanker, Seed: 21, Rules: rules})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	for day := 0; day < 20; day++ {
		offers := g.TradeOffers()
		if !g.State().TradeAvailable || len(offers) < 1 || len(offers) > 3 {
			t.Fatalf("expected 1-3 offers, got %+v", offers)
		}
		for _, o := range offers {
			assertOfferInRange(t, o)
		}
		report, err := g.PerformAction(ActionRest, ActionParams{})
		if err != nil {
			t.Fatalf("rest error: %v", err)
		}
		if len(report.TradeOffers) != len(g.TradeOffers()) {
			t.Fatalf("report offers %v do not match game offers %+v", report.TradeOffers, g.TradeOffers())
		}
	}
}

func assertOfferInRange(t *testing.T, o TradeOffer) {
	t.Helper()
	price := o.Price
	if price < 0 {
		price = -price
	}
	switch o.Item {
	case ItemFood:
		if o.Quantity < 25 || o.Quantity > 60 || price < 10 || price > 42 {
			t.Fatalf("food offer out of range: %+v", o)
		}
	case ItemAmmo:
		if o.Quantity < 6 || o.Quantity > 15 || price < 8 || price > 30 {
			t.Fatalf("ammo offer out of range: %+v", o)
		}
	default:
		t.Fatalf("unexpected offer item: %+v", o)
	}
}

func TestTradeOfferDescribe(t *testing.T) {
	if got := (TradeOffer{Item: ItemFood, Quantity: 30, Price: 15}).Describe(); got != "Buy 30 food for $15" {
		t.Fatalf("unexpected buy description %q", got)
	}
	if got := (TradeOffer{Item: ItemAmmo, Quantity: 8, Price: -14}).Describe(); got != "Sell 8 ammo for $14" {
		t.Fatalf("unexpected sell description %q", got)
	}
}

func playScript(t *testing.T, seed int64) [][]byte {
	t.Helper()
	g, err := New(Config{PlayerName: "Ada", Profession: ProfessionCarpenter, Difficulty: DifficultyHard, Seed: seed})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	script := []struct {
		action Action
		params ActionParams
	}{
		{ActionTravel, ActionParams{Pace: PaceGrueling}},
		{ActionHunt, ActionParams{AmmoSpent: IntParam(4)}},
		{ActionRest, ActionParams{}},
		{ActionTrade, ActionParams{}},
		{ActionTravel, ActionParams{Pace: PaceSlow}},
		{ActionTravel, ActionParams{}},
	}
	var out [][]byte
	for i := 0; i < 40 && !g.IsOver(); i++ {
		step := script[i%len(script)]
		report, err := g.PerformAction(step.action, step.params)
		if err != nil {
			out = append(out, []byte(err.Error()))
			continue
		}
		b, err := json.Marshal(report)
		if err != nil {
			t.Fatalf("marshal report: %v", err)
		}
		out = append(out, b)
	}
	return out
}

func TestSameSeedSameJourney(t *testing.T) {
	a := playScript(t, 1848)
	b := playScript(t, 1848)
	if len(a) != len(b) {
		t.Fatalf("trace lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if string(a[i]) != string(b[i]) {
			t.Fatalf("trace diverged at step %d:\n%s\n%s", i, a[i], b[i])
		}
	}
}

func TestInvariantsHoldAcrossRandomJourneys(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		g, err := New(Config{Profession: AvailableProfessions()[seed%4], Difficulty: Difficulties()[seed%3], Seed: seed})
		if err != nil {
			t.Fatalf("New error: %v", err)
		}
		picker := seededRNG(seed * 7)
		for !g.IsOver() {
			before := g.State()
			action := SupportedActions()[picker.IntN(4)]
			params := ActionParams{
				Pace:       PaceOptions()[picker.IntN(3)],
				AmmoSpent:  IntParam(picker.IntN(8)),
				OfferIndex: IntParam(picker.IntN(3)),
			}
			report, err := g.PerformAction(action, params)
			if err != nil {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Fatalf("seed %d: unexpected error %v", seed, err)
				}
				if after := g.State(); !reflect.DeepEqual(before, after) {
					t.Fatalf("seed %d: rejected action changed state", seed)
				}
				continue
			}
			s := report.GameState
			if s.Food < 0 || s.Ammo < 0 || s.Money < 0 || s.Distance < 0 {
				t.Fatalf("seed %d: negative resource %+v", seed, s)
			}
			if s.Health < 0 || s.Health > MaxHealth {
				t.Fatalf("seed %d: health out of range %d", seed, s.Health)
			}
			if g.IsOver() {
				if s.Day != before.Day {
					t.Fatalf("seed %d: final day should not advance", seed)
				}
				if s.Won != s.Alive {
					t.Fatalf("seed %d: inconsistent outcome won=%v alive=%v", seed, s.Won, s.Alive)
				}
			} else if s.Day != before.Day+1 {
				t.Fatalf("seed %d: day %d -> %d", seed, before.Day, s.Day)
			}
		}
	}
}
