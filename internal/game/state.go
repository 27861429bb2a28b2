package game

import (
	"fmt"
	"slices"
)

const (
	StatusOnTrail   = "On the trail"
	StatusPerished  = "You have perished on the trail."
	StatusArrived   = "Congratulations! You have reached Oregon City."
	StatusOutOfTime = "Time has run out before you reached Oregon."
)

type GameState struct {
	PlayerName     string     `json:"player_name"`
	Profession     Profession `json:"profession"`
	Difficulty     Difficulty `json:"difficulty"`
	Day            int        `json:"day"`
	Distance       int        `json:"distance"`
	Food           int        `json:"food"`
	Ammo           int        `json:"ammo"`
	Money          int        `json:"money"`
	Health         int        `json:"health"`
	Pace           Pace       `json:"pace"`
	Weather        string     `json:"weather"`
	Terrain        string     `json:"terrain"`
	Alive          bool       `json:"alive"`
	Won            bool       `json:"won"`
	Status         string     `json:"status"`
	EventLog       []string   `json:"event_log"`
	TradeAvailable bool       `json:"trade_available"`
}

// Snapshot returns a copy that shares no memory with s.
func (s GameState) Snapshot() GameState {
	out := s
	out.EventLog = slices.Clone(s.EventLog)
	if out.EventLog == nil {
		out.EventLog = []string{}
	}
	return out
}

type ItemKind string

const (
	ItemFood ItemKind = "food"
	ItemAmmo ItemKind = "ammo"
)

// TradeOffer is valid only for the day it was generated. A positive Price is
// paid by the party; a negative Price is paid to the party for its goods.
type TradeOffer struct {
	Item     ItemKind `json:"item"`
	Quantity int      `json:"quantity"`
	Price    int      `json:"price"`
}

func (o TradeOffer) IsPurchase() bool {
	return o.Price > 0
}

func (o TradeOffer) Describe() string {
	if o.IsPurchase() {
		return fmt.Sprintf("Buy %d %s for $%d", o.Quantity, o.Item, o.Price)
	}
	return fmt.Sprintf("Sell %d %s for $%d", o.Quantity, o.Item, -o.Price)
}

// DayReport is what a single action returns: the state after the day, the
// messages produced during it and the offers open for the next decision.
type DayReport struct {
	GameState
	Messages    []string `json:"messages"`
	TradeOffers []string `json:"trade_offers"`
}

func (s *GameState) resource(item ItemKind) (int, bool) {
	switch item {
	case ItemFood:
		return s.Food, true
	case ItemAmmo:
		return s.Ammo, true
	default:
		return 0, false
	}
}

func (s *GameState) addResource(item ItemKind, amount int) {
	switch item {
	case ItemFood:
		s.Food = max(0, s.Food+amount)
	case ItemAmmo:
		s.Ammo = max(0, s.Ammo+amount)
	}
}

func clamp(number, min, max int) int {
	if number < min {
		return min
	}

	if number > max {
		return max
	}

	return number
}

func clampState(s *GameState) {
	s.Food = max(0, s.Food)
	s.Ammo = max(0, s.Ammo)
	s.Money = max(0, s.Money)
	s.Distance = max(0, s.Distance)
	s.Health = clamp(s.Health, 0, MaxHealth)
}
