package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	BaseFoodPerDay   = 5
	TargetMiles      = 2000
	DefaultHuntAmmo  = 5
	MinTravelMiles   = 5
	StationaryRation = BaseFoodPerDay - 2
	MaxHealth        = 100

	LostTrailMiles = 10

	InitialTradeChance = 0.3
	DailyTradeChance   = 0.25
	SellOfferChance    = 0.25
)

type DifficultySettings struct {
	Food              int
	Ammo              int
	Money             int
	EventChance       float64
	RestHealth        int
	StarvationPenalty int
	MaxDays           int
}

type ProfessionBonus struct {
	Food   int
	Ammo   int
	Money  int
	Health int
}

type PaceSettings struct {
	MilesPerDay    int
	FoodMultiplier float64
}

type Condition struct {
	Label    string
	Modifier float64
	Weight   int
}

var professionBonuses = map[Profession]ProfessionBonus{
	ProfessionBanker:    {Money: 600},
	ProfessionCarpenter: {Ammo: 10, Health: 5},
	ProfessionFarmer:    {Food: 50, Health: 5},
	ProfessionDoctor:    {Health: 10},
}

var paceSettings = map[Pace]PaceSettings{
	PaceSlow:     {MilesPerDay: 12, FoodMultiplier: 0.8},
	PaceSteady:   {MilesPerDay: 18, FoodMultiplier: 1.0},
	PaceGrueling: {MilesPerDay: 24, FoodMultiplier: 1.35},
}

var weatherTable = []Condition{
	{Label: "Mild", Modifier: 1.0, Weight: 5},
	{Label: "Warm", Modifier: 1.05, Weight: 4},
	{Label: "Hot", Modifier: 0.9, Weight: 3},
	{Label: "Cold", Modifier: 0.85, Weight: 3},
	{Label: "Freezing", Modifier: 0.7, Weight: 2},
	{Label: "Stormy", Modifier: 0.6, Weight: 2},
}

var terrainTable = []Condition{
	{Label: "Plains", Modifier: 1.0, Weight: 5},
	{Label: "Hills", Modifier: 0.85, Weight: 3},
	{Label: "Mountains", Modifier: 0.7, Weight: 2},
	{Label: "Desert", Modifier: 0.75, Weight: 2},
	{Label: "Forest", Modifier: 0.9, Weight: 3},
}

func BonusFor(p Profession) ProfessionBonus {
	return professionBonuses[p]
}

func PaceFor(p Pace) (PaceSettings, bool) {
	settings, ok := paceSettings[p]
	return settings, ok
}

func WeatherTable() []Condition {
	return append([]Condition(nil), weatherTable...)
}

func TerrainTable() []Condition {
	return append([]Condition(nil), terrainTable...)
}

// Rules holds the tunable tables of a journey. The difficulty presets and
// trading post odds may be overridden from a YAML file; professions, paces
// and conditions are fixed.
type Rules struct {
	Difficulties       map[Difficulty]DifficultySettings
	InitialTradeChance float64
	DailyTradeChance   float64
}

func DefaultRules() Rules {
	return Rules{
		Difficulties: map[Difficulty]DifficultySettings{
			DifficultyEasy: {
				Food: 300, Ammo: 70, Money: 1400,
				EventChance: 0.18, RestHealth: 15, StarvationPenalty: 8, MaxDays: 60,
			},
			DifficultyNormal: {
				Food: 240, Ammo: 55, Money: 1100,
				EventChance: 0.27, RestHealth: 12, StarvationPenalty: 10, MaxDays: 55,
			},
			DifficultyHard: {
				Food: 200, Ammo: 45, Money: 900,
				EventChance: 0.35, RestHealth: 9, StarvationPenalty: 12, MaxDays: 50,
			},
		},
		InitialTradeChance: InitialTradeChance,
		DailyTradeChance:   DailyTradeChance,
	}
}

func (r Rules) Clone() Rules {
	out := r
	out.Difficulties = make(map[Difficulty]DifficultySettings, len(r.Difficulties))
	for k, v := range r.Difficulties {
		out.Difficulties[k] = v
	}
	return out
}

func (r Rules) Settings(d Difficulty) (DifficultySettings, bool) {
	settings, ok := r.Difficulties[d]
	return settings, ok
}

func (r Rules) Validate() error {
	for _, d := range Difficulties() {
		s, ok := r.Difficulties[d]
		if !ok {
			return fmt.Errorf("%w: missing settings for difficulty %q", ErrInvalidArgument, d)
		}
		if s.Food < 0 || s.Ammo < 0 || s.Money < 0 {
			return fmt.Errorf("%w: %s starting supplies must not be negative", ErrInvalidArgument, d)
		}
		if !isProbability(s.EventChance) {
			return fmt.Errorf("%w: %s event chance %v outside [0,1]", ErrInvalidArgument, d, s.EventChance)
		}
		if s.RestHealth < 0 || s.StarvationPenalty < 0 {
			return fmt.Errorf("%w: %s health adjustments must not be negative", ErrInvalidArgument, d)
		}
		if s.MaxDays <= 0 {
			return fmt.Errorf("%w: %s max days must be positive, got %d", ErrInvalidArgument, d, s.MaxDays)
		}
	}
	if !isProbability(r.InitialTradeChance) || !isProbability(r.DailyTradeChance) {
		return fmt.Errorf("%w: trade chances must be within [0,1]", ErrInvalidArgument)
	}
	return nil
}

func isProbability(p float64) bool {
	return p >= 0 && p <= 1
}

type difficultyOverride struct {
	Food              *int     `yaml:"food"`
	Ammo              *int     `yaml:"ammo"`
	Money             *int     `yaml:"money"`
	EventChance       *float64 `yaml:"event_chance"`
	RestHealth        *int     `yaml:"rest_health"`
	StarvationPenalty *int     `yaml:"starvation_penalty"`
	MaxDays           *int     `yaml:"max_days"`
}

type rulesFile struct {
	Difficulties       map[string]difficultyOverride `yaml:"difficulties"`
	InitialTradeChance *float64                      `yaml:"initial_trade_chance"`
	DailyTradeChance   *float64                      `yaml:"daily_trade_chance"`
}

// LoadRules reads a YAML rules file on top of DefaultRules. Keys that are
// absent keep their built-in values.
func LoadRules(path string) (Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("read rules %s: %w", path, err)
	}
	return ParseRules(data)
}

func ParseRules(data []byte) (Rules, error) {
	var file rulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Rules{}, fmt.Errorf("%w: parse rules: %v", ErrInvalidArgument, err)
	}

	rules := DefaultRules()
	for name, override := range file.Difficulties {
		d, err := ParseDifficulty(name)
		if err != nil {
			return Rules{}, err
		}
		rules.Difficulties[d] = override.apply(rules.Difficulties[d])
	}
	if file.InitialTradeChance != nil {
		rules.InitialTradeChance = *file.InitialTradeChance
	}
	if file.DailyTradeChance != nil {
		rules.DailyTradeChance = *file.DailyTradeChance
	}
	if err := rules.Validate(); err != nil {
		return Rules{}, err
	}
	return rules, nil
}

// MarshalRules renders r in the format LoadRules reads back.
func MarshalRules(r Rules) ([]byte, error) {
	file := rulesFile{
		Difficulties:       make(map[string]difficultyOverride, len(r.Difficulties)),
		InitialTradeChance: &r.InitialTradeChance,
		DailyTradeChance:   &r.DailyTradeChance,
	}
	for _, d := range Difficulties() {
		s, ok := r.Difficulties[d]
		if !ok {
			continue
		}
		file.Difficulties[string(d)] = difficultyOverride{
			Food:              &s.Food,
			Ammo:              &s.Ammo,
			Money:             &s.Money,
			EventChance:       &s.EventChance,
			RestHealth:        &s.RestHealth,
			StarvationPenalty: &s.StarvationPenalty,
			MaxDays:           &s.MaxDays,
		}
	}
	out, err := yaml.Marshal(file)
	if err != nil {
		return nil, fmt.Errorf("marshal rules: %w", err)
	}
	return out, nil
}

func (o difficultyOverride) apply(s DifficultySettings) DifficultySettings {
	if o.Food != nil {
		s.Food = *o.Food
	}
	if o.Ammo != nil {
		s.Ammo = *o.Ammo
	}
	if o.Money != nil {
		s.Money = *o.Money
	}
	if o.EventChance != nil {
		s.EventChance = *o.EventChance
	}
	if o.RestHealth != nil {
		s.RestHealth = *o.RestHealth
	}
	if o.StarvationPenalty != nil {
		s.StarvationPenalty = *o.StarvationPenalty
	}
	if o.MaxDays != nil {
		s.MaxDays = *o.MaxDays
	}
	return s
}
