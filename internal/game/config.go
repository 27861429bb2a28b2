package game

import (
	"fmt"
	"strings"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

type Profession string

const (
	ProfessionBanker    Profession = "banker"
	ProfessionCarpenter Profession = "carpenter"
	ProfessionFarmer    Profession = "farmer"
	ProfessionDoctor    Profession = "doctor"
)

type Pace string

const (
	PaceSlow     Pace = "slow"
	PaceSteady   Pace = "steady"
	PaceGrueling Pace = "grueling"
)

const DefaultPlayerName = "Pioneer"

// Config describes a new journey. A zero Seed picks a time-based seed; any
// other value makes the whole game reproducible. A nil Rules uses DefaultRules.
type Config struct {
	PlayerName string
	Profession Profession
	Difficulty Difficulty
	Seed       int64
	Rules      *Rules
}

func (c Config) Validate() error {
	if _, err := ParseProfession(string(c.Profession)); err != nil {
		return err
	}
	if c.Difficulty != "" {
		if _, err := ParseDifficulty(string(c.Difficulty)); err != nil {
			return err
		}
	}
	if c.Rules != nil {
		if err := c.Rules.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

func AvailableProfessions() []Profession {
	return []Profession{ProfessionBanker, ProfessionCarpenter, ProfessionFarmer, ProfessionDoctor}
}

func PaceOptions() []Pace {
	return []Pace{PaceSlow, PaceSteady, PaceGrueling}
}

func ParseDifficulty(raw string) (Difficulty, error) {
	value := Difficulty(strings.ToLower(strings.TrimSpace(raw)))
	for _, d := range Difficulties() {
		if d == value {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: unknown difficulty %q", ErrInvalidArgument, raw)
}

func ParseProfession(raw string) (Profession, error) {
	value := Profession(strings.ToLower(strings.TrimSpace(raw)))
	for _, p := range AvailableProfessions() {
		if p == value {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: unknown profession %q, choose from %s", ErrInvalidArgument, raw, joinValues(AvailableProfessions()))
}

func ParsePace(raw string) (Pace, error) {
	value := Pace(strings.ToLower(strings.TrimSpace(raw)))
	for _, p := range PaceOptions() {
		if p == value {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: invalid pace %q, choose from %s", ErrInvalidArgument, raw, joinValues(PaceOptions()))
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, string(v))
	}
	return strings.Join(parts, ", ")
}
