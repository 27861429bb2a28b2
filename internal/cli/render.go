package cli

import (
	"fmt"
	"strings"

	"github.com/IX-Erich/oregon-trail/internal/game"
	"github.com/IX-Erich/oregon-trail/internal/parser"
)

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Shell) println(line string) {
	fmt.Fprintln(s.out, line)
}

func (s *Shell) printHeader(state game.GameState) {
	s.println("\n" + rule)
	s.printf("Day %d on the trail\n", state.Day)
	s.println(rule)
	s.printf("Weather: %s | Terrain: %s\n", state.Weather, state.Terrain)
	s.printf("Distance: %d/%d miles\n", state.Distance, game.TargetMiles)
	s.printf("Health: %d | Food: %d lbs | Ammo: %d | Money: $%d\n", state.Health, state.Food, state.Ammo, state.Money)
	s.printf("Pace: %s\n", state.Pace)
	if state.TradeAvailable {
		s.println("A trading post is open today.")
	}
	s.printf("Status: %s\n", state.Status)
}

func (s *Shell) printOptions(options []string) {
	for i, option := range options {
		s.printf("  %d. %s\n", i+1, capitalize(option))
	}
}

func (s *Shell) printClarify(q *parser.ClarifyQuestion) {
	s.println(q.Prompt)
	for _, option := range q.Options {
		s.printf("  - %s\n", parser.IntentToCommandString(option))
	}
}

func (s *Shell) printHelp() {
	s.println("Commands:")
	s.println("  travel [slow|steady|grueling]  cover ground; omit the pace to choose it")
	s.println("  hunt [ammo]                    spend ammo for food (default 5)")
	s.println("  rest                           recover health")
	s.println("  trade [offer]                  deal at the trading post; 0 leaves")
	s.println("  status                         show your supplies")
	s.println("  quit                           abandon the journey")
}

func (s *Shell) printSummary(state game.GameState) {
	s.println("\n" + rule)
	s.println(state.Status)
	if state.Won {
		s.printf("You arrive in Oregon with %d lbs of food, %d ammo, and $%d.\n", state.Food, state.Ammo, state.Money)
		return
	}
	s.println("Your journey ends here. Perhaps try a different strategy next time.")
}

func capitalize(v string) string {
	if v == "" {
		return v
	}
	return strings.ToUpper(v[:1]) + v[1:]
}
