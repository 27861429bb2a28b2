package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/IX-Erich/oregon-trail/internal/game"
	"github.com/IX-Erich/oregon-trail/internal/parser"
)

var errInputClosed = errors.New("input closed")

const rule = "============================================================"

// Options are the values given on the command line. Blank fields are asked
// for interactively.
type Options struct {
	Name       string
	Profession string
	Difficulty string
	Seed       int64
	Rules      *game.Rules
}

type Shell struct {
	in     *bufio.Scanner
	out    io.Writer
	parser *parser.Parser
}

func NewShell(in io.Reader, out io.Writer) *Shell {
	return &Shell{
		in:     bufio.NewScanner(in),
		out:    out,
		parser: parser.New(),
	}
}

// Run configures a game from opts and plays it until it ends, the player
// quits or input runs out.
func (s *Shell) Run(opts Options) error {
	cfg, err := s.Configure(opts)
	if err != nil {
		if errors.Is(err, errInputClosed) {
			return nil
		}
		return err
	}
	g, err := game.New(cfg)
	if err != nil {
		return err
	}
	return s.Play(g)
}

func (s *Shell) Configure(opts Options) (game.Config, error) {
	cfg := game.Config{Seed: opts.Seed, Rules: opts.Rules}

	name := strings.TrimSpace(opts.Name)
	if name == "" {
		s.printf("What is your name, traveler? ")
		line, err := s.readLine()
		if err != nil {
			return cfg, err
		}
		name = strings.TrimSpace(line)
	}
	cfg.PlayerName = name

	if opts.Profession != "" {
		p, err := game.ParseProfession(opts.Profession)
		if err != nil {
			return cfg, err
		}
		cfg.Profession = p
	} else {
		choice, err := s.promptChoice("Choose your profession:", stringsOf(game.AvailableProfessions()))
		if err != nil {
			return cfg, err
		}
		cfg.Profession = game.Profession(choice)
	}

	if opts.Difficulty != "" {
		d, err := game.ParseDifficulty(opts.Difficulty)
		if err != nil {
			return cfg, err
		}
		cfg.Difficulty = d
	} else {
		choice, err := s.promptChoice("Choose your difficulty:", stringsOf(game.Difficulties()))
		if err != nil {
			return cfg, err
		}
		cfg.Difficulty = game.Difficulty(choice)
	}
	return cfg, nil
}

func (s *Shell) Play(g *game.Game) error {
	s.println("\nWelcome to the Oregon Trail! Prepare for the long journey ahead.")

	for !g.IsOver() {
		s.printHeader(g.State())

		report, quit, err := s.takeTurn(g)
		if errors.Is(err, errInputClosed) || quit {
			s.println("You abandon the journey.")
			return nil
		}
		if err != nil {
			if errors.Is(err, game.ErrInvalidArgument) {
				s.printf("! %v\n", err)
				continue
			}
			return err
		}
		for _, message := range report.Messages {
			s.printf("- %s\n", message)
		}
	}

	s.printSummary(g.State())
	return nil
}

// takeTurn reads input until it resolves to one engine action.
func (s *Shell) takeTurn(g *game.Game) (game.DayReport, bool, error) {
	actions := g.AvailableActions()
	if len(actions) == 0 {
		return game.DayReport{}, false, fmt.Errorf("%w: no available actions", game.ErrInvalidState)
	}

	for {
		s.println("What will you do today?")
		s.printOptions(stringsOf(actions))
		s.printf("Select an option by number, type a command, or press Enter to choose the first: ")
		line, err := s.readLine()
		if err != nil {
			return game.DayReport{}, false, err
		}
		line = strings.TrimSpace(line)

		if line == "" {
			return s.runAction(g, actions[0], nil)
		}
		if n, err := strconv.Atoi(line); err == nil {
			if n >= 1 && n <= len(actions) {
				return s.runAction(g, actions[n-1], nil)
			}
			s.println("Invalid choice. Please try again.\n")
			continue
		}

		intent := s.parser.Parse(parser.ParseContext{Paces: stringsOf(game.PaceOptions())}, line)
		if intent.Clarify != nil {
			s.printClarify(intent.Clarify)
			continue
		}
		switch intent.Kind {
		case parser.Exit:
			return game.DayReport{}, true, nil
		case parser.Help:
			s.printHelp()
			continue
		case parser.Query:
			s.printHeader(g.State())
			continue
		case parser.Command:
			action, err := game.ParseAction(intent.Verb)
			if err != nil {
				s.printf("! %v\n", err)
				continue
			}
			return s.runAction(g, action, &intent)
		default:
			s.println("Invalid choice. Please try again.\n")
		}
	}
}

// runAction gathers the parameters the action still needs and performs it.
// A typed intent may already carry them.
func (s *Shell) runAction(g *game.Game, action game.Action, intent *parser.Intent) (game.DayReport, bool, error) {
	var params game.ActionParams
	switch action {
	case game.ActionTravel:
		if intent != nil && len(intent.Args) > 0 {
			params.Pace = game.Pace(intent.Args[0])
			break
		}
		choice, err := s.promptChoice("Choose your travel pace:", stringsOf(game.PaceOptions()))
		if err != nil {
			return game.DayReport{}, false, err
		}
		params.Pace = game.Pace(choice)
	case game.ActionHunt:
		if intent != nil && intent.Quantity != nil {
			params.AmmoSpent = game.IntParam(intent.Quantity.N)
		}
	case game.ActionTrade:
		if intent != nil && intent.Quantity != nil {
			if intent.Quantity.N != 0 {
				params.OfferIndex = game.IntParam(intent.Quantity.N - 1)
			}
			break
		}
		index, err := s.chooseOffer(g)
		if err != nil {
			return game.DayReport{}, false, err
		}
		params.OfferIndex = index
	}

	report, err := g.PerformAction(action, params)
	return report, false, err
}

func (s *Shell) chooseOffer(g *game.Game) (*int, error) {
	offers := g.TradeOffers()
	if len(offers) == 0 {
		s.println("No traders are available today.")
		return nil, nil
	}
	s.println("Trading Post Offers:")
	for i, offer := range offers {
		s.printf("  %d. %s\n", i+1, offer.Describe())
	}
	s.println("  0. Leave without trading")
	s.printf("Choose an offer (0 to skip): ")
	line, err := s.readLine()
	if err != nil {
		return nil, err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < 0 {
		s.println("Invalid input, skipping trade.")
		return nil, nil
	}
	if n == 0 {
		return nil, nil
	}
	return game.IntParam(n - 1), nil
}

// promptChoice repeats until a valid number or an empty line is entered.
// An empty line selects the first option.
func (s *Shell) promptChoice(prompt string, options []string) (string, error) {
	for {
		s.println(prompt)
		s.printOptions(options)
		s.printf("Select an option by number (or press Enter to choose the first): ")
		line, err := s.readLine()
		if err != nil {
			return "", err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return options[0], nil
		}
		if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(options) {
			return options[n-1], nil
		}
		s.println("Invalid choice. Please try again.\n")
	}
}

func (s *Shell) readLine() (string, error) {
	if s.in.Scan() {
		return s.in.Text(), nil
	}
	if err := s.in.Err(); err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return "", errInputClosed
}

func stringsOf[T ~string](values []T) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, string(v))
	}
	return out
}
