package parser

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type Parser struct {
	registry *Registry
}

func New() *Parser {
	return &Parser{registry: DefaultRegistry()}
}

func (p *Parser) Parse(ctx ParseContext, raw string) Intent {
	intent := Intent{
		Raw:        raw,
		Normalised: normaliseInput(raw),
		Kind:       Unknown,
		Confidence: 0,
	}
	if intent.Normalised == "" {
		intent.Clarify = &ClarifyQuestion{Prompt: "Enter a command, or type help."}
		return intent
	}

	tokens := tokenise(intent.Normalised)
	cmdMatch, alternates := p.registry.matchCommand(tokens)
	if cmdMatch.Canonical == "" || cmdMatch.Score < 0.5 {
		if inferred := inferFreeTextIntent(ctx, intent.Raw, intent.Normalised); inferred != nil {
			return *inferred
		}
		intent.Clarify = &ClarifyQuestion{
			Prompt: "I couldn't map that to a command. Try travel, hunt, rest, trade, status, help or quit.",
		}
		return intent
	}

	if len(alternates) > 0 && alternates[0].Consumed >= cmdMatch.Consumed &&
		(cmdMatch.Score-alternates[0].Score) < 0.05 && alternates[0].Score > 0.65 {
		intent.Clarify = &ClarifyQuestion{
			Prompt: "Did you mean:",
			Options: []Intent{
				p.bareIntent(raw, cmdMatch),
				p.bareIntent(raw, alternates[0]),
			},
		}
		return intent
	}

	def, _ := p.registry.command(cmdMatch.Canonical)
	intent.Verb = def.Canonical
	intent.Kind = def.Kind
	intent.Confidence = clampScore(cmdMatch.Score)

	argsTokens := tokens
	if cmdMatch.Consumed > 0 && len(tokens) >= cmdMatch.Consumed {
		argsTokens = tokens[cmdMatch.Consumed:]
	}
	argsTokens, q := splitQuantity(argsTokens)
	intent.Quantity = q

	resolvedArgs, clarify, argScore := resolveArgs(ctx, def, argsTokens)
	if clarify != nil {
		intent.Clarify = clarify
		intent.Confidence = 0.45
		return intent
	}
	intent.Args = resolvedArgs
	intent.Confidence = clampScore((intent.Confidence * 0.75) + (argScore * 0.25))

	if len(intent.Args) > def.MaxArgs {
		intent.Args = append([]string(nil), intent.Args[:def.MaxArgs]...)
		intent.Confidence = clampScore(intent.Confidence - 0.05)
	}

	if intent.Confidence < 0.52 {
		intent.Clarify = &ClarifyQuestion{Prompt: "I have low confidence in that parse. Please rephrase or pick a clearer command."}
	}
	return intent
}

func (p *Parser) bareIntent(raw string, c commandCandidate) Intent {
	def, _ := p.registry.command(c.Canonical)
	return Intent{
		Raw:        raw,
		Normalised: c.Canonical,
		Kind:       def.Kind,
		Verb:       c.Canonical,
		Confidence: c.Score,
	}
}

func splitQuantity(tokens []string) ([]string, *Quantity) {
	if len(tokens) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(tokens))
	var q *Quantity
	for _, token := range tokens {
		if q == nil {
			if candidate := parseQuantityToken(token); candidate != nil {
				q = candidate
				continue
			}
		}
		out = append(out, token)
	}
	return out, q
}

func resolveArgs(ctx ParseContext, def CommandDef, args []string) ([]string, *ClarifyQuestion, float64) {
	resolved := make([]string, 0, len(args))
	score := 0.9
	for _, token := range args {
		if isFiller(token) {
			continue
		}
		if def.Canonical == "travel" {
			paces := ctx.Paces
			if len(paces) == 0 {
				paces = defaultPaces()
			}
			match, confidence, tie := bestMatches(token, paces)
			if len(match) == 0 || tie {
				options := make([]Intent, 0, len(paces))
				for _, pace := range paces {
					options = append(options, Intent{Kind: Command, Verb: "travel", Args: []string{pace}, Confidence: 0.88})
				}
				return nil, &ClarifyQuestion{Prompt: "Travel at which pace?", Options: options}, 0.5
			}
			resolved = append(resolved, match[0])
			score = minScore(score, confidence)
			continue
		}
		resolved = append(resolved, token)
		score -= 0.02
	}
	if len(resolved) == 0 {
		return nil, nil, score
	}
	return resolved, nil, clampScore(score)
}

func bestMatches(token string, all []string) ([]string, float64, bool) {
	if len(all) == 0 {
		return nil, 0, false
	}
	type scored struct {
		val   string
		score float64
	}

	results := make([]scored, 0, len(all))
	for _, raw := range all {
		cand := normaliseInput(raw)
		if cand == "" {
			continue
		}
		score := 0.0
		switch {
		case token == cand:
			score = 1.0
		case strings.HasPrefix(cand, token) && len(token) >= 2:
			score = 0.9
		default:
			dist := levenshtein.ComputeDistance(token, cand)
			if dist > levenshteinLimit(len(cand)) {
				continue
			}
			score = 0.72 - (0.08 * float64(dist))
		}
		results = append(results, scored{val: cand, score: clampScore(score)})
	}
	if len(results) == 0 {
		return nil, 0, false
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score == results[j].score {
			return results[i].val < results[j].val
		}
		return results[i].score > results[j].score
	})

	best := results[0]
	tie := len(results) > 1 && (best.score-results[1].score) < 0.05 && results[1].score > 0.6
	if tie {
		return []string{best.val, results[1].val}, best.score, true
	}
	return []string{best.val}, best.score, false
}

func inferFreeTextIntent(ctx ParseContext, raw string, normalised string) *Intent {
	n := normalised
	makeIntent := func(kind IntentKind, verb string, args []string, confidence float64) *Intent {
		return &Intent{
			Raw:        raw,
			Normalised: normalised,
			Kind:       kind,
			Verb:       verb,
			Args:       args,
			Confidence: clampScore(confidence),
		}
	}

	if containsAnyPhrase(n, "how am i doing", "check supplies", "what do i have", "how much food", "my supplies") {
		return makeIntent(Query, "status", nil, 0.9)
	}
	if containsAnyPhrase(n, "look for food", "find food", "get food", "need food", "find game", "i m hungry", "im hungry") {
		return makeIntent(Command, "hunt", nil, 0.82)
	}
	if containsAnyPhrase(n, "take a break", "i m tired", "im tired", "heal up", "catch my breath") {
		return makeIntent(Command, "rest", nil, 0.82)
	}
	if containsAnyPhrase(n, "trading post", "make a deal") {
		return makeIntent(Command, "trade", nil, 0.8)
	}

	paces := ctx.Paces
	if len(paces) == 0 {
		paces = defaultPaces()
	}
	for _, token := range tokenise(n) {
		for _, pace := range paces {
			if token == normaliseInput(pace) {
				return makeIntent(Command, "travel", []string{token}, 0.8)
			}
		}
	}
	if containsAnyPhrase(n, "hit the trail", "keep moving", "head west", "move on") {
		return makeIntent(Command, "travel", nil, 0.84)
	}
	return nil
}

func containsAnyPhrase(value string, phrases ...string) bool {
	for _, phrase := range phrases {
		if containsPhrase(value, phrase) {
			return true
		}
	}
	return false
}

func containsPhrase(value, phrase string) bool {
	p := normaliseInput(phrase)
	if p == "" {
		return false
	}
	return strings.Contains(" "+value+" ", " "+p+" ")
}

func minScore(a, b float64) float64 {
	if b < a {
		return b
	}
	return a
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func IntentToCommandString(intent Intent) string {
	verb := normaliseInput(intent.Verb)
	if verb == "" {
		return ""
	}
	args := make([]string, 0, len(intent.Args)+1)
	for _, arg := range intent.Args {
		n := normaliseInput(arg)
		if n != "" {
			args = append(args, n)
		}
	}
	if intent.Quantity != nil && intent.Quantity.Raw != "" {
		args = append(args, normaliseInput(intent.Quantity.Raw))
	}
	if len(args) == 0 {
		return verb
	}
	return verb + " " + strings.Join(args, " ")
}
