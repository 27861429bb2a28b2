package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/IX-Erich/oregon-trail/internal/game"
)

type docFile struct {
	Name    string
	Title   string
	Content string
}

func main() {
	root := filepath.Join("docs", "reference", "tables")
	if err := os.MkdirAll(root, 0o755); err != nil {
		fatal(err)
	}

	files := generateDocs(game.DefaultRules())
	for _, f := range files {
		path := filepath.Join(root, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %s\n", path)
	}

	index := generateIndex(files)
	indexPath := filepath.Join(root, "README.md")
	if err := os.WriteFile(indexPath, []byte(index), 0o644); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %s\n", indexPath)
}

func generateDocs(rules game.Rules) []docFile {
	return []docFile{
		generateDifficultiesDoc(rules),
		generateProfessionsDoc(),
		generatePacesDoc(),
		generateConditionsDoc(),
		generateEventsDoc(rules),
	}
}

func generateIndex(files []docFile) string {
	var b strings.Builder
	b.WriteString("# Trail Tables\n\n")
	b.WriteString("Generated from the current Go source using `go run ./cmd/docsgen`.\n\n")
	for _, f := range files {
		b.WriteString(fmt.Sprintf("- [%s](./%s)\n", f.Title, f.Name))
	}
	return b.String()
}

func generateDifficultiesDoc(rules game.Rules) docFile {
	var b strings.Builder
	b.WriteString("# Difficulties\n\n")
	b.WriteString("Source: `internal/game/rules.go` (`DefaultRules`). Override with a rules file.\n\n")
	b.WriteString("| Difficulty | Food (lbs) | Ammo | Money | Event Chance | Rest Health | Starvation Penalty | Max Days |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- | --- | --- |\n")
	for _, d := range game.Difficulties() {
		s, ok := rules.Settings(d)
		if !ok {
			continue
		}
		b.WriteString(row(
			string(d),
			strconv.Itoa(s.Food),
			strconv.Itoa(s.Ammo),
			"$"+strconv.Itoa(s.Money),
			percent(s.EventChance),
			strconv.Itoa(s.RestHealth),
			strconv.Itoa(s.StarvationPenalty),
			strconv.Itoa(s.MaxDays),
		))
	}
	return docFile{Name: "difficulties.md", Title: "Difficulties", Content: b.String()}
}

func generateProfessionsDoc() docFile {
	var b strings.Builder
	b.WriteString("# Professions\n\n")
	b.WriteString("Bonuses are added to the difficulty preset. Health never starts above ")
	b.WriteString(strconv.Itoa(game.MaxHealth))
	b.WriteString(".\n\n")
	b.WriteString("| Profession | Food | Ammo | Money | Health |\n")
	b.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, p := range game.AvailableProfessions() {
		bonus := game.BonusFor(p)
		b.WriteString(row(string(p), signed(bonus.Food), signed(bonus.Ammo), signed(bonus.Money), signed(bonus.Health)))
	}
	return docFile{Name: "professions.md", Title: "Professions", Content: b.String()}
}

func generatePacesDoc() docFile {
	var b strings.Builder
	b.WriteString("# Paces\n\n")
	b.WriteString(fmt.Sprintf("Travel never covers less than %d miles. The daily ration is %d lbs; faster paces eat more.\n\n", game.MinTravelMiles, game.BaseFoodPerDay))
	b.WriteString("| Pace | Miles / Day | Food Multiplier |\n")
	b.WriteString("| --- | --- | --- |\n")
	for _, p := range game.PaceOptions() {
		s, _ := game.PaceFor(p)
		b.WriteString(row(string(p), strconv.Itoa(s.MilesPerDay), formatFloat(s.FoodMultiplier)))
	}
	return docFile{Name: "paces.md", Title: "Paces", Content: b.String()}
}

func generateConditionsDoc() docFile {
	var b strings.Builder
	b.WriteString("# Weather and Terrain\n\n")
	b.WriteString("Both are rolled each day by weight and multiply the distance travelled.\n\n")
	writeConditionTable(&b, "Weather", game.WeatherTable())
	b.WriteString("\n")
	writeConditionTable(&b, "Terrain", game.TerrainTable())
	return docFile{Name: "conditions.md", Title: "Weather and Terrain", Content: b.String()}
}

func writeConditionTable(b *strings.Builder, title string, table []game.Condition) {
	total := 0
	for _, c := range table {
		total += c.Weight
	}
	b.WriteString("## " + title + "\n\n")
	b.WriteString("| Label | Modifier | Weight | Chance |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, c := range table {
		b.WriteString(row(escape(c.Label), formatFloat(c.Modifier), strconv.Itoa(c.Weight), percent(float64(c.Weight)/float64(total))))
	}
}

func generateEventsDoc(rules game.Rules) docFile {
	var b strings.Builder
	b.WriteString("# Random Events\n\n")
	b.WriteString("At most one event fires per day, with the difficulty's event chance:")
	for _, d := range game.Difficulties() {
		if s, ok := rules.Settings(d); ok {
			b.WriteString(fmt.Sprintf(" %s %s", d, percent(s.EventChance)))
		}
	}
	b.WriteString(".\n\n")
	b.WriteString("| Event | Share |\n")
	b.WriteString("| --- | --- |\n")
	for _, e := range game.RandomEventOdds() {
		b.WriteString(row(escape(e.Label), percent(e.Probability)))
	}
	return docFile{Name: "events.md", Title: "Random Events", Content: b.String()}
}

func row(cells ...string) string {
	return "| " + strings.Join(cells, " | ") + " |\n"
}

func signed(v int) string {
	if v > 0 {
		return "+" + strconv.Itoa(v)
	}
	return strconv.Itoa(v)
}

func percent(v float64) string {
	return strconv.FormatFloat(math.Round(v*10000)/100, 'f', -1, 64) + "%"
}

func formatFloat(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escape(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	v = strings.ReplaceAll(v, "|", "\\|")
	v = strings.ReplaceAll(v, "\n", "<br>")
	return v
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
