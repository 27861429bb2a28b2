package game

// rollEnvironment draws weather first, then terrain. Both must be settled
// before an action runs so travel distance reflects the new day.
func (g *Game) rollEnvironment() {
	g.state.Weather = rollCondition(g.rng, weatherTable).Label
	g.state.Terrain = rollCondition(g.rng, terrainTable).Label
}

func (g *Game) weatherModifier() float64 {
	return conditionModifier(weatherTable, g.state.Weather)
}

func (g *Game) terrainModifier() float64 {
	return conditionModifier(terrainTable, g.state.Terrain)
}

func conditionModifier(table []Condition, label string) float64 {
	for _, c := range table {
		if c.Label == label {
			return c.Modifier
		}
	}
	return 1.0
}
