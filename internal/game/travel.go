package game

import "math"

func (g *Game) resolvePace(requested Pace) (Pace, error) {
	if requested == "" {
		return g.state.Pace, nil
	}
	return ParsePace(string(requested))
}

// travel moves the party and returns the miles covered plus the food eaten on
// top of the base ration.
func (g *Game) travel(pace Pace) (int, int) {
	settings := paceSettings[pace]

	exact := float64(settings.MilesPerDay) * g.weatherModifier() * g.terrainModifier()
	miles := max(MinTravelMiles, int(math.RoundToEven(exact)))
	g.state.Distance += miles
	g.state.Pace = pace

	extraFood := int(math.Ceil(BaseFoodPerDay * math.Max(0, settings.FoodMultiplier-1)))
	return miles, extraFood
}

func (g *Game) hunt(ammo int) int {
	g.state.Ammo -= ammo
	gained := rollInt(g.rng, 25, 55) + ammo*2
	g.state.Food += gained
	return gained
}

func (g *Game) rest() int {
	before := g.state.Health
	g.state.Health = min(MaxHealth, g.state.Health+g.settings.RestHealth)
	return g.state.Health - before
}
