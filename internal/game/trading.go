package game

import "fmt"

// maybePrepareTradePost replaces the offers of the previous day. Draw order:
// availability, offer count, then per offer the item, quantity, price factor
// and sell flip.
func (g *Game) maybePrepareTradePost(chance float64) {
	if !rollChance(g.rng, chance) {
		g.closeTradePost()
		return
	}

	count := rollInt(g.rng, 1, 3)
	offers := make([]TradeOffer, 0, count)
	for i := 0; i < count; i++ {
		offers = append(offers, g.rollOffer())
	}
	g.state.TradeAvailable = true
	g.offers = offers
}

func (g *Game) rollOffer() TradeOffer {
	var offer TradeOffer
	if g.rng.Float64() < 0.5 {
		offer.Item = ItemFood
		offer.Quantity = rollInt(g.rng, 25, 60)
		offer.Price = max(10, int(float64(offer.Quantity)*rollUniform(g.rng, 0.4, 0.7)))
	} else {
		offer.Item = ItemAmmo
		offer.Quantity = rollInt(g.rng, 6, 15)
		offer.Price = max(8, int(float64(offer.Quantity)*rollUniform(g.rng, 1.5, 2.0)))
	}
	if rollChance(g.rng, SellOfferChance) {
		offer.Price = -offer.Price
	}
	return offer
}

func (g *Game) closeTradePost() {
	g.state.TradeAvailable = false
	g.offers = nil
}

// trade settles an offer that already passed Precheck.
func (g *Game) trade(index int) string {
	offer := g.offers[index]

	var message string
	if offer.IsPurchase() {
		g.state.Money -= offer.Price
		g.state.addResource(offer.Item, offer.Quantity)
		message = fmt.Sprintf("You buy %d %s for $%d.", offer.Quantity, offer.Item, offer.Price)
	} else {
		g.state.addResource(offer.Item, -offer.Quantity)
		g.state.Money += -offer.Price
		message = fmt.Sprintf("You sell %d %s for $%d.", offer.Quantity, offer.Item, -offer.Price)
	}

	g.offers = append(g.offers[:index:index], g.offers[index+1:]...)
	g.state.TradeAvailable = false
	return message
}
