package app

import "github.com/LushWare-Org/Travel-Agency-Management-System-sub004/internal/domain"

// MarketSurcharge reports the nightly amount still to be added to the quoted
// price for the traveler's market. Upstream quoting may or may not have
// pre-applied the market markup: when the quote already equals base+market
// the surcharge is embedded and nothing more is owed. The calculator must
// neither double-charge nor silently drop the markup.
func MarketSurcharge(pricing domain.RoomPricing, market string, quotedBasePricePerNight float64) float64 {
	marketPrice := pricing.MarketPriceFor(market)
	if pricing.BasePrice != nil && quotedBasePricePerNight == float64(*pricing.BasePrice)+marketPrice {
		return 0
	}
	return marketPrice
}
