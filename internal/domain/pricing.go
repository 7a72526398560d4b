package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Amount is a currency value that tolerates sloppy catalog data: JSON numbers,
// numeric strings and null all decode, anything else coerces to zero.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*a = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	if s == "" {
		*a = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*a = 0
		return nil
	}
	*a = Amount(v)
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(a))
}

// MarketPrice is the incremental nightly charge for one market/region.
type MarketPrice struct {
	Market string `json:"market"`
	Price  Amount `json:"price"`
}

// RoomPricing carries the hotel-listed base nightly rate and per-market
// surcharge entries. BasePrice is nil when the hotel has not listed one.
type RoomPricing struct {
	BasePrice    *Amount       `json:"basePrice,omitempty"`
	MarketPrices []MarketPrice `json:"prices,omitempty"`
}

// MarketPriceFor returns the surcharge entry for market, or 0 when absent.
func (p RoomPricing) MarketPriceFor(market string) float64 {
	for _, mp := range p.MarketPrices {
		if mp.Market == market {
			return float64(mp.Price)
		}
	}
	return 0
}
