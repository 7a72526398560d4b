package domain

// Hotel is the catalog read model for a property.
type Hotel struct {
	ID   string
	Name string
}

// Room is the catalog read model for a bookable room, including its pricing.
type Room struct {
	ID      string
	HotelID string
	Name    string
	Pricing RoomPricing
}
