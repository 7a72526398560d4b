package domain

import "time"

type DiscountType string

const (
	DiscountExclusive      DiscountType = "exclusive"
	DiscountTransportation DiscountType = "transportation"
	DiscountSeasonal       DiscountType = "seasonal"
	DiscountLibert         DiscountType = "libert"
	DiscountPercentage     DiscountType = "percentage"
)

// DateWindow is a half-open-capable validity window; a nil side is unbounded.
type DateWindow struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

// OfferConditions holds the optional eligibility constraints of an offer.
// An absent field means "no constraint", never "fail closed".
type OfferConditions struct {
	StayPeriod     *DateWindow  `json:"stayPeriod,omitempty"`
	BookingWindow  *DateWindow  `json:"bookingWindow,omitempty"`
	MinNights      *int         `json:"minNights,omitempty"`
	MinStayDays    *int         `json:"minStayDays,omitempty"`
	SeasonalMonths []time.Month `json:"seasonalMonths,omitempty"`
	MinBookings    *int         `json:"minBookings,omitempty"`
	IsDefault      bool         `json:"isDefault,omitempty"`
}

// Offer is a promotional discount record from the catalog. Records carrying an
// unrecognized Type are kept in the catalog but never become eligible.
type Offer struct {
	ID               string
	Name             string
	Type             DiscountType
	Active           bool
	ValidFrom        *time.Time
	ValidTo          *time.Time
	ApplicableHotels []string
	Conditions       *OfferConditions
	// EligibleAgents and UsedAgents apply to exclusive offers only.
	EligibleAgents []string
	UsedAgents     []string
	DiscountValue  Amount
}
