package app

import (
	"log"
	"time"

	"github.com/LushWare-Org/Travel-Agency-Management-System-sub004/internal/domain"
)

// Evaluator decides whether a single offer applies to a prospective stay.
// It is a pure predicate over its inputs; the current instant is always
// passed in explicitly.
type Evaluator struct {
	logger *log.Logger
}

func NewEvaluator(logger *log.Logger) *Evaluator {
	if logger == nil {
		logger = log.Default()
	}
	return &Evaluator{logger: logger}
}

// rule is the discount-type-specific eligibility check, run after the shared
// gates have passed. The dispatch table is the closed set of known types;
// anything outside it is ineligible.
type rule func(offer domain.Offer, ctx domain.BookingContext, history domain.UserHistory, now time.Time) bool

var typeRules = map[domain.DiscountType]rule{
	domain.DiscountExclusive:      exclusiveRule,
	domain.DiscountTransportation: transportationRule,
	domain.DiscountSeasonal:       seasonalRule,
	domain.DiscountPercentage:     percentageRule,
	domain.DiscountLibert:         libertRule,
}

// Eligible reports whether the offer applies to the stay. Checks short-circuit
// in a fixed order: active flag, offer validity window, hotel allow-list, stay
// period, booking window, minimum nights, then the per-type rule. It never
// fails: a record it cannot evaluate is simply ineligible.
func (e *Evaluator) Eligible(offer domain.Offer, ctx domain.BookingContext, history domain.UserHistory, now time.Time) bool {
	if !offer.Active {
		return false
	}
	if offer.ValidFrom != nil && now.Before(*offer.ValidFrom) {
		return false
	}
	if offer.ValidTo != nil && now.After(*offer.ValidTo) {
		return false
	}
	if len(offer.ApplicableHotels) > 0 && !contains(offer.ApplicableHotels, ctx.HotelID) {
		return false
	}

	cond := offer.Conditions
	if cond != nil {
		if sp := cond.StayPeriod; sp != nil {
			// The stay must lie fully inside the window.
			if sp.Start != nil && ctx.CheckIn.Before(*sp.Start) {
				return false
			}
			if sp.End != nil && ctx.CheckOut.After(*sp.End) {
				return false
			}
		}
		if bw := cond.BookingWindow; bw != nil {
			if bw.Start != nil && now.Before(*bw.Start) {
				return false
			}
			if bw.End != nil && now.After(*bw.End) {
				return false
			}
		}
		if cond.MinNights != nil && ctx.Nights < *cond.MinNights {
			return false
		}
	}

	typeRule, ok := typeRules[offer.Type]
	if !ok {
		// Catalog hygiene: unknown tags are inert, not errors.
		e.logger.Printf("offer %s has unrecognized discount type %q, skipping", offer.ID, offer.Type)
		return false
	}
	return typeRule(offer, ctx, history, now)
}

func exclusiveRule(offer domain.Offer, ctx domain.BookingContext, history domain.UserHistory, _ time.Time) bool {
	if ctx.User.Role != domain.RoleAgent && ctx.User.Role != domain.RoleAdmin {
		return false
	}
	if !contains(offer.EligibleAgents, ctx.User.ID) {
		return false
	}
	if contains(offer.UsedAgents, ctx.User.ID) {
		return false
	}
	if offer.Conditions != nil && offer.Conditions.MinBookings != nil && history.Count < *offer.Conditions.MinBookings {
		return false
	}
	return true
}

const defaultTransportationMinStay = 5

func transportationRule(offer domain.Offer, ctx domain.BookingContext, _ domain.UserHistory, _ time.Time) bool {
	minStay := defaultTransportationMinStay
	if offer.Conditions != nil && offer.Conditions.MinStayDays != nil {
		minStay = *offer.Conditions.MinStayDays
	}
	return ctx.Nights >= minStay
}

func seasonalRule(offer domain.Offer, _ domain.BookingContext, _ domain.UserHistory, now time.Time) bool {
	if offer.Conditions == nil || len(offer.Conditions.SeasonalMonths) == 0 {
		return true
	}
	month := now.Month()
	for _, m := range offer.Conditions.SeasonalMonths {
		if m == month {
			return true
		}
	}
	return false
}

func percentageRule(domain.Offer, domain.BookingContext, domain.UserHistory, time.Time) bool {
	return true
}

func libertRule(offer domain.Offer, _ domain.BookingContext, _ domain.UserHistory, _ time.Time) bool {
	return offer.Conditions != nil && offer.Conditions.IsDefault
}

// Filter returns the subset of offers eligible for the stay, preserving the
// catalog order.
func (e *Evaluator) Filter(offers []domain.Offer, ctx domain.BookingContext, history domain.UserHistory, now time.Time) []domain.Offer {
	eligible := make([]domain.Offer, 0, len(offers))
	for _, offer := range offers {
		if e.Eligible(offer, ctx, history, now) {
			eligible = append(eligible, offer)
		}
	}
	return eligible
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
