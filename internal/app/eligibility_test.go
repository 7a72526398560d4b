package app

import (
	"io"
	"log"
	"reflect"
	"testing"
	"time"

	"github.com/LushWare-Org/Travel-Agency-Management-System-sub004/internal/domain"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func intPtr(v int) *int { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func stayContext() domain.BookingContext {
	return domain.BookingContext{
		AttemptID: "attempt-1",
		HotelID:   "hotel-1",
		RoomID:    "room-1",
		CheckIn:   time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC),
		CheckOut:  time.Date(2025, 9, 18, 0, 0, 0, 0, time.UTC),
		Market:    "EU",
		User:      domain.User{ID: "user-1", Role: domain.RoleGuest},
		Nights:    3,
	}
}

func TestEvaluator_Eligible_SharedGates(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	eval := NewEvaluator(quietLogger())
	ctx := stayContext()
	history := domain.UserHistory{}

	base := domain.Offer{
		ID:     "offer-1",
		Type:   domain.DiscountPercentage,
		Active: true,
	}

	t.Run("inactive offer is never eligible", func(t *testing.T) {
		offer := base
		offer.Active = false
		offer.Conditions = &domain.OfferConditions{IsDefault: true}
		if eval.Eligible(offer, ctx, history, now) {
			t.Fatalf("expected inactive offer to be ineligible")
		}
	})

	t.Run("validity window bounds now", func(t *testing.T) {
		offer := base
		offer.ValidFrom = timePtr(now.Add(time.Hour))
		if eval.Eligible(offer, ctx, history, now) {
			t.Fatalf("expected offer before validFrom to be ineligible")
		}

		offer = base
		offer.ValidTo = timePtr(now.Add(-time.Hour))
		if eval.Eligible(offer, ctx, history, now) {
			t.Fatalf("expected offer after validTo to be ineligible")
		}

		offer = base
		offer.ValidFrom = timePtr(now)
		offer.ValidTo = timePtr(now)
		if !eval.Eligible(offer, ctx, history, now) {
			t.Fatalf("expected inclusive window boundaries to be eligible")
		}
	})

	t.Run("hotel allow-list", func(t *testing.T) {
		offer := base
		offer.ApplicableHotels = []string{"hotel-2", "hotel-3"}
		if eval.Eligible(offer, ctx, history, now) {
			t.Fatalf("expected offer for other hotels to be ineligible")
		}
		offer.ApplicableHotels = append(offer.ApplicableHotels, "hotel-1")
		if !eval.Eligible(offer, ctx, history, now) {
			t.Fatalf("expected listed hotel to be eligible")
		}
	})

	t.Run("empty hotel list means all hotels", func(t *testing.T) {
		if !eval.Eligible(base, ctx, history, now) {
			t.Fatalf("expected offer without hotel list to be eligible")
		}
	})

	t.Run("stay must lie fully inside stay period", func(t *testing.T) {
		offer := base
		offer.Conditions = &domain.OfferConditions{
			StayPeriod: &domain.DateWindow{
				Start: timePtr(time.Date(2025, 9, 16, 0, 0, 0, 0, time.UTC)),
			},
		}
		if eval.Eligible(offer, ctx, history, now) {
			t.Fatalf("expected check-in before stay period start to be ineligible")
		}

		offer.Conditions = &domain.OfferConditions{
			StayPeriod: &domain.DateWindow{
				End: timePtr(time.Date(2025, 9, 17, 0, 0, 0, 0, time.UTC)),
			},
		}
		if eval.Eligible(offer, ctx, history, now) {
			t.Fatalf("expected check-out after stay period end to be ineligible")
		}

		offer.Conditions = &domain.OfferConditions{
			StayPeriod: &domain.DateWindow{
				Start: timePtr(time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)),
				End:   timePtr(time.Date(2025, 9, 18, 0, 0, 0, 0, time.UTC)),
			},
		}
		if !eval.Eligible(offer, ctx, history, now) {
			t.Fatalf("expected stay inside period to be eligible")
		}
	})

	t.Run("booking window bounds now, open sides ignored", func(t *testing.T) {
		offer := base
		offer.Conditions = &domain.OfferConditions{
			BookingWindow: &domain.DateWindow{Start: timePtr(now.Add(time.Minute))},
		}
		if eval.Eligible(offer, ctx, history, now) {
			t.Fatalf("expected booking before window start to be ineligible")
		}

		offer.Conditions = &domain.OfferConditions{
			BookingWindow: &domain.DateWindow{End: timePtr(now.Add(-time.Minute))},
		}
		if eval.Eligible(offer, ctx, history, now) {
			t.Fatalf("expected booking after window end to be ineligible")
		}

		offer.Conditions = &domain.OfferConditions{
			BookingWindow: &domain.DateWindow{End: timePtr(now.Add(time.Hour))},
		}
		if !eval.Eligible(offer, ctx, history, now) {
			t.Fatalf("expected open start side to be ignored")
		}
	})

	t.Run("minimum nights", func(t *testing.T) {
		offer := base
		offer.Conditions = &domain.OfferConditions{MinNights: intPtr(4)}
		if eval.Eligible(offer, ctx, history, now) {
			t.Fatalf("expected 3-night stay to miss minNights 4")
		}
		offer.Conditions = &domain.OfferConditions{MinNights: intPtr(3)}
		if !eval.Eligible(offer, ctx, history, now) {
			t.Fatalf("expected 3-night stay to meet minNights 3")
		}
	})

	t.Run("unknown discount type is inert", func(t *testing.T) {
		offer := base
		offer.Type = "mystery"
		if eval.Eligible(offer, ctx, history, now) {
			t.Fatalf("expected unknown type to be ineligible")
		}
	})

	t.Run("nil conditions pass every conditional gate", func(t *testing.T) {
		offer := base
		offer.Conditions = nil
		if !eval.Eligible(offer, ctx, history, now) {
			t.Fatalf("expected percentage offer without conditions to be eligible")
		}
	})
}

func TestEvaluator_Eligible_ExclusiveRule(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	eval := NewEvaluator(quietLogger())

	agentCtx := stayContext()
	agentCtx.User = domain.User{ID: "agent-7", Role: domain.RoleAgent}

	offer := domain.Offer{
		ID:             "excl-1",
		Type:           domain.DiscountExclusive,
		Active:         true,
		EligibleAgents: []string{"agent-7", "agent-9"},
		UsedAgents:     []string{"agent-9"},
		Conditions:     &domain.OfferConditions{MinBookings: intPtr(3)},
	}
	history := domain.UserHistory{Count: 5}

	t.Run("all conditions met", func(t *testing.T) {
		if !eval.Eligible(offer, agentCtx, history, now) {
			t.Fatalf("expected eligible exclusive offer")
		}
	})

	t.Run("admin role also qualifies", func(t *testing.T) {
		ctx := agentCtx
		ctx.User.Role = domain.RoleAdmin
		if !eval.Eligible(offer, ctx, history, now) {
			t.Fatalf("expected admin to qualify")
		}
	})

	t.Run("guest role disqualifies", func(t *testing.T) {
		ctx := agentCtx
		ctx.User.Role = domain.RoleGuest
		if eval.Eligible(offer, ctx, history, now) {
			t.Fatalf("expected guest to be ineligible")
		}
	})

	t.Run("not on allow-list disqualifies", func(t *testing.T) {
		ctx := agentCtx
		ctx.User.ID = "agent-8"
		if eval.Eligible(offer, ctx, history, now) {
			t.Fatalf("expected unlisted agent to be ineligible")
		}
	})

	t.Run("already used disqualifies", func(t *testing.T) {
		used := offer
		used.UsedAgents = []string{"agent-7"}
		if eval.Eligible(used, agentCtx, history, now) {
			t.Fatalf("expected used agent to be ineligible")
		}
	})

	t.Run("insufficient booking history disqualifies", func(t *testing.T) {
		if eval.Eligible(offer, agentCtx, domain.UserHistory{Count: 2}, now) {
			t.Fatalf("expected history below minBookings to be ineligible")
		}
	})

	t.Run("no minBookings means no history requirement", func(t *testing.T) {
		relaxed := offer
		relaxed.Conditions = nil
		if !eval.Eligible(relaxed, agentCtx, domain.UserHistory{Count: 0}, now) {
			t.Fatalf("expected missing minBookings to pass")
		}
	})
}

func TestEvaluator_Eligible_TypeRules(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	eval := NewEvaluator(quietLogger())
	ctx := stayContext()
	history := domain.UserHistory{}

	t.Run("transportation defaults to five nights", func(t *testing.T) {
		offer := domain.Offer{ID: "t-1", Type: domain.DiscountTransportation, Active: true}
		if eval.Eligible(offer, ctx, history, now) {
			t.Fatalf("expected 3-night stay to miss the 5-night default")
		}

		long := ctx
		long.Nights = 5
		if !eval.Eligible(offer, long, history, now) {
			t.Fatalf("expected 5-night stay to qualify")
		}
	})

	t.Run("transportation honors minStayDays", func(t *testing.T) {
		offer := domain.Offer{
			ID:         "t-2",
			Type:       domain.DiscountTransportation,
			Active:     true,
			Conditions: &domain.OfferConditions{MinStayDays: intPtr(2)},
		}
		if !eval.Eligible(offer, ctx, history, now) {
			t.Fatalf("expected 3-night stay to meet minStayDays 2")
		}
	})

	t.Run("seasonal requires matching month", func(t *testing.T) {
		offer := domain.Offer{
			ID:         "s-1",
			Type:       domain.DiscountSeasonal,
			Active:     true,
			Conditions: &domain.OfferConditions{SeasonalMonths: []time.Month{time.June, time.July}},
		}
		if eval.Eligible(offer, ctx, history, now) {
			t.Fatalf("expected September booking to miss summer months")
		}

		offer.Conditions.SeasonalMonths = append(offer.Conditions.SeasonalMonths, time.September)
		if !eval.Eligible(offer, ctx, history, now) {
			t.Fatalf("expected September to match")
		}
	})

	t.Run("seasonal without months always matches", func(t *testing.T) {
		offer := domain.Offer{ID: "s-2", Type: domain.DiscountSeasonal, Active: true}
		if !eval.Eligible(offer, ctx, history, now) {
			t.Fatalf("expected unconstrained seasonal offer to be eligible")
		}
	})

	t.Run("libert requires isDefault", func(t *testing.T) {
		offer := domain.Offer{ID: "l-1", Type: domain.DiscountLibert, Active: true}
		if eval.Eligible(offer, ctx, history, now) {
			t.Fatalf("expected libert without isDefault to be ineligible")
		}
		offer.Conditions = &domain.OfferConditions{IsDefault: true}
		if !eval.Eligible(offer, ctx, history, now) {
			t.Fatalf("expected default libert to be eligible")
		}
	})
}

func TestEvaluator_Filter_Idempotent(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	eval := NewEvaluator(quietLogger())
	ctx := stayContext()
	history := domain.UserHistory{}

	offers := []domain.Offer{
		{ID: "a", Type: domain.DiscountPercentage, Active: true},
		{ID: "b", Type: domain.DiscountSeasonal, Active: true},
		{ID: "c", Type: domain.DiscountPercentage, Active: false},
		{ID: "d", Type: "mystery", Active: true},
	}

	first := eval.Filter(offers, ctx, history, now)
	second := eval.Filter(offers, ctx, history, now)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical output on re-run, got %+v vs %+v", first, second)
	}
	if len(first) != 2 || first[0].ID != "a" || first[1].ID != "b" {
		t.Fatalf("expected catalog-ordered [a b], got %+v", first)
	}
}
