package app

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/LushWare-Org/Travel-Agency-Management-System-sub004/internal/clock"
	"github.com/LushWare-Org/Travel-Agency-Management-System-sub004/internal/domain"
	"golang.org/x/sync/errgroup"
)

// CatalogReader is the external data-access collaborator feeding the engine.
// Each method is one logical read; implementations do not filter offers by
// discount type, unknown tags are passed through and rejected downstream.
type CatalogReader interface {
	GetHotel(ctx context.Context, id string) (domain.Hotel, error)
	GetRoom(ctx context.Context, hotelID, roomID string) (domain.Room, error)
	ListOffers(ctx context.Context) ([]domain.Offer, error)
	GetUser(ctx context.Context, id string) (domain.User, error)
	CountBookings(ctx context.Context, userID string) (int, error)
}

// Quote is what the engine emits to the booking flow: the ranked offer
// partitions and the per-night market surcharge, as plain data.
type Quote struct {
	Context   domain.BookingContext
	Hotel     domain.Hotel
	Room      domain.Room
	Offers    RankedOffers
	Surcharge float64
}

type snapshot struct {
	bctx        domain.BookingContext
	hotel       domain.Hotel
	room        domain.Room
	offers      []domain.Offer
	history     domain.UserHistory
	quotedPrice *float64
	quote       *Quote
}

// Session owns the state of one booking flow. All engine computations are
// pure functions of the snapshot; the session only sequences fetches and
// republishes results when inputs change.
type Session struct {
	catalog   CatalogReader
	clock     clock.Clock
	evaluator *Evaluator
	logger    *log.Logger

	mu       sync.Mutex
	gen      uint64
	loading  bool
	fetchErr error
	snap     *snapshot

	adults       []domain.PassengerRecord
	children     []domain.ChildPassengerRecord
	childrenAges []int
}

func NewSession(catalog CatalogReader, clk clock.Clock, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.Default()
	}
	return &Session{
		catalog:   catalog,
		clock:     clk,
		evaluator: NewEvaluator(logger),
		logger:    logger,
	}
}

// Begin starts a new booking attempt: it builds the context from the raw
// input, fans out the catalog reads, and publishes the computed quote.
// Context-build errors are fatal to the attempt and returned immediately; the
// caller must redirect rather than proceed with partial data. Fetch failures
// are not returned here, they are recorded as the session's error state.
//
// A Begin that has been superseded by a newer one discards its result
// (last-write-wins); the stale call reports nothing.
func (s *Session) Begin(ctx context.Context, in StayInput) error {
	bctx, err := BuildContext(in)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.loading = true
	s.fetchErr = nil
	s.mu.Unlock()

	var (
		hotel   domain.Hotel
		room    domain.Room
		offers  []domain.Offer
		user    domain.User
		history domain.UserHistory
	)

	// Fan-out: the five reads are independent and each writes a disjoint
	// variable, so no lock is needed until publication.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		if hotel, err = s.catalog.GetHotel(gctx, bctx.HotelID); err != nil {
			return fmt.Errorf("fetch hotel %s: %w", bctx.HotelID, err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if room, err = s.catalog.GetRoom(gctx, bctx.HotelID, bctx.RoomID); err != nil {
			return fmt.Errorf("fetch room %s: %w", bctx.RoomID, err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if offers, err = s.catalog.ListOffers(gctx); err != nil {
			return fmt.Errorf("fetch offer catalog: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if user, err = s.catalog.GetUser(gctx, bctx.User.ID); err != nil {
			return fmt.Errorf("fetch user %s: %w", bctx.User.ID, err)
		}
		return nil
	})
	g.Go(func() error {
		count, err := s.catalog.CountBookings(gctx, bctx.User.ID)
		if err != nil {
			return fmt.Errorf("fetch booking history for %s: %w", bctx.User.ID, err)
		}
		history = domain.UserHistory{Count: count}
		return nil
	})
	fetchErr := g.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		// A newer attempt superseded this one while it was fetching.
		return nil
	}
	s.loading = false
	if fetchErr != nil {
		s.fetchErr = fetchErr
		s.snap = nil
		s.logger.Printf("booking attempt %s: %v", bctx.AttemptID, fetchErr)
		return nil
	}

	// The catalog may carry a fresher role than the navigation input.
	bctx.User = user

	snap := &snapshot{
		bctx:        bctx,
		hotel:       hotel,
		room:        room,
		offers:      offers,
		history:     history,
		quotedPrice: in.QuotedPrice,
	}
	snap.quote = s.computeQuote(snap)
	s.snap = snap
	return nil
}

// computeQuote runs the pure pipeline over a complete snapshot. It is only
// invoked once both the offer catalog and the dated context are present, so
// a partial ranking can never be published.
func (s *Session) computeQuote(snap *snapshot) *Quote {
	now := s.clock.Now()
	eligible := s.evaluator.Filter(snap.offers, snap.bctx, snap.history, now)
	quoted := basePriceOf(snap.room)
	if snap.quotedPrice != nil {
		quoted = *snap.quotedPrice
	}
	return &Quote{
		Context:   snap.bctx,
		Hotel:     snap.hotel,
		Room:      snap.room,
		Offers:    Rank(eligible),
		Surcharge: MarketSurcharge(snap.room.Pricing, snap.bctx.Market, quoted),
	}
}

func basePriceOf(room domain.Room) float64 {
	if room.Pricing.BasePrice == nil {
		return 0
	}
	return float64(*room.Pricing.BasePrice)
}

// Quote returns the current quote. ok is false while loading, after a fetch
// failure, or before any attempt has begun.
func (s *Session) Quote() (Quote, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap == nil || s.snap.quote == nil {
		return Quote{}, false
	}
	return *s.snap.quote, true
}

// Err returns the recorded fetch failure, if any. The engine does not retry
// silently; the caller decides when to begin a new attempt.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetchErr
}

// Loading reports whether a fetch fan-out is still in flight.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// SetPartySize reconciles both passenger rosters against new adult/child
// counts, preserving already-entered records by position.
func (s *Session) SetPartySize(adults, children int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.adults = ReconcileAdults(s.adults, adults)
	s.children, s.childrenAges = ReconcileChildren(s.children, s.childrenAges, children)
}

// UpdateAdult stores entered details for one adult slot.
func (s *Session) UpdateAdult(index int, record domain.PassengerRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index >= 0 && index < len(s.adults) {
		s.adults[index] = record
	}
}

// UpdateChild stores entered details and age for one child slot.
func (s *Session) UpdateChild(index int, record domain.ChildPassengerRecord, age int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index >= 0 && index < len(s.children) {
		s.children[index] = record
		s.childrenAges[index] = age
	}
}

// Adults returns a copy of the adult roster.
func (s *Session) Adults() []domain.PassengerRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.PassengerRecord{}, s.adults...)
}

// Children returns copies of the child roster and its age sequence.
func (s *Session) Children() ([]domain.ChildPassengerRecord, []int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.ChildPassengerRecord{}, s.children...),
		append([]int{}, s.childrenAges...)
}
