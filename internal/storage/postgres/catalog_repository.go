package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/LushWare-Org/Travel-Agency-Management-System-sub004/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CatalogRepository serves the engine's read-side catalog: hotels, rooms with
// market pricing, the offer catalog, user profiles and booking counts. It is
// read-only; booking writes belong to the surrounding product.
type CatalogRepository struct {
	pool *pgxpool.Pool
}

func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

func (r *CatalogRepository) GetHotel(ctx context.Context, id string) (domain.Hotel, error) {
	const query = `SELECT id, name FROM hotels WHERE id = $1`
	var h domain.Hotel
	err := r.pool.QueryRow(ctx, query, id).Scan(&h.ID, &h.Name)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.Hotel{}, domain.ErrInvalidID
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Hotel{}, domain.ErrHotelNotFound
		}
		return domain.Hotel{}, fmt.Errorf("get hotel: %w", err)
	}
	return h, nil
}

func (r *CatalogRepository) GetRoom(ctx context.Context, hotelID, roomID string) (domain.Room, error) {
	const query = `SELECT id, hotel_id, name, base_price FROM rooms WHERE id = $1 AND hotel_id = $2`
	var (
		room      domain.Room
		basePrice *float64
	)
	err := r.pool.QueryRow(ctx, query, roomID, hotelID).Scan(&room.ID, &room.HotelID, &room.Name, &basePrice)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.Room{}, domain.ErrInvalidID
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Room{}, domain.ErrRoomNotFound
		}
		return domain.Room{}, fmt.Errorf("get room: %w", err)
	}
	if basePrice != nil {
		amount := domain.Amount(*basePrice)
		room.Pricing.BasePrice = &amount
	}

	const pricesQuery = `SELECT market, price FROM room_market_prices WHERE room_id = $1 ORDER BY market ASC`
	rows, err := r.pool.Query(ctx, pricesQuery, roomID)
	if err != nil {
		return domain.Room{}, fmt.Errorf("list market prices: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			market string
			price  float64
		)
		if err := rows.Scan(&market, &price); err != nil {
			return domain.Room{}, fmt.Errorf("scan market price: %w", err)
		}
		room.Pricing.MarketPrices = append(room.Pricing.MarketPrices, domain.MarketPrice{
			Market: market,
			Price:  domain.Amount(price),
		})
	}
	if rows.Err() != nil {
		return domain.Room{}, fmt.Errorf("iterate market prices: %w", rows.Err())
	}
	return room, nil
}

// ListOffers returns the whole offer catalog in insertion order. Rows with an
// unrecognized discount_type are passed through unfiltered; the evaluator
// treats them as ineligible.
func (r *CatalogRepository) ListOffers(ctx context.Context) ([]domain.Offer, error) {
	const query = `
SELECT id, name, discount_type, discount_value, active, valid_from, valid_to,
       applicable_hotels, conditions, eligible_agents, used_agents
FROM offers
ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	defer rows.Close()

	var offers []domain.Offer
	for rows.Next() {
		var (
			offer         domain.Offer
			discountValue float64
			conditions    []byte
		)
		if err := rows.Scan(
			&offer.ID,
			&offer.Name,
			&offer.Type,
			&discountValue,
			&offer.Active,
			&offer.ValidFrom,
			&offer.ValidTo,
			&offer.ApplicableHotels,
			&conditions,
			&offer.EligibleAgents,
			&offer.UsedAgents,
		); err != nil {
			return nil, fmt.Errorf("scan offer: %w", err)
		}
		offer.DiscountValue = domain.Amount(discountValue)
		if len(conditions) > 0 {
			var cond domain.OfferConditions
			if err := json.Unmarshal(conditions, &cond); err != nil {
				return nil, fmt.Errorf("decode conditions for offer %s: %w", offer.ID, err)
			}
			offer.Conditions = &cond
		}
		offers = append(offers, offer)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate offers: %w", rows.Err())
	}
	return offers, nil
}

func (r *CatalogRepository) GetUser(ctx context.Context, id string) (domain.User, error) {
	const query = `SELECT id, role FROM users WHERE id = $1`
	var u domain.User
	err := r.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Role)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.User{}, domain.ErrInvalidID
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (r *CatalogRepository) CountBookings(ctx context.Context, userID string) (int, error) {
	const query = `SELECT COUNT(*) FROM bookings WHERE user_id = $1`
	var count int
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		if isInvalidUUID(err) {
			return 0, domain.ErrInvalidID
		}
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return count, nil
}

func isInvalidUUID(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "22P02"
}
