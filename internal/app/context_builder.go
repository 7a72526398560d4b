package app

import (
	"fmt"
	"time"

	"github.com/LushWare-Org/Travel-Agency-Management-System-sub004/internal/domain"
	"github.com/google/uuid"
)

// StayInput carries the raw navigation values for one booking attempt.
// Dates arrive as strings and may be malformed.
type StayInput struct {
	HotelID  string
	RoomID   string
	CheckIn  string
	CheckOut string
	Market   string
	User     domain.User
	// QuotedPrice is the nightly price quoted upstream, which may or may not
	// already embed the market markup. Nil falls back to the room's listed
	// base price.
	QuotedPrice *float64
}

// dateLayouts are tried in order when parsing check-in/check-out values.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"02/01/2006",
}

// BuildContext validates the raw stay input and assembles the immutable
// booking context. On any error no context is produced; the caller must
// redirect rather than proceed with partial data.
func BuildContext(in StayInput) (domain.BookingContext, error) {
	if in.HotelID == "" || in.RoomID == "" {
		return domain.BookingContext{}, domain.ErrMissingIdentifiers
	}

	checkIn, err := parseDate(in.CheckIn)
	if err != nil {
		return domain.BookingContext{}, fmt.Errorf("check-in %q: %w", in.CheckIn, err)
	}
	checkOut, err := parseDate(in.CheckOut)
	if err != nil {
		return domain.BookingContext{}, fmt.Errorf("check-out %q: %w", in.CheckOut, err)
	}
	if !checkIn.Before(checkOut) {
		return domain.BookingContext{}, domain.ErrDateRange
	}

	return domain.BookingContext{
		AttemptID: uuid.NewString(),
		HotelID:   in.HotelID,
		RoomID:    in.RoomID,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		Market:    in.Market,
		User:      in.User,
		Nights:    nightCount(checkIn, checkOut),
	}, nil
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, domain.ErrDateParse
}

// nightCount is ceil((checkOut - checkIn) / 24h).
func nightCount(checkIn, checkOut time.Time) int {
	d := checkOut.Sub(checkIn)
	nights := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		nights++
	}
	return nights
}
