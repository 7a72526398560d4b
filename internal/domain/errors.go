package domain

import "errors"

var (
	ErrDateParse          = errors.New("date does not resolve to a valid calendar date")
	ErrDateRange          = errors.New("check-in must be before check-out")
	ErrMissingIdentifiers = errors.New("hotel and room identifiers are required")
	ErrHotelNotFound      = errors.New("hotel not found")
	ErrRoomNotFound       = errors.New("room not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidID          = errors.New("invalid id")
)
