package domain

import "time"

type Role string

const (
	RoleGuest Role = "guest"
	RoleAgent Role = "agent"
	RoleAdmin Role = "admin"
)

type User struct {
	ID   string
	Role Role
}

// UserHistory is the count of prior bookings by the current user. Only
// exclusive-offer conditions consult it.
type UserHistory struct {
	Count int
}

// BookingContext is the immutable snapshot of one booking attempt. It is
// created once per attempt and rebuilt only when the underlying navigation
// input changes.
type BookingContext struct {
	AttemptID string
	HotelID   string
	RoomID    string
	CheckIn   time.Time
	CheckOut  time.Time
	Market    string
	User      User
	Nights    int
}
