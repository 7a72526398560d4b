package domain

// PassengerRecord holds the travel details entered for one adult slot.
type PassengerRecord struct {
	Name            string
	Passport        string
	Country         string
	ArrivalFlight   string
	ArrivalTime     string
	DepartureFlight string
	DepartureTime   string
}

// ChildPassengerRecord holds the travel details entered for one child slot.
// A parallel age sequence is kept alongside the child roster.
type ChildPassengerRecord struct {
	Name            string
	Passport        string
	Country         string
	ArrivalFlight   string
	ArrivalTime     string
	DepartureFlight string
	DepartureTime   string
}
