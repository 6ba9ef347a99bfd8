package db

import "time"

type Provider struct {
	ID   int
	Name string
}

type Client struct {
	ID    int
	Name  string
	Email string
}

// Availability is one provider-declared open window on a single date.
// Date is YYYY-MM-DD, times are HH:MM (24-hour). Windows are never merged;
// a provider may declare several for the same date.
type Availability struct {
	ID         int
	ProviderID int
	Date       string
	StartTime  string
	EndTime    string
}

// Reservation holds one 15-minute slot. While unconfirmed it only blocks
// the slot for the hold period. CreatedAt is assigned by the database.
type Reservation struct {
	ID         int
	ProviderID int
	ClientID   int
	Date       string
	TimeSlot   string
	Confirmed  bool
	CreatedAt  time.Time
}
