package entities

import "time"

type ReservationRequest struct {
	Date         string `json:"date"`
	TimeSlot     string `json:"timeSlot"`
	ProviderName string `json:"providerName"`
	ClientEmail  string `json:"clientEmail"`
}

type ReservationResponse struct {
	ID         int       `json:"id"`
	ProviderID int       `json:"provider_id"`
	ClientID   int       `json:"client_id"`
	Date       string    `json:"date"`
	TimeSlot   string    `json:"timeSlot"`
	Confirmed  bool      `json:"confirmed"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ReservationListItem is the admin listing shape, joined with the
// provider and client identities.
type ReservationListItem struct {
	ID           int       `json:"id"`
	ProviderName string    `json:"providerName"`
	ClientEmail  string    `json:"clientEmail"`
	Date         string    `json:"date"`
	TimeSlot     string    `json:"timeSlot"`
	Confirmed    bool      `json:"confirmed"`
	CreatedAt    time.Time `json:"createdAt"`
}
