package api

import (
	"turnero/internal/db"
	"turnero/internal/entities"
)

type ProviderRequest struct {
	Name string `json:"name"`
}

type ClientRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ProviderResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type ClientResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func availabilityResponse(a *db.Availability) entities.AvailabilityResponse {
	return entities.AvailabilityResponse{
		ID:         a.ID,
		ProviderID: a.ProviderID,
		Date:       a.Date,
		StartTime:  a.StartTime,
		EndTime:    a.EndTime,
	}
}

func reservationResponse(res *db.Reservation) entities.ReservationResponse {
	return entities.ReservationResponse{
		ID:         res.ID,
		ProviderID: res.ProviderID,
		ClientID:   res.ClientID,
		Date:       res.Date,
		TimeSlot:   res.TimeSlot,
		Confirmed:  res.Confirmed,
		CreatedAt:  res.CreatedAt,
	}
}
