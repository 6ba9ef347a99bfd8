package entities

type AvailabilityRequest struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type AvailabilityResponse struct {
	ID         int    `json:"id"`
	ProviderID int    `json:"provider_id"`
	Date       string `json:"date"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
}

// AvailableSlot is one bookable 15-minute slot. Label is positional in
// emission order (slot1, slot2, ...), not a stable identifier.
type AvailableSlot struct {
	Label string `json:"label"`
	Slot  string `json:"slot"`
}
