package response

import "time"

type AvailabilityResponse struct {
	LocationID     string   `json:"locationId"`
	AvailableDates []string `json:"availableDates"`
}

func FromAvailableDates(locationID string, dates []time.Time) *AvailabilityResponse {
	formatted := make([]string, len(dates))
	for i, d := range dates {
		formatted[i] = d.Format(time.DateOnly)
	}
	return &AvailabilityResponse{
		LocationID:     locationID,
		AvailableDates: formatted,
	}
}
