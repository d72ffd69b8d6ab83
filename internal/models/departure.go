package models

import "nexttrain.org/internal/itinerary"

// DepartureEntry is the API view of a resolved departure.
type DepartureEntry struct {
	Label                 string `json:"label"`
	DepartureTime         string `json:"departureTime"`
	Origin                string `json:"origin"`
	Destination           string `json:"destination"`
	ReferenceTime         string `json:"referenceTime"`
	MinutesUntilDeparture int    `json:"minutesUntilDeparture"`
}

func NewDepartureEntry(result itinerary.Result) DepartureEntry {
	return DepartureEntry{
		Label:                 result.Label,
		DepartureTime:         result.DepartureTime,
		Origin:                result.Origin,
		Destination:           result.Destination,
		ReferenceTime:         result.ReferenceTime,
		MinutesUntilDeparture: result.MinutesUntilDeparture,
	}
}

// NewDepartureList converts results in order.
func NewDepartureList(results []itinerary.Result) []DepartureEntry {
	entries := make([]DepartureEntry, len(results))
	for i, r := range results {
		entries[i] = NewDepartureEntry(r)
	}
	return entries
}
