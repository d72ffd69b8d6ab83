// Package timetable holds the immutable set of scheduled trips the service
// answers queries against, plus loaders for the formats it can be built from.
package timetable

import "slices"

// Stop is one station call within a trip's route.
type Stop struct {
	StationName   string `json:"station"`
	DepartureTime string `json:"departureTime"`
}

// Trip is a single scheduled run. Its stops are in travel order.
type Trip struct {
	label string
	stops []Stop
}

// NewTrip builds a trip from a copy of stops.
func NewTrip(label string, stops []Stop) Trip {
	return Trip{label: label, stops: slices.Clone(stops)}
}

// Label identifies the trip (platform, service code, trip id...).
func (t Trip) Label() string {
	return t.label
}

// Len is the number of stops in the route.
func (t Trip) Len() int {
	return len(t.stops)
}

// Stop returns the i-th stop of the route.
func (t Trip) Stop(i int) Stop {
	return t.stops[i]
}

// StationNames returns the route's station names in travel order. The slice
// is freshly allocated and owned by the caller.
func (t Trip) StationNames() []string {
	names := make([]string, len(t.stops))
	for i, stop := range t.stops {
		names[i] = stop.StationName
	}
	return names
}

// Timetable is an ordered, read-only collection of trips. It is safe for
// concurrent use because nothing can modify it after New returns.
type Timetable struct {
	trips    []Trip
	stations []string
}

// New builds a timetable from trips, preserving their order.
func New(trips []Trip) *Timetable {
	tt := &Timetable{trips: slices.Clone(trips)}

	seen := make(map[string]struct{})
	for _, trip := range tt.trips {
		for _, stop := range trip.stops {
			if _, ok := seen[stop.StationName]; ok || stop.StationName == "" {
				continue
			}
			seen[stop.StationName] = struct{}{}
			tt.stations = append(tt.stations, stop.StationName)
		}
	}
	return tt
}

// Len is the number of trips.
func (tt *Timetable) Len() int {
	return len(tt.trips)
}

// Trip returns the i-th trip in load order.
func (tt *Timetable) Trip(i int) Trip {
	return tt.trips[i]
}

// Stations lists distinct station names in first-seen order.
func (tt *Timetable) Stations() []string {
	return slices.Clone(tt.stations)
}
