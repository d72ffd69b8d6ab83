// Package itinerary finds the soonest trip that runs from one station to
// another after a reference time.
package itinerary

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"nexttrain.org/internal/matcher"
	"nexttrain.org/internal/normalize"
	"nexttrain.org/internal/timetable"
)

// Departure is a trip that serves origin before destination.
type Departure struct {
	Label            string
	DepartureTime    string
	DepartureMinutes int
	Origin           string
	Destination      string
}

// Result is a departure relative to the reference time it was searched from.
type Result struct {
	Departure
	ReferenceTime         string
	MinutesUntilDeparture int
}

// NoTripError reports that no trip connects the stations after ReferenceTime.
type NoTripError struct {
	ReferenceTime string
}

func (e *NoTripError) Error() string {
	return fmt.Sprintf("no valid trip found after %s", e.ReferenceTime)
}

// IsNotFound reports whether err is a *NoTripError.
func IsNotFound(err error) bool {
	var notFound *NoTripError
	return errors.As(err, &notFound)
}

// Resolver answers next-departure queries against a fixed timetable. It holds
// no mutable state and may be shared between goroutines.
type Resolver struct {
	timetable *timetable.Timetable
}

// NewResolver panics if tt is nil.
func NewResolver(tt *timetable.Timetable) *Resolver {
	if tt == nil {
		panic("itinerary: NewResolver called with nil timetable")
	}
	return &Resolver{timetable: tt}
}

// NextDeparture returns the soonest departure from origin to destination at or
// after referenceMinutes. Trips departing at the same minute keep timetable order.
func (r *Resolver) NextDeparture(origin, destination string, referenceMinutes int) (Result, error) {
	results, err := r.Departures(origin, destination, referenceMinutes, 1)
	if err != nil {
		return Result{}, err
	}
	return results[0], nil
}

// Departures returns up to limit departures ordered by departure time. A limit
// of zero or less returns all of them.
func (r *Resolver) Departures(origin, destination string, referenceMinutes, limit int) ([]Result, error) {
	candidates := r.scan(normalize.Normalize(origin), normalize.Normalize(destination), referenceMinutes)
	referenceTime := FormatMinutes(referenceMinutes)
	if len(candidates) == 0 {
		return nil, &NoTripError{ReferenceTime: referenceTime}
	}

	slices.SortStableFunc(candidates, func(a, b Departure) int {
		return cmp.Compare(a.DepartureMinutes, b.DepartureMinutes)
	})
	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}

	results := make([]Result, len(candidates))
	for i, c := range candidates {
		results[i] = Result{
			Departure:             c,
			ReferenceTime:         referenceTime,
			MinutesUntilDeparture: c.DepartureMinutes - referenceMinutes,
		}
	}
	return results, nil
}

// scan walks every trip in timetable order and collects those that pass
// through both stations in travel order at or after the reference time.
func (r *Resolver) scan(origin, destination string, referenceMinutes int) []Departure {
	var candidates []Departure
	for i := 0; i < r.timetable.Len(); i++ {
		trip := r.timetable.Trip(i)
		if d, ok := departureFor(trip, origin, destination, referenceMinutes); ok {
			candidates = append(candidates, d)
		}
	}
	return candidates
}

func departureFor(trip timetable.Trip, origin, destination string, referenceMinutes int) (Departure, bool) {
	stations := trip.StationNames()

	originName, ok := matcher.ResolveNormalized(origin, stations)
	if !ok {
		return Departure{}, false
	}
	destinationName, ok := matcher.ResolveNormalized(destination, stations)
	if !ok {
		return Departure{}, false
	}

	originIdx := slices.Index(stations, originName)
	destinationIdx := slices.Index(stations, destinationName)
	if originIdx < 0 || destinationIdx < 0 || originIdx >= destinationIdx {
		return Departure{}, false
	}

	departureTime := trip.Stop(originIdx).DepartureTime
	minutes, ok := ParseMinutes(departureTime)
	if !ok || minutes < referenceMinutes {
		return Departure{}, false
	}

	return Departure{
		Label:            trip.Label(),
		DepartureTime:    departureTime,
		DepartureMinutes: minutes,
		Origin:           originName,
		Destination:      destinationName,
	}, true
}
