package timetable

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMissingTrips is returned when a JSON timetable has no "Viajes" list.
var ErrMissingTrips = errors.New(`timetable document has no "Viajes" list`)

type jsonDocument struct {
	Trips *[]jsonTrip `json:"Viajes"`
}

type jsonTrip struct {
	Label json.RawMessage `json:"Parada"`
	Route []jsonStop      `json:"Ruta"`
}

type jsonStop struct {
	Station json.RawMessage `json:"Estacion"`
	Time    json.RawMessage `json:"Hora"`
}

// ParseJSON decodes a timetable document of the form
//
//	{"Viajes": [{"Parada": "P1", "Ruta": [{"Estacion": "Atocha", "Hora": "08:00"}]}]}
//
// Scalar fields may be strings or numbers. Values are not validated here;
// garbled times are dealt with per trip at query time.
func ParseJSON(data []byte) (*Timetable, error) {
	var doc jsonDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error decoding JSON timetable: %w", err)
	}
	if doc.Trips == nil {
		return nil, ErrMissingTrips
	}

	trips := make([]Trip, 0, len(*doc.Trips))
	for _, jt := range *doc.Trips {
		stops := make([]Stop, 0, len(jt.Route))
		for _, js := range jt.Route {
			stops = append(stops, Stop{
				StationName:   rawText(js.Station),
				DepartureTime: rawText(js.Time),
			})
		}
		trips = append(trips, Trip{label: rawText(jt.Label), stops: stops})
	}
	return New(trips), nil
}

// rawText renders a JSON scalar as plain text: strings are unquoted, null and
// absent values become "", anything else keeps its literal form.
func rawText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return string(raw)
}
