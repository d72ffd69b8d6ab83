package timetable

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/jamespfennell/gtfs"
)

// ParseGTFS builds a timetable from a static GTFS zip archive. Every scheduled
// trip becomes a Trip labelled with its trip_id, stops ordered by
// stop_sequence and departures rendered as HH:MM:SS.
func ParseGTFS(data []byte) (*Timetable, error) {
	staticData, err := gtfs.ParseStatic(data, gtfs.ParseStaticOptions{})
	if err != nil {
		return nil, fmt.Errorf("error parsing GTFS data: %w", err)
	}

	trips := make([]Trip, 0, len(staticData.Trips))
	for _, scheduled := range staticData.Trips {
		stopTimes := slices.Clone(scheduled.StopTimes)
		slices.SortStableFunc(stopTimes, func(a, b gtfs.ScheduledStopTime) int {
			return cmp.Compare(a.StopSequence, b.StopSequence)
		})

		stops := make([]Stop, 0, len(stopTimes))
		for _, st := range stopTimes {
			var name string
			if st.Stop != nil {
				name = st.Stop.Name
			}
			stops = append(stops, Stop{
				StationName:   name,
				DepartureTime: formatServiceTime(st.DepartureTime),
			})
		}
		trips = append(trips, Trip{label: scheduled.ID, stops: stops})
	}
	return New(trips), nil
}

// formatServiceTime renders an offset from the start of the service day.
// Hours are not wrapped, so trips running past midnight read "25:10:00".
func formatServiceTime(d time.Duration) string {
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
