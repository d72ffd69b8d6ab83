package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTripCopiesStops(t *testing.T) {
	stops := []Stop{{StationName: "Atocha", DepartureTime: "08:00"}}
	trip := NewTrip("P1", stops)

	stops[0].StationName = "Sol"

	assert.Equal(t, "Atocha", trip.Stop(0).StationName)
	assert.Equal(t, "P1", trip.Label())
	assert.Equal(t, 1, trip.Len())
}

func TestStationNamesIsOwnedByCaller(t *testing.T) {
	trip := NewTrip("P1", []Stop{
		{StationName: "Atocha", DepartureTime: "08:00"},
		{StationName: "Sol", DepartureTime: "08:05"},
	})

	names := trip.StationNames()
	require.Equal(t, []string{"Atocha", "Sol"}, names)

	names[0] = "changed"
	assert.Equal(t, []string{"Atocha", "Sol"}, trip.StationNames())
}

func TestTimetableStations(t *testing.T) {
	tt := New([]Trip{
		NewTrip("P1", []Stop{{StationName: "A"}, {StationName: "B"}, {StationName: "C"}}),
		NewTrip("P2", []Stop{{StationName: "C"}, {StationName: ""}, {StationName: "D"}, {StationName: "A"}}),
	})

	assert.Equal(t, 2, tt.Len())
	assert.Equal(t, "P2", tt.Trip(1).Label())
	assert.Equal(t, []string{"A", "B", "C", "D"}, tt.Stations())

	stations := tt.Stations()
	stations[0] = "changed"
	assert.Equal(t, "A", tt.Stations()[0])
}

func TestEmptyTimetable(t *testing.T) {
	tt := New(nil)
	assert.Equal(t, 0, tt.Len())
	assert.Empty(t, tt.Stations())
}
