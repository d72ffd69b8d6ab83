package models

import (
	"time"

	"nexttrain.org/internal/clock"
	"nexttrain.org/internal/itinerary"
)

// CurrentTimeModel is the reference clock as seen by departure lookups.
type CurrentTimeModel struct {
	ReadableTime         string `json:"readableTime"`
	Time                 int64  `json:"time"`
	Timezone             string `json:"timezone"`
	ReferenceTime        string `json:"referenceTime"`
	MinutesSinceMidnight int    `json:"minutesSinceMidnight"`
}

// NewCurrentTimeModel describes t in the civil zone loc.
func NewCurrentTimeModel(t time.Time, loc *time.Location) CurrentTimeModel {
	local := t.In(loc)
	minutes := clock.MinutesSinceMidnight(local, loc)

	return CurrentTimeModel{
		ReadableTime:         local.Format(time.RFC3339),
		Time:                 t.UnixMilli(),
		Timezone:             loc.String(),
		ReferenceTime:        itinerary.FormatMinutes(minutes),
		MinutesSinceMidnight: minutes,
	}
}
