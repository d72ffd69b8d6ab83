package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCurrentTimeModel(t *testing.T) {
	madrid, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	now := time.Date(2026, time.October, 17, 5, 42, 10, 0, time.UTC)
	model := NewCurrentTimeModel(now, madrid)

	assert.Equal(t, "2026-10-17T07:42:10+02:00", model.ReadableTime)
	assert.Equal(t, now.UnixMilli(), model.Time)
	assert.Equal(t, "Europe/Madrid", model.Timezone)
	assert.Equal(t, "07:42", model.ReferenceTime)
	assert.Equal(t, 7*60+42, model.MinutesSinceMidnight)
}
