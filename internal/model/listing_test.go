package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestListingTimeLeft(t *testing.T) {
	t.Parallel()

	now := time.Now()
	l := &Listing{SecondsRemaining: 300, UpdatedAt: now.Add(-2 * time.Minute)}

	assert.InDelta(t, 180, l.TimeLeft(now), 0.001)

	l.UpdatedAt = now.Add(-10 * time.Minute)
	assert.Less(t, l.TimeLeft(now), 0.0)
}

func TestListingUpdatedMinute(t *testing.T) {
	t.Parallel()

	base := time.Date(2023, 9, 1, 12, 0, 0, 0, time.UTC)

	a := &Listing{UpdatedAt: base.Add(1 * time.Minute)}
	b := &Listing{UpdatedAt: base.Add(4*time.Minute + 59*time.Second)}
	c := &Listing{UpdatedAt: base.Add(5 * time.Minute)}

	assert.Equal(t, a.UpdatedMinute(), b.UpdatedMinute(), "same five-minute bucket must compare equal")
	assert.NotEqual(t, a.UpdatedMinute(), c.UpdatedMinute())
}
