package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSelectEntry_PrefersID(t *testing.T) {
	e := sampleEntry(NoLink())
	sel := SelectEntry(e)
	assert.Equal(t, "e1", sel.ID)
	assert.Empty(t, sel.StartTime)

	assert.True(t, sel.Matches(e))

	other := sampleEntry(NoLink())
	other.ID = "e2"
	assert.False(t, sel.Matches(other), "identical times do not match when ids differ")
}

func TestSelectEntry_LegacyFallsBackToValueTriple(t *testing.T) {
	e := sampleEntry(LegacyLink())
	e.ID = ""

	sel := SelectEntry(e)
	assert.Empty(t, sel.ID)
	assert.Equal(t, "2026-03-10T09:00:00.000Z", sel.StartTime)
	assert.Equal(t, int64(1800000), sel.DurationMs)

	assert.True(t, sel.Matches(e))

	shifted := e
	shifted.StartTime = e.StartTime.Add(time.Second)
	shifted.Recompute()
	assert.False(t, sel.Matches(shifted))
}

func TestEntrySelector_TripleMatchIgnoresName(t *testing.T) {
	e := sampleEntry(LegacyLink())
	e.ID = ""
	sel := SelectEntry(e)

	renamed := e
	renamed.ActivityName = "Something Else"
	assert.True(t, sel.Matches(renamed), "legacy identity is the time triple, not the name")
}
