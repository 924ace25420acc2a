package rule

import (
	"testing"
	"time"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRRuleConversion(t *testing.T) {
	dtstart := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	r := Rule{Freq: FreqDaily, Interval: 1, Count: mo.Some(3)}
	rr, err := r.RRule(dtstart)
	require.NoError(t, err)

	all := rr.All()
	require.Len(t, all, 3)
	assert.Equal(t, dtstart, all[0])
	assert.Equal(t, dtstart.AddDate(0, 0, 1), all[1])
	assert.Equal(t, dtstart.AddDate(0, 0, 2), all[2])
}

func TestRRuleConversionByDay(t *testing.T) {
	dtstart := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC) // a Monday

	r := Rule{Freq: FreqWeekly, Interval: 1, ByDay: []Weekday{Monday, Wednesday}, Count: mo.Some(4)}
	rr, err := r.RRule(dtstart)
	require.NoError(t, err)

	all := rr.All()
	require.Len(t, all, 4)
	assert.Equal(t, time.Monday, all[0].Weekday())
	assert.Equal(t, time.Wednesday, all[1].Weekday())
}

func TestRRuleConversionRejectsUnknowns(t *testing.T) {
	dtstart := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	_, err := Rule{Freq: "HOURLY"}.RRule(dtstart)
	assert.Error(t, err)

	_, err = Rule{Freq: FreqWeekly, ByDay: []Weekday{"XX"}}.RRule(dtstart)
	assert.Error(t, err)
}
