package caldate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{
			name:  "plain date",
			input: "20240115",
			want:  Date{2024, time.January, 15},
		},
		{
			name:  "date with time part",
			input: "20240115T090000Z",
			want:  Date{2024, time.January, 15},
		},
		{
			name:  "leap day",
			input: "20240229",
			want:  Date{2024, time.February, 29},
		},
		{
			name:    "too short",
			input:   "2024",
			wantErr: true,
		},
		{
			name:    "not a date",
			input:   "banana",
			wantErr: true,
		},
		{
			name:    "month out of range",
			input:   "20241301",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	d := Date{2024, time.March, 5}
	assert.Equal(t, "20240305", d.String())

	parsed, err := Parse(d.String())
	require.NoError(t, err)
	assert.Equal(t, d, parsed)
}

func TestArithmetic(t *testing.T) {
	d := Date{2024, time.February, 28}

	assert.Equal(t, Date{2024, time.February, 29}, d.AddDays(1), "2024 is a leap year")
	assert.Equal(t, Date{2024, time.March, 1}, d.AddDays(2))
	assert.Equal(t, Date{2023, time.December, 28}, d.AddMonths(-2))
	assert.Equal(t, Date{2026, time.February, 28}, d.AddYears(2))

	assert.Equal(t, 14, Date{2024, time.January, 15}.DaysSince(Date{2024, time.January, 1}))
	assert.Equal(t, -1, Date{2023, time.December, 31}.DaysSince(Date{2024, time.January, 1}))
	assert.Equal(t, 13, Date{2025, time.February, 1}.MonthsSince(Date{2024, time.January, 31}))
}

func TestOrdering(t *testing.T) {
	a := Date{2024, time.January, 1}
	b := Date{2024, time.January, 2}

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, a, Min(a, b))
	assert.Equal(t, a, Min(b, a))
}

func TestWeekday(t *testing.T) {
	// 2024-01-01 was a Monday.
	assert.Equal(t, time.Monday, Date{2024, time.January, 1}.Weekday())
	assert.Equal(t, time.Sunday, Date{2024, time.January, 7}.Weekday())
}

func TestWithClock(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	anchor := time.Date(2024, 1, 1, 9, 30, 0, 0, loc)

	got := Date{2024, time.January, 10}.WithClock(anchor)
	assert.Equal(t, time.Date(2024, 1, 10, 9, 30, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}

func TestFromTimeUsesLocalCalendarDay(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	// 23:30 on Jan 1 in UTC+8 is still Jan 1 there, even though it is
	// Jan 1 15:30 UTC.
	tm := time.Date(2024, 1, 1, 23, 30, 0, 0, loc)
	assert.Equal(t, Date{2024, time.January, 1}, FromTime(tm))
}
