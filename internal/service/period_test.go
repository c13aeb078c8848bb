package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolvePeriod(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.August, 28, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		name      string
		token     string
		wantToken string
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "this month",
			token:     PeriodThisMonth,
			wantToken: PeriodThisMonth,
			wantStart: time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.August, 31, 23, 59, 59, endOfDayNsec, time.UTC),
		},
		{
			name:      "last month",
			token:     PeriodLastMonth,
			wantToken: PeriodLastMonth,
			wantStart: time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.July, 31, 23, 59, 59, endOfDayNsec, time.UTC),
		},
		{
			name:      "this quarter",
			token:     PeriodThisQuarter,
			wantToken: PeriodThisQuarter,
			wantStart: time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.September, 30, 23, 59, 59, endOfDayNsec, time.UTC),
		},
		{
			name:      "this year",
			token:     PeriodThisYear,
			wantToken: PeriodThisYear,
			wantStart: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.December, 31, 23, 59, 59, endOfDayNsec, time.UTC),
		},
		{
			name:      "all time",
			token:     PeriodAllTime,
			wantToken: PeriodAllTime,
			wantStart: time.Unix(0, 0).UTC(),
			wantEnd:   time.Date(2027, time.December, 31, 23, 59, 59, endOfDayNsec, time.UTC),
		},
		{
			name:      "unknown token degrades to this month",
			token:     "next-century",
			wantToken: PeriodThisMonth,
			wantStart: time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.August, 31, 23, 59, 59, endOfDayNsec, time.UTC),
		},
		{
			name:      "absent token degrades to this month",
			token:     "",
			wantToken: PeriodThisMonth,
			wantStart: time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.August, 31, 23, 59, 59, endOfDayNsec, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ResolvePeriod(tt.token, now)
			assert.Equal(t, tt.wantToken, got.Token)
			assert.True(t, got.Start.Equal(tt.wantStart), "start: got %v want %v", got.Start, tt.wantStart)
			assert.True(t, got.End.Equal(tt.wantEnd), "end: got %v want %v", got.End, tt.wantEnd)
		})
	}
}

func TestResolvePeriod_StartNeverAfterEnd(t *testing.T) {
	t.Parallel()

	nows := []time.Time{
		time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.February, 28, 12, 0, 0, 0, time.UTC),
		time.Date(2024, time.February, 29, 23, 59, 59, 0, time.UTC),
		time.Date(2026, time.December, 31, 23, 59, 59, 0, time.UTC),
	}
	tokens := []string{
		PeriodThisMonth, PeriodLastMonth, PeriodThisQuarter, PeriodThisYear, PeriodAllTime, "bogus",
	}

	for _, now := range nows {
		for _, token := range tokens {
			got := ResolvePeriod(token, now)
			assert.False(t, got.Start.After(got.End), "token %q at %v: start %v after end %v", token, now, got.Start, got.End)
		}
	}
}

func TestResolvePeriod_JanuaryBoundaries(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.January, 15, 10, 0, 0, 0, time.UTC)

	lastMonth := ResolvePeriod(PeriodLastMonth, now)
	assert.Equal(t, time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC), lastMonth.Start)
	assert.Equal(t, time.Date(2025, time.December, 31, 23, 59, 59, endOfDayNsec, time.UTC), lastMonth.End)

	quarter := ResolvePeriod(PeriodThisQuarter, now)
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), quarter.Start)
	assert.Equal(t, time.Date(2026, time.March, 31, 23, 59, 59, endOfDayNsec, time.UTC), quarter.End)
}

func TestResolvePeriod_NormalizesToUTC(t *testing.T) {
	t.Parallel()

	jakarta := time.FixedZone("WIB", 7*3600)
	// 2026-09-01 02:00 in Jakarta is still 2026-08-31 in UTC.
	now := time.Date(2026, time.September, 1, 2, 0, 0, 0, jakarta)

	got := ResolvePeriod(PeriodThisMonth, now)
	assert.Equal(t, time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC), got.Start)
}
