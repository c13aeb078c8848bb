package service

import "time"

// Period tokens recognized by the dashboard. Unknown tokens degrade to
// PeriodThisMonth rather than fail.
const (
	PeriodThisMonth   = "this-month"
	PeriodLastMonth   = "last-month"
	PeriodThisQuarter = "this-quarter"
	PeriodThisYear    = "this-year"
	PeriodAllTime     = "all-time"
)

// endOfDayNsec makes range ends land on 23:59:59.999.
const endOfDayNsec = int(999 * time.Millisecond)

type PeriodRange struct {
	Token string
	Start time.Time
	End   time.Time
}

// ResolvePeriod maps a named period token to a concrete inclusive date
// range evaluated against now in UTC. It is a pure function of its
// arguments.
func ResolvePeriod(token string, now time.Time) PeriodRange {
	now = now.UTC()
	year, month := now.Year(), now.Month()

	switch token {
	case PeriodLastMonth:
		return PeriodRange{
			Token: token,
			Start: time.Date(year, month-1, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(year, month, 0, 23, 59, 59, endOfDayNsec, time.UTC),
		}
	case PeriodThisQuarter:
		quarterStart := time.Month((int(month)-1)/3*3 + 1)
		return PeriodRange{
			Token: token,
			Start: time.Date(year, quarterStart, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(year, quarterStart+3, 0, 23, 59, 59, endOfDayNsec, time.UTC),
		}
	case PeriodThisYear:
		return PeriodRange{
			Token: token,
			Start: time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(year, 12, 31, 23, 59, 59, endOfDayNsec, time.UTC),
		}
	case PeriodAllTime:
		return PeriodRange{
			Token: token,
			Start: time.Unix(0, 0).UTC(),
			End:   time.Date(year+1, 12, 31, 23, 59, 59, endOfDayNsec, time.UTC),
		}
	default:
		return PeriodRange{
			Token: PeriodThisMonth,
			Start: time.Date(year, month, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(year, month+1, 0, 23, 59, 59, endOfDayNsec, time.UTC),
		}
	}
}
