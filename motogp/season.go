package motogp

import "time"

const FirstSeasonYear = 2000

func CurrentYear() int {
	return time.Now().Year()
}

// IsValidSeasonYear reports whether year lies between FirstSeasonYear and next
// year, as seen by the system clock.
func IsValidSeasonYear(year int) bool {
	return IsValidSeasonYearAt(year, time.Now())
}

func IsValidSeasonYearAt(year int, now time.Time) bool {
	return year >= FirstSeasonYear && year <= now.Year()+1
}
