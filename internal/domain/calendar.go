package domain

import (
	"math"
	"time"
)

// midnight truncates t to local midnight.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayOfYear returns the ordinal day (1..366) of t within its calendar year,
// counted as whole days elapsed since December 31 of the prior year.
func DayOfYear(t time.Time) int {
	start := time.Date(t.Year()-1, time.December, 31, 0, 0, 0, 0, t.Location())
	return int(midnight(t).Sub(start).Hours() / 24)
}

// MondayOf returns the Monday of the ISO week containing t, at local midnight.
func MondayOf(t time.Time) time.Time {
	m := midnight(t)

	offset := 1 - int(m.Weekday())
	if m.Weekday() == time.Sunday {
		offset = -6
	}

	return m.AddDate(0, 0, offset)
}

// SundayOf returns the Sunday closing the ISO week containing t.
func SundayOf(t time.Time) time.Time {
	return MondayOf(t).AddDate(0, 0, 6)
}

// MondayDayOfYear returns the day-of-year of the Monday of t's week.
func MondayDayOfYear(t time.Time) int {
	return DayOfYear(MondayOf(t))
}

// SundayDayOfYear returns the day-of-year of the Sunday of t's week.
func SundayDayOfYear(t time.Time) int {
	return DayOfYear(SundayOf(t))
}

// RoundCurrency rounds an amount up to the next cent. This is a ceiling,
// not half-up rounding: any fraction of a cent is charged as a full cent.
func RoundCurrency(amount float64) float64 {
	return math.Ceil(amount*100) / 100
}
