package utils

import (
	"time"
)

// CalculateAge returns full years elapsed since a YYYY-MM-DD birth date,
// counting a year only once the birthday has passed.
func CalculateAge(birthDate string, now time.Time) (int, error) {
	parsed, err := time.Parse("2006-01-02", birthDate)
	if err != nil {
		return 0, err
	}

	age := now.Year() - parsed.Year()
	if now.Month() < parsed.Month() ||
		(now.Month() == parsed.Month() && now.Day() < parsed.Day()) {
		age--
	}
	return age, nil
}
