package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateAge(t *testing.T) {
	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		birthDate string
		expected  int
	}{
		{name: "birthday already passed this year", birthDate: "1990-05-01", expected: 36},
		{name: "birthday later this year", birthDate: "1990-12-24", expected: 35},
		{name: "birthday today", birthDate: "1990-08-30", expected: 36},
		{name: "birthday tomorrow", birthDate: "1990-08-31", expected: 35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			age, err := CalculateAge(tt.birthDate, now)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, age)
		})
	}
}

func TestCalculateAgeInvalidDate(t *testing.T) {
	_, err := CalculateAge("not-a-date", time.Now())
	assert.Error(t, err)
}
