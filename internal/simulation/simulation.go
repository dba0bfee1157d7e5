package simulation

import (
	"math"
	"math/rand"

	"biomonitor/internal/models"
)

// NormalcyReport is the verdict of a vitals check. The current check is a
// structural placeholder: it always reports normal with zero messages.
type NormalcyReport struct {
	IsAnomalous bool                   `json:"is_anomalous"`
	Messages    []string               `json:"messages"`
	Vitals      models.SimulatedVitals `json:"vitals"`
}

// RandomInRange draws uniformly from [min, max] and rounds to the given
// number of decimal places.
func RandomInRange(min, max float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round((rand.Float64()*(max-min)+min)*factor) / factor
}

// SimulateTemperature returns a body temperature inside the healthy band,
// one decimal place.
func SimulateTemperature() float64 {
	return RandomInRange(NormalTemperatureRange.Min, NormalTemperatureRange.Max, 1)
}

// SimulateHeartRate returns a whole-number heart rate inside the healthy band.
func SimulateHeartRate() int {
	return int(RandomInRange(NormalHeartRateRange.Min, NormalHeartRateRange.Max, 0))
}

// SimulateECG returns the canonical healthy waveform. Every call yields the
// identical pattern; there is no randomization. The returned slice is a copy
// so callers cannot mutate the pattern.
func SimulateECG() models.ECGSamples {
	out := make(models.ECGSamples, len(healthyECGPattern))
	copy(out, healthyECGPattern)
	return out
}

// CheckVitals confirms normalcy for any input. Real threshold checking was
// intentionally disabled upstream; this keeps the structure so a future
// detector can slot in without touching callers.
func CheckVitals(vitals models.SimulatedVitals) NormalcyReport {
	return NormalcyReport{
		IsAnomalous: false,
		Messages:    []string{},
		Vitals:      vitals,
	}
}
