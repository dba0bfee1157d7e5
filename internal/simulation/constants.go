package simulation

import (
	"fmt"

	"biomonitor/internal/models"
)

// Range is a closed numeric interval.
type Range struct {
	Min float64
	Max float64
}

// Healthy bands used by the simulator. Generated vitals always fall inside
// these, so every measurement reads as normal.
var (
	NormalTemperatureRange = Range{Min: 36.5, Max: 37.5} // Celsius
	NormalHeartRateRange   = Range{Min: 60, Max: 100}    // bpm
)

// Anomalous thresholds. The simulator never produces values beyond these, but
// the report structure keeps them for when real anomaly detection lands.
const (
	AnomalousTemperatureLow  = 35.5
	AnomalousTemperatureHigh = 38.5
	AnomalousHeartRateLow    = 50
	AnomalousHeartRateHigh   = 110
)

// pqrstComplex is one stylized heartbeat: P wave, QRS complex, T wave and a
// small optional U wave.
var pqrstComplex = []float64{
	0, 0.2, 0, // P wave
	-0.1, // Q
	1.0,  // R
	-0.2, // S
	0, 0.3, 0, // T wave
	0.1, 0, // U wave
}

// healthyECGPattern is three concatenated repetitions of the PQRST complex,
// with points labeled t0..t32.
var healthyECGPattern = buildECGPattern(3)

func buildECGPattern(repetitions int) models.ECGSamples {
	pattern := make(models.ECGSamples, 0, repetitions*len(pqrstComplex))
	for i := 0; i < repetitions*len(pqrstComplex); i++ {
		pattern = append(pattern, models.ECGPoint{
			Name:  fmt.Sprintf("t%d", i),
			Value: pqrstComplex[i%len(pqrstComplex)],
		})
	}
	return pattern
}
