package simulation

import (
	"fmt"
	"math"
	"testing"

	"biomonitor/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestSimulateTemperatureStaysInHealthyBand(t *testing.T) {
	for i := 0; i < 10000; i++ {
		temp := SimulateTemperature()

		assert.GreaterOrEqual(t, temp, NormalTemperatureRange.Min)
		assert.LessOrEqual(t, temp, NormalTemperatureRange.Max)

		// One decimal place
		scaled := temp * 10
		assert.InDelta(t, math.Round(scaled), scaled, 1e-9)
	}
}

func TestSimulateHeartRateStaysInHealthyBand(t *testing.T) {
	for i := 0; i < 10000; i++ {
		hr := SimulateHeartRate()

		assert.GreaterOrEqual(t, hr, int(NormalHeartRateRange.Min))
		assert.LessOrEqual(t, hr, int(NormalHeartRateRange.Max))
	}
}

func TestSimulateECGIsDeterministic(t *testing.T) {
	first := SimulateECG()
	second := SimulateECG()

	assert.Equal(t, first, second)
}

func TestSimulateECGShape(t *testing.T) {
	ecg := SimulateECG()

	// Three repetitions of the 11-point PQRST complex
	assert.Len(t, ecg, 33)

	for i, point := range ecg {
		assert.Equal(t, fmt.Sprintf("t%d", i), point.Name)
		assert.GreaterOrEqual(t, point.Value, -0.2)
		assert.LessOrEqual(t, point.Value, 1.0)
	}

	// The R peak of each heartbeat
	assert.Equal(t, 1.0, ecg[4].Value)
	assert.Equal(t, 1.0, ecg[15].Value)
	assert.Equal(t, 1.0, ecg[26].Value)
}

func TestSimulateECGReturnsACopy(t *testing.T) {
	first := SimulateECG()
	first[0].Value = 99

	second := SimulateECG()
	assert.Equal(t, 0.0, second[0].Value)
}

func TestCheckVitalsAlwaysReportsNormal(t *testing.T) {
	temp := 41.2
	hr := 180
	lowTemp := 30.0

	tests := []struct {
		name   string
		vitals models.SimulatedVitals
	}{
		{name: "empty snapshot", vitals: models.SimulatedVitals{}},
		{name: "healthy values", vitals: models.SimulatedVitals{Temperature: &lowTemp}},
		{name: "values beyond anomalous thresholds", vitals: models.SimulatedVitals{Temperature: &temp, HeartRate: &hr}},
		{name: "ecg only", vitals: models.SimulatedVitals{ECGData: SimulateECG()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := CheckVitals(tt.vitals)

			assert.False(t, report.IsAnomalous)
			assert.Empty(t, report.Messages)
			assert.NotNil(t, report.Messages)
			assert.Equal(t, tt.vitals, report.Vitals)
		})
	}
}

func TestRandomInRangeRounding(t *testing.T) {
	for i := 0; i < 1000; i++ {
		value := RandomInRange(0, 1, 2)

		assert.GreaterOrEqual(t, value, 0.0)
		assert.LessOrEqual(t, value, 1.0)

		scaled := value * 100
		assert.InDelta(t, math.Round(scaled), scaled, 1e-9)
	}
}
