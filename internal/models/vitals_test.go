package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestECGSamplesScan(t *testing.T) {
	var samples ECGSamples
	err := samples.Scan([]byte(`[{"name":"t0","value":0},{"name":"t1","value":0.2}]`))

	assert.NoError(t, err)
	assert.Len(t, samples, 2)
	assert.Equal(t, "t1", samples[1].Name)
	assert.Equal(t, 0.2, samples[1].Value)
}

func TestECGSamplesScanNil(t *testing.T) {
	samples := ECGSamples{{Name: "t0"}}
	assert.NoError(t, samples.Scan(nil))
	assert.Nil(t, samples)
}

func TestStringSliceValueNeverNull(t *testing.T) {
	// Abnormalities must serialize as an empty list, not NULL
	var abnormalities StringSlice
	value, err := abnormalities.Value()

	assert.NoError(t, err)
	assert.JSONEq(t, `[]`, string(value.([]byte)))
}

func TestSimulatedVitalsIsEmpty(t *testing.T) {
	assert.True(t, SimulatedVitals{}.IsEmpty())

	temp := 36.9
	assert.False(t, SimulatedVitals{Temperature: &temp}.IsEmpty())

	assert.False(t, SimulatedVitals{ECGData: ECGSamples{{Name: "t0"}}}.IsEmpty())
}
