package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ECGPoint is one labeled sample of the stylized ECG waveform.
type ECGPoint struct {
	Name  string  `json:"name" example:"t0"`
	Value float64 `json:"value" example:"1.0"`
}

// ECGSamples is an ordered ECG waveform stored as a JSON column.
type ECGSamples []ECGPoint

func (e ECGSamples) Value() (driver.Value, error) {
	if e == nil {
		return nil, nil
	}
	return json.Marshal(e)
}

func (e *ECGSamples) Scan(value interface{}) error {
	if value == nil {
		*e = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into ECGSamples", value)
	}
	return json.Unmarshal(data, e)
}

// StringSlice is a list of strings stored as a JSON column.
type StringSlice []string

func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(s)
}

func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringSlice", value)
	}
	return json.Unmarshal(data, s)
}

// SimulatedVitals is the in-progress, unsaved measurement state. It lives in
// the snapshot store only and is never persisted as its own table.
type SimulatedVitals struct {
	Temperature *float64   `json:"temperature,omitempty" example:"36.9"`
	HeartRate   *int       `json:"heart_rate,omitempty" example:"72"`
	ECGData     ECGSamples `json:"ecg_data,omitempty"`
}

// IsEmpty reports whether no vital has been measured yet.
func (v SimulatedVitals) IsEmpty() bool {
	return v.Temperature == nil && v.HeartRate == nil && len(v.ECGData) == 0
}
