package models

import (
	"time"
)

// VitalSignsRecord is one saved, immutable measurement snapshot attributed to
// a user. Records are never updated or individually deleted.
type VitalSignsRecord struct {
	ID            string      `gorm:"primaryKey" json:"id" example:"0b2d4f6a-8c1e-4357-9b0d-2f4e6a8c1e35"`
	UserID        string      `gorm:"index" json:"user_id" example:"9f1c2d3e-4b5a-6789-abcd-ef0123456789"`
	RecordedAt    time.Time   `json:"recorded_at" example:"2023-01-01T10:30:00Z"`
	Temperature   *float64    `json:"temperature,omitempty" example:"36.9"`
	HeartRate     *int        `json:"heart_rate,omitempty" example:"72"`
	ECGData       ECGSamples  `gorm:"type:jsonb" json:"ecg_data,omitempty"`
	Abnormalities StringSlice `gorm:"type:jsonb" json:"abnormalities"`
}
