package services

import (
	"log"
	"time"

	"biomonitor/internal/cache"
	"biomonitor/internal/models"
	"biomonitor/internal/publisher"
	"biomonitor/internal/repository"
	"biomonitor/internal/simulation"

	"github.com/google/uuid"
)

// VitalsService simulates vital-sign measurements for an explicitly supplied
// user, accumulates them in the user's transient snapshot and commits them
// into the user's immutable record history on save.
type VitalsService struct {
	snapshots cache.SnapshotStore
	records   repository.VitalRecordRepository
	pub       publisher.RecordPublisher // optional
}

func NewVitalsService(snapshots cache.SnapshotStore, records repository.VitalRecordRepository, pub publisher.RecordPublisher) *VitalsService {
	return &VitalsService{snapshots: snapshots, records: records, pub: pub}
}

// MeasureTemperature draws a temperature from the healthy band, stores it in
// the user's snapshot (overwriting a prior measurement) and returns it.
func (s *VitalsService) MeasureTemperature(userID string) (float64, error) {
	temp := simulation.SimulateTemperature()

	vitals, err := s.snapshots.Get(userID)
	if err != nil {
		return 0, err
	}
	vitals.Temperature = &temp
	if err := s.snapshots.Set(userID, vitals); err != nil {
		return 0, err
	}
	return temp, nil
}

// MeasureHeartRate draws a heart rate from the healthy band, stores it in the
// user's snapshot and returns it.
func (s *VitalsService) MeasureHeartRate(userID string) (int, error) {
	hr := simulation.SimulateHeartRate()

	vitals, err := s.snapshots.Get(userID)
	if err != nil {
		return 0, err
	}
	vitals.HeartRate = &hr
	if err := s.snapshots.Set(userID, vitals); err != nil {
		return 0, err
	}
	return hr, nil
}

// MeasureECG stores the canonical waveform in the user's snapshot and returns
// it. Identical across all users and sessions.
func (s *VitalsService) MeasureECG(userID string) (models.ECGSamples, error) {
	ecg := simulation.SimulateECG()

	vitals, err := s.snapshots.Get(userID)
	if err != nil {
		return nil, err
	}
	vitals.ECGData = ecg
	if err := s.snapshots.Set(userID, vitals); err != nil {
		return nil, err
	}
	return ecg, nil
}

// CurrentSnapshot returns the user's in-progress measurement state.
func (s *VitalsService) CurrentSnapshot(userID string) (models.SimulatedVitals, error) {
	return s.snapshots.Get(userID)
}

// SaveRecord snapshots the transient vitals into a new immutable record. When
// there is no user or nothing has been measured it returns (nil, nil): nothing
// to save is not an error. The transient snapshot is left intact after a save.
func (s *VitalsService) SaveRecord(userID string) (*models.VitalSignsRecord, error) {
	if userID == "" {
		return nil, nil
	}

	vitals, err := s.snapshots.Get(userID)
	if err != nil {
		return nil, err
	}
	if vitals.IsEmpty() {
		return nil, nil
	}

	// Always reports normal; kept so the record carries a verdict once real
	// anomaly detection exists.
	report := simulation.CheckVitals(vitals)

	record := &models.VitalSignsRecord{
		ID:            uuid.NewString(),
		UserID:        userID,
		RecordedAt:    time.Now(),
		Temperature:   vitals.Temperature,
		HeartRate:     vitals.HeartRate,
		ECGData:       vitals.ECGData,
		Abnormalities: models.StringSlice(report.Messages),
	}

	if err := s.records.Create(record); err != nil {
		return nil, err
	}

	if s.pub != nil {
		if err := s.pub.PublishRecord(record); err != nil {
			log.Printf("Warning: failed to publish record %s: %v", record.ID, err)
		}
	}

	return record, nil
}

// ResetSnapshot clears the user's transient snapshot. Persisted history is
// untouched.
func (s *VitalsService) ResetSnapshot(userID string) error {
	return s.snapshots.Clear(userID)
}

// ListRecords returns the user's saved records, newest first.
func (s *VitalsService) ListRecords(userID string) ([]models.VitalSignsRecord, error) {
	return s.records.FindAllByUserID(userID)
}
