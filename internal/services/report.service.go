package services

import (
	"errors"
	"time"

	"biomonitor/internal/models"
	"biomonitor/internal/repository"
	"biomonitor/internal/simulation"
	"biomonitor/internal/utils"

	"gorm.io/gorm"
)

// MedicalReport is the assembled vital-signs report for one saved record:
// the patient block plus the record's measurements and normalcy verdict.
// Rendering (PDF or otherwise) is up to the client.
type MedicalReport struct {
	Patient PatientInfo               `json:"patient"`
	Record  models.VitalSignsRecord   `json:"record"`
	Verdict simulation.NormalcyReport `json:"verdict"`
}

type PatientInfo struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Surname   string `json:"surname"`
	Age       int    `json:"age"`
	BirthDate string `json:"birth_date"`
	Gender    string `json:"gender"`
	BloodType string `json:"blood_type"`
}

// ReportService assembles medical reports from a profile and its record
// history.
type ReportService struct {
	users   repository.UserRepository
	records repository.VitalRecordRepository
}

func NewReportService(users repository.UserRepository, records repository.VitalRecordRepository) *ReportService {
	return &ReportService{users: users, records: records}
}

// BuildReport assembles the report for the given record, or for the user's
// newest record when recordID is empty.
func (s *ReportService) BuildReport(userID, recordID string) (*MedicalReport, error) {
	user, err := s.users.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Resource: "profile", ID: userID}
	}
	if err != nil {
		return nil, err
	}

	record, err := s.resolveRecord(userID, recordID)
	if err != nil {
		return nil, err
	}

	age, err := utils.CalculateAge(user.BirthDate, time.Now())
	if err != nil {
		return nil, err
	}

	return &MedicalReport{
		Patient: PatientInfo{
			ID:        user.ID,
			Name:      user.Name,
			Surname:   user.Surname,
			Age:       age,
			BirthDate: user.BirthDate,
			Gender:    user.Gender,
			BloodType: user.BloodType,
		},
		Record: *record,
		Verdict: simulation.CheckVitals(models.SimulatedVitals{
			Temperature: record.Temperature,
			HeartRate:   record.HeartRate,
			ECGData:     record.ECGData,
		}),
	}, nil
}

func (s *ReportService) resolveRecord(userID, recordID string) (*models.VitalSignsRecord, error) {
	if recordID == "" {
		records, err := s.records.FindAllByUserID(userID)
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			return nil, &NotFoundError{Resource: "record", ID: "latest"}
		}
		return &records[0], nil
	}

	record, err := s.records.FindByID(recordID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Resource: "record", ID: recordID}
	}
	if err != nil {
		return nil, err
	}
	if record.UserID != userID {
		return nil, &NotFoundError{Resource: "record", ID: recordID}
	}
	return record, nil
}
