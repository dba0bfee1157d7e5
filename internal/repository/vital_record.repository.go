package repository

import (
	"biomonitor/internal/models"

	"gorm.io/gorm"
)

// VitalRecordRepository stores saved measurement snapshots. Records are
// append-only: there is no update or per-record delete.
type VitalRecordRepository interface {
	Create(record *models.VitalSignsRecord) error
	FindAllByUserID(userID string) ([]models.VitalSignsRecord, error)
	FindByID(id string) (*models.VitalSignsRecord, error)
	CountByUserID(userID string) (int64, error)
}

type vitalRecordRepository struct {
	db *gorm.DB
}

func NewVitalRecordRepository(db *gorm.DB) VitalRecordRepository {
	return &vitalRecordRepository{db: db}
}

func (r *vitalRecordRepository) Create(record *models.VitalSignsRecord) error {
	return r.db.Create(record).Error
}

// FindAllByUserID returns the user's history newest first.
func (r *vitalRecordRepository) FindAllByUserID(userID string) ([]models.VitalSignsRecord, error) {
	var records []models.VitalSignsRecord
	err := r.db.Where("user_id = ?", userID).Order("recorded_at desc").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *vitalRecordRepository) FindByID(id string) (*models.VitalSignsRecord, error) {
	var record models.VitalSignsRecord
	err := r.db.Where("id = ?", id).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *vitalRecordRepository) CountByUserID(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.VitalSignsRecord{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
