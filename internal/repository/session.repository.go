package repository

import (
	"errors"

	"biomonitor/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SessionRepository persists the active-profile pointer. It is a single
// key-value row; an absent row means no profile is active.
type SessionRepository interface {
	GetActiveUserID() (string, error)
	SetActiveUserID(userID string) error
	ClearActiveUserID() error
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

// GetActiveUserID returns the stored pointer, or "" when unset.
func (r *sessionRepository) GetActiveUserID() (string, error) {
	var setting models.AppSetting
	err := r.db.Where("key = ?", models.SettingCurrentUserID).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return setting.Value, nil
}

func (r *sessionRepository) SetActiveUserID(userID string) error {
	setting := models.AppSetting{Key: models.SettingCurrentUserID, Value: userID}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&setting).Error
}

func (r *sessionRepository) ClearActiveUserID() error {
	return r.db.Where("key = ?", models.SettingCurrentUserID).Delete(&models.AppSetting{}).Error
}
