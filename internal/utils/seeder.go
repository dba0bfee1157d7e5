package utils

import (
	"fmt"
	"log"
	"time"

	"biomonitor/internal/models"
	"biomonitor/internal/simulation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultNumRecords = 5

// SeedDemoProfile creates a demo profile with a short measurement history,
// for local development. Returns the seeded profile.
func SeedDemoProfile(db *gorm.DB, numRecords int) (*models.User, error) {
	user := &models.User{
		ID:        uuid.NewString(),
		Name:      "Ana",
		Surname:   "Pérez",
		BirthDate: "1990-05-01",
		Gender:    models.GenderFemale,
		BloodType: "O+",
	}

	if err := db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to seed demo user: %w", err)
	}

	for i := 0; i < numRecords; i++ {
		temp := simulation.SimulateTemperature()
		hr := simulation.SimulateHeartRate()

		record := &models.VitalSignsRecord{
			ID:            uuid.NewString(),
			UserID:        user.ID,
			RecordedAt:    time.Now().Add(-time.Duration(numRecords-i) * 24 * time.Hour),
			Temperature:   &temp,
			HeartRate:     &hr,
			ECGData:       simulation.SimulateECG(),
			Abnormalities: models.StringSlice{},
		}
		if err := db.Create(record).Error; err != nil {
			return nil, fmt.Errorf("failed to seed record %d: %w", i, err)
		}
	}

	log.Printf("Seeded demo profile %s %s (%s) with %d records", user.Name, user.Surname, user.ID, numRecords)
	return user, nil
}

// CleanupDemoData removes previously seeded demo profiles and their records.
func CleanupDemoData(db *gorm.DB) error {
	var users []models.User
	if err := db.Where("name = ? AND surname = ?", "Ana", "Pérez").Find(&users).Error; err != nil {
		return err
	}

	for _, user := range users {
		if err := db.Where("user_id = ?", user.ID).Delete(&models.VitalSignsRecord{}).Error; err != nil {
			return err
		}
		if err := db.Where("id = ?", user.ID).Delete(&models.User{}).Error; err != nil {
			return err
		}
	}

	log.Printf("Removed %d demo profiles", len(users))
	return nil
}
