package services_test

import (
	"biomonitor/internal/models"

	"gorm.io/gorm"
)

// In-memory repository fakes preserving the storage contracts: insertion
// order for profiles, newest-first listing for records.

type fakeUserRepo struct {
	users []models.User
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.users = append(r.users, *user)
	return nil
}

func (r *fakeUserRepo) FindAll() ([]models.User, error) {
	out := make([]models.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Update(user *models.User) error {
	for i := range r.users {
		if r.users[i].ID == user.ID {
			r.users[i] = *user
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Delete(id string) error {
	for i := range r.users {
		if r.users[i].ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeSessionRepo struct {
	activeID string
}

func (r *fakeSessionRepo) GetActiveUserID() (string, error) {
	return r.activeID, nil
}

func (r *fakeSessionRepo) SetActiveUserID(userID string) error {
	r.activeID = userID
	return nil
}

func (r *fakeSessionRepo) ClearActiveUserID() error {
	r.activeID = ""
	return nil
}

type fakeRecordRepo struct {
	records []models.VitalSignsRecord
}

func (r *fakeRecordRepo) Create(record *models.VitalSignsRecord) error {
	r.records = append(r.records, *record)
	return nil
}

func (r *fakeRecordRepo) FindAllByUserID(userID string) ([]models.VitalSignsRecord, error) {
	var out []models.VitalSignsRecord
	for i := len(r.records) - 1; i >= 0; i-- {
		if r.records[i].UserID == userID {
			out = append(out, r.records[i])
		}
	}
	return out, nil
}

func (r *fakeRecordRepo) FindByID(id string) (*models.VitalSignsRecord, error) {
	for i := range r.records {
		if r.records[i].ID == id {
			record := r.records[i]
			return &record, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRecordRepo) CountByUserID(userID string) (int64, error) {
	var count int64
	for i := range r.records {
		if r.records[i].UserID == userID {
			count++
		}
	}
	return count, nil
}
