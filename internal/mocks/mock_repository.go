package mocks

import (
	"biomonitor/internal/models"

	"github.com/stretchr/testify/mock"
)

// Shared MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindAll() ([]models.User, error) {
	args := m.Called()
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// Shared MockSessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) GetActiveUserID() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockSessionRepository) SetActiveUserID(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockSessionRepository) ClearActiveUserID() error {
	args := m.Called()
	return args.Error(0)
}

// Shared MockVitalRecordRepository
type MockVitalRecordRepository struct {
	mock.Mock
}

func (m *MockVitalRecordRepository) Create(record *models.VitalSignsRecord) error {
	args := m.Called(record)
	return args.Error(0)
}

func (m *MockVitalRecordRepository) FindAllByUserID(userID string) ([]models.VitalSignsRecord, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.VitalSignsRecord), args.Error(1)
}

func (m *MockVitalRecordRepository) FindByID(id string) (*models.VitalSignsRecord, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VitalSignsRecord), args.Error(1)
}

func (m *MockVitalRecordRepository) CountByUserID(userID string) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}
