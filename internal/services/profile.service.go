package services

import (
	"errors"
	"time"

	"biomonitor/internal/models"
	"biomonitor/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const minBirthYear = 1900

// RegisterProfileInput is the payload for registering a new profile.
type RegisterProfileInput struct {
	Name      string `json:"name" example:"Ana"`
	Surname   string `json:"surname" example:"Pérez"`
	BirthDate string `json:"birth_date" example:"1990-05-01"`
	Gender    string `json:"gender" example:"female"`
	BloodType string `json:"blood_type" example:"O+"`
}

// ProfileService is the durable registry of user profiles plus the pointer to
// the currently active one.
type ProfileService struct {
	users   repository.UserRepository
	session repository.SessionRepository
}

func NewProfileService(users repository.UserRepository, session repository.SessionRepository) *ProfileService {
	return &ProfileService{users: users, session: session}
}

// ListProfiles returns all registered profiles in insertion order.
func (s *ProfileService) ListProfiles() ([]models.User, error) {
	return s.users.FindAll()
}

// RegisterProfile validates the input, persists a new profile under a fresh
// identifier and makes it the active one. Nothing is written on validation
// failure.
func (s *ProfileService) RegisterProfile(input RegisterProfileInput) (*models.User, error) {
	if err := validateProfileFields(input.Name, input.Surname, input.BirthDate); err != nil {
		return nil, err
	}

	gender := input.Gender
	if gender == "" {
		gender = models.GenderPreferNotToSay
	}
	bloodType := input.BloodType
	if bloodType == "" {
		bloodType = models.BloodTypeUnknown
	}

	user := &models.User{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Surname:   input.Surname,
		BirthDate: input.BirthDate,
		Gender:    gender,
		BloodType: bloodType,
	}

	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	if err := s.session.SetActiveUserID(user.ID); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateProfile replaces the stored profile with the same identifier
// wholesale. The active pointer is never touched.
func (s *ProfileService) UpdateProfile(user *models.User) error {
	if err := validateProfileFields(user.Name, user.Surname, user.BirthDate); err != nil {
		return err
	}

	err := s.users.Update(user)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Resource: "profile", ID: user.ID}
	}
	return err
}

// DeleteProfile removes the profile and, when it was the active one, clears
// the active pointer. Deleting an unknown ID is a no-op. The user's vital
// records are intentionally left in place.
func (s *ProfileService) DeleteProfile(id string) error {
	if err := s.users.Delete(id); err != nil {
		return err
	}

	activeID, err := s.session.GetActiveUserID()
	if err != nil {
		return err
	}
	if activeID == id {
		return s.session.ClearActiveUserID()
	}
	return nil
}

// SelectProfile sets the active pointer without checking that the identifier
// still exists. A stale pointer reads back as "no active profile".
func (s *ProfileService) SelectProfile(id string) error {
	return s.session.SetActiveUserID(id)
}

// ClearActive signs the current profile out.
func (s *ProfileService) ClearActive() error {
	return s.session.ClearActiveUserID()
}

// GetActive resolves the active pointer to a profile. Returns (nil, nil) when
// the pointer is unset or references a since-deleted profile.
func (s *ProfileService) GetActive() (*models.User, error) {
	activeID, err := s.session.GetActiveUserID()
	if err != nil {
		return nil, err
	}
	if activeID == "" {
		return nil, nil
	}

	user, err := s.users.FindByID(activeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func validateProfileFields(name, surname, birthDate string) error {
	fields := make(map[string]string)

	if name == "" {
		fields["name"] = "name is required"
	}
	if surname == "" {
		fields["surname"] = "surname is required"
	}
	if birthDate == "" {
		fields["birth_date"] = "birth date is required"
	} else {
		parsed, err := time.Parse("2006-01-02", birthDate)
		if err != nil {
			fields["birth_date"] = "birth date must be in YYYY-MM-DD format"
		} else if year := parsed.Year(); year < minBirthYear || year > time.Now().Year() {
			fields["birth_date"] = "birth date is out of range"
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
