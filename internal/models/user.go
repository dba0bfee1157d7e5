package models

import (
	"time"
)

// Gender values accepted for a profile.
const (
	GenderFemale         = "female"
	GenderMale           = "male"
	GenderOther          = "other"
	GenderPreferNotToSay = "prefer_not_to_say"
)

// BloodTypeUnknown is the default when a user does not know their blood type.
const BloodTypeUnknown = "unknown"

var Genders = []string{GenderFemale, GenderMale, GenderOther, GenderPreferNotToSay}

var BloodTypes = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-", BloodTypeUnknown}

// User is a registered local profile. There are no credentials; identity is
// just the opaque ID assigned at registration time.
type User struct {
	ID        string    `gorm:"primaryKey" json:"id" example:"9f1c2d3e-4b5a-6789-abcd-ef0123456789"`
	CreatedAt time.Time `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	Name      string    `json:"name" example:"Ana"`
	Surname   string    `json:"surname" example:"Pérez"`
	BirthDate string    `json:"birth_date" example:"1990-05-01"`
	Gender    string    `json:"gender" example:"female"`
	BloodType string    `json:"blood_type" example:"O+"`
}
