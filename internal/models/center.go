package models

// MedicalCenter is one facility returned by the nearby-centers lookup.
type MedicalCenter struct {
	Name      string  `json:"name" example:"Hospital General San Juan de Dios"`
	Type      string  `json:"type" example:"hospital"`
	Latitude  float64 `json:"latitude" example:"-17.3895"`
	Longitude float64 `json:"longitude" example:"-66.1568"`
	Address   string  `json:"address,omitempty"`
}
