package models

// AppSetting is a single persisted key-value entry. The active-profile pointer
// lives here under SettingCurrentUserID.
type AppSetting struct {
	Key   string `gorm:"primaryKey" json:"key" example:"current_user_id"`
	Value string `json:"value" example:"9f1c2d3e-4b5a-6789-abcd-ef0123456789"`
}

const SettingCurrentUserID = "current_user_id"
