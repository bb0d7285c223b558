package model

// NotificationSettings toggles each notification channel.
type NotificationSettings struct {
	EmailNotifications   *bool `json:"email_notifications,omitempty"`
	PushNotifications    *bool `json:"push_notifications,omitempty"`
	CaseUpdates          *bool `json:"case_updates,omitempty"`
	AppointmentReminders *bool `json:"appointment_reminders,omitempty"`
	InvoiceAlerts        *bool `json:"invoice_alerts,omitempty"`
	TeamUpdates          *bool `json:"team_updates,omitempty"`
}

// AppearanceSettings holds display preferences.
type AppearanceSettings struct {
	Theme      string `json:"theme,omitempty"`
	Language   string `json:"language,omitempty"`
	Timezone   string `json:"timezone,omitempty"`
	DateFormat string `json:"date_format,omitempty"`
}

// Preferences groups all per-user settings. Pointers let a partial update
// leave untouched sections out of the payload.
type Preferences struct {
	NotificationSettings *NotificationSettings `json:"notification_settings,omitempty"`
	AppearanceSettings   *AppearanceSettings   `json:"appearance_settings,omitempty"`
}

// ProfileUpdate carries the settings-page profile form.
type ProfileUpdate struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone,omitempty"`
	Address           string `json:"address,omitempty"`
	Specialization    string `json:"specialization,omitempty"`
	BarNumber         string `json:"barNumber,omitempty"`
	YearsOfExperience int    `json:"yearsOfExperience,omitempty"`
}

// PasswordChange carries the change-password form.
type PasswordChange struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}
