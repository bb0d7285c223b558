package model

import (
	"encoding/json"
	"time"
)

// User is the canonical identity record held by the session manager.
// Components outside pkg/session receive read-only snapshots; only the
// session manager mutates it. Timestamps stay in the backend's RFC 3339
// string form because the backend owns them end to end.
type User struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	Email             string      `json:"email"`
	AccountType       AccountType `json:"accountType"`
	BarNumber         string      `json:"barNumber,omitempty"`
	Specialization    string      `json:"specialization,omitempty"`
	YearsOfExperience int         `json:"yearsOfExperience,omitempty"`
	Phone             string      `json:"phone,omitempty"`
	Address           string      `json:"address,omitempty"`
	IsEmailVerified   bool        `json:"isEmailVerified"`
	TwoFactorEnabled  bool        `json:"twoFactorEnabled"`
	CreatedAt         string      `json:"createdAt"`
	UpdatedAt         string      `json:"updatedAt,omitempty"`
}

// UserWire mirrors every shape the backend uses for a user record. The
// backend is inconsistent about field names (full_name vs name, user_type vs
// accountType, phone_number vs phone); each alias is decoded here and
// resolved in Canonical, so this file is the only place the aliases exist.
type UserWire struct {
	UserID            json.Number `json:"user_id"`
	ID                json.Number `json:"id"`
	FullName          string      `json:"full_name"`
	Name              string      `json:"name"`
	Email             string      `json:"email"`
	UserType          string      `json:"user_type"`
	AccountType       string      `json:"accountType"`
	PhoneNumber       string      `json:"phone_number"`
	Phone             string      `json:"phone"`
	BarNumber         string      `json:"bar_number"`
	Specialization    string      `json:"specialization"`
	YearsOfExperience int         `json:"years_of_experience"`
	Address           string      `json:"address"`
	CreatedAt         string      `json:"created_at"`
	UpdatedAt         string      `json:"updated_at"`
}

// Canonical resolves the wire aliases into a User. Aliased fields prefer the
// snake_case name the current backend emits, falling back to the older camel
// form. Missing timestamps default to now so the record is always renderable.
// emailVerified reflects the caller's context: a session validated against
// the identity endpoint implies a verified address, a fresh signup does not.
func (w UserWire) Canonical(now time.Time, emailVerified bool) User {
	id := w.UserID.String()
	if id == "" {
		id = w.ID.String()
	}
	name := w.FullName
	if name == "" {
		name = w.Name
	}
	phone := w.PhoneNumber
	if phone == "" {
		phone = w.Phone
	}
	fallback := now.UTC().Format(time.RFC3339)
	createdAt := w.CreatedAt
	if createdAt == "" {
		createdAt = fallback
	}
	updatedAt := w.UpdatedAt
	if updatedAt == "" {
		updatedAt = fallback
	}

	return User{
		ID:                id,
		Name:              name,
		Email:             w.Email,
		AccountType:       ParseAccountType(w.RawAccountType()),
		BarNumber:         w.BarNumber,
		Specialization:    w.Specialization,
		YearsOfExperience: w.YearsOfExperience,
		Phone:             phone,
		Address:           w.Address,
		IsEmailVerified:   emailVerified,
		TwoFactorEnabled:  false,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
}

// RawAccountType returns the backend's role string before normalization,
// resolving only the field-name alias. The registration redirect switches on
// this raw value: an unknown role must land on home, not inherit the client
// surface that ParseAccountType's fallback would give it.
func (w UserWire) RawAccountType() string {
	if w.AccountType != "" {
		return w.AccountType
	}
	return w.UserType
}

// RegisterData carries the fields collected by the signup form.
type RegisterData struct {
	Name              string      `json:"name"`
	Email             string      `json:"email"`
	Password          string      `json:"password"`
	AccountType       AccountType `json:"accountType"`
	BarNumber         string      `json:"barNumber,omitempty"`
	Specialization    string      `json:"specialization,omitempty"`
	YearsOfExperience int         `json:"yearsOfExperience,omitempty"`
	Phone             string      `json:"phone,omitempty"`
	Address           string      `json:"address,omitempty"`
}
