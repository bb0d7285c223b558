package mockapi

import (
	"net/http"

	"github.com/lexmentor/lexclient/pkg/model"
	"golang.org/x/crypto/bcrypt"
)

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	user := s.users[requestUserID(r)]
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, user.wire())
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var body model.ProfileUpdate
	if !decodeBody(w, r, &body) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.users[requestUserID(r)]
	if body.Name != "" {
		user.Name = body.Name
	}
	if body.Email != "" && body.Email != user.Email {
		if _, taken := s.usersByEmail[body.Email]; taken {
			writeDetail(w, http.StatusBadRequest, "Email already registered")
			return
		}
		delete(s.usersByEmail, user.Email)
		user.Email = body.Email
		s.usersByEmail[user.Email] = user.ID
	}
	if body.Phone != "" {
		user.Phone = body.Phone
	}
	if body.Address != "" {
		user.Address = body.Address
	}
	if body.Specialization != "" {
		user.Specialization = body.Specialization
	}
	if body.BarNumber != "" {
		user.BarNumber = body.BarNumber
	}
	if body.YearsOfExperience != 0 {
		user.YearsOfExperience = body.YearsOfExperience
	}
	user.UpdatedAt = s.now()
	writeJSON(w, http.StatusOK, user.wire())
}

func (s *Server) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	var body model.PasswordChange
	if !decodeBody(w, r, &body) {
		return
	}

	var errs []fieldError
	if body.CurrentPassword == "" {
		errs = append(errs, missingField("current_password"))
	}
	if body.NewPassword == "" {
		errs = append(errs, missingField("new_password"))
	}
	if len(errs) > 0 {
		writeValidation(w, errs)
		return
	}
	if body.ConfirmPassword != "" && body.ConfirmPassword != body.NewPassword {
		writeDetail(w, http.StatusBadRequest, "Passwords do not match")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.users[requestUserID(r)]
	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(body.CurrentPassword)) != nil {
		writeDetail(w, http.StatusBadRequest, "Current password is incorrect")
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(body.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "could not hash password")
		return
	}
	user.PasswordHash = hash
	user.UpdatedAt = s.now()
	writeJSON(w, http.StatusOK, map[string]string{"message": "Password updated"})
}

func (s *Server) handleGetPreferences(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.userPreferences(requestUserID(r)))
}

func (s *Server) handleUpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var body map[string]map[string]any
	if !decodeBody(w, r, &body) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prefs := s.userPreferences(requestUserID(r))
	for section, fields := range body {
		current, ok := prefs[section].(map[string]any)
		if !ok {
			current = map[string]any{}
		}
		for key, value := range fields {
			current[key] = value
		}
		prefs[section] = current
	}
	writeJSON(w, http.StatusOK, prefs)
}

// userPreferences returns the stored preference map, creating the defaults
// on first touch. Callers hold the lock.
func (s *Server) userPreferences(userID int64) map[string]any {
	prefs, ok := s.preferences[userID]
	if !ok {
		prefs = map[string]any{
			"notification_settings": map[string]any{
				"email_notifications":   true,
				"push_notifications":    true,
				"case_updates":          true,
				"appointment_reminders": true,
				"invoice_alerts":        true,
				"team_updates":          true,
			},
			"appearance_settings": map[string]any{
				"theme":       "light",
				"language":    "en",
				"timezone":    "UTC",
				"date_format": "DD/MM/YYYY",
			},
		}
		s.preferences[userID] = prefs
	}
	return prefs
}
