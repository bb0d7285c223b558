package mockapi

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type ctxKey int

const userIDKey ctxKey = 0

// userAccount is a registered user plus their bcrypt password hash.
type userAccount struct {
	ID                int64
	Name              string
	Email             string
	PasswordHash      []byte
	UserType          string
	BarNumber         string
	Specialization    string
	YearsOfExperience int
	Phone             string
	Address           string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// wire renders the account in the backend's snake_case user shape.
func (u *userAccount) wire() map[string]any {
	return map[string]any{
		"user_id":             u.ID,
		"full_name":           u.Name,
		"email":               u.Email,
		"user_type":           u.UserType,
		"bar_number":          u.BarNumber,
		"specialization":      u.Specialization,
		"years_of_experience": u.YearsOfExperience,
		"phone_number":        u.Phone,
		"address":             u.Address,
		"created_at":          u.CreatedAt.Format(time.RFC3339),
		"updated_at":          u.UpdatedAt.Format(time.RFC3339),
	}
}

func (s *Server) issueToken(userID int64) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(s.now()),
		ExpiresAt: jwt.NewNumericDate(s.now().Add(24 * time.Hour)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}

func (s *Server) parseToken(raw string) (int64, error) {
	token, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		return s.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, err
	}
	claims := token.Claims.(*jwt.RegisteredClaims)
	return strconv.ParseInt(claims.Subject, 10, 64)
}

// requireAuth rejects requests without a valid bearer token and stashes the
// user ID in the request context.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			writeDetail(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		userID, err := s.parseToken(raw)
		if err != nil {
			writeDetail(w, http.StatusUnauthorized, "Could not validate credentials")
			return
		}

		s.mu.Lock()
		_, exists := s.users[userID]
		s.mu.Unlock()
		if !exists {
			writeDetail(w, http.StatusUnauthorized, "Could not validate credentials")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
	})
}

func requestUserID(r *http.Request) int64 {
	id, _ := r.Context().Value(userIDKey).(int64)
	return id
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name              string `json:"name"`
		Email             string `json:"email"`
		Password          string `json:"password"`
		AccountType       string `json:"accountType"`
		BarNumber         string `json:"barNumber"`
		Specialization    string `json:"specialization"`
		YearsOfExperience int    `json:"yearsOfExperience"`
		Phone             string `json:"phone"`
		Address           string `json:"address"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	var errs []fieldError
	if body.Name == "" {
		errs = append(errs, missingField("name"))
	}
	if body.Email == "" {
		errs = append(errs, missingField("email"))
	}
	if body.Password == "" {
		errs = append(errs, missingField("password"))
	}
	if len(errs) > 0 {
		writeValidation(w, errs)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.usersByEmail[body.Email]; taken {
		writeDetail(w, http.StatusBadRequest, "Email already registered")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "could not hash password")
		return
	}

	accountType := body.AccountType
	if accountType == "" {
		accountType = "client"
	}
	user := &userAccount{
		ID:                s.nextUserID,
		Name:              body.Name,
		Email:             body.Email,
		PasswordHash:      hash,
		UserType:          accountType,
		BarNumber:         body.BarNumber,
		Specialization:    body.Specialization,
		YearsOfExperience: body.YearsOfExperience,
		Phone:             body.Phone,
		Address:           body.Address,
		CreatedAt:         s.now(),
		UpdatedAt:         s.now(),
	}
	s.nextUserID++
	s.users[user.ID] = user
	s.usersByEmail[user.Email] = user.ID

	token, err := s.issueToken(user.ID)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "could not issue token")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"access_token": token,
		"token_type":   "bearer",
		"user":         user.wire(),
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	// The login endpoint takes OAuth2-style form fields; both multipart
	// and urlencoded bodies land in FormValue.
	if err := r.ParseMultipartForm(1 << 20); err != nil {
		if err := r.ParseForm(); err != nil {
			writeValidation(w, []fieldError{missingField("username")})
			return
		}
	}
	email := r.FormValue("username")
	password := r.FormValue("password")
	if email == "" || password == "" {
		var errs []fieldError
		if email == "" {
			errs = append(errs, missingField("username"))
		}
		if password == "" {
			errs = append(errs, missingField("password"))
		}
		writeValidation(w, errs)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	userID, ok := s.usersByEmail[email]
	if !ok {
		writeDetail(w, http.StatusUnauthorized, "Incorrect email or password")
		return
	}
	user := s.users[userID]
	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		writeDetail(w, http.StatusUnauthorized, "Incorrect email or password")
		return
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "could not issue token")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"access_token": token,
		"token_type":   "bearer",
		"user":         user.wire(),
	})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	user := s.users[requestUserID(r)]
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, user.wire())
}

func (s *Server) handleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if body.Email == "" {
		writeValidation(w, []fieldError{missingField("email")})
		return
	}
	// Whether or not the address exists, answer the same way.
	writeJSON(w, http.StatusOK, map[string]string{"message": "If the address exists, a reset link has been sent."})
}
