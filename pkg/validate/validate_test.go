package validate

import (
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormCommonRules(t *testing.T) {
	rules := Rules{
		"email":    EmailRule,
		"password": PasswordRule,
		"phone":    PhoneRule,
	}

	tests := []struct {
		name   string
		values map[string]string
		want   Errors
	}{
		{
			name:   "all valid",
			values: map[string]string{"email": "a@b.com", "password": "secret123", "phone": "+1 (555) 010-0100"},
			want:   Errors{},
		},
		{
			name:   "bad email",
			values: map[string]string{"email": "not-an-email", "password": "secret123", "phone": "5550100"},
			want:   Errors{"email": "Please enter a valid email address."},
		},
		{
			name:   "short password",
			values: map[string]string{"email": "a@b.com", "password": "abc", "phone": "5550100"},
			want:   Errors{"password": "Password must be at least 6 characters long."},
		},
		{
			name:   "everything empty",
			values: map[string]string{},
			want: Errors{
				"email":    "Please enter a valid email address.",
				"password": "Password must be at least 6 characters long.",
				"phone":    "Please enter a valid phone number.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Form(tt.values, rules)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Form() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFormStopsAtFirstFailure(t *testing.T) {
	rules := Rules{
		"code": {
			Required:  true,
			MinLength: 4,
			Pattern:   regexp.MustCompile(`^[0-9]+$`),
		},
	}

	got := Form(map[string]string{"code": ""}, rules)
	if got["code"] != "code is required." {
		t.Errorf("empty value should fail the required check first, got %q", got["code"])
	}

	got = Form(map[string]string{"code": "ab"}, rules)
	if got["code"] != "code must be at least 4 characters." {
		t.Errorf("short value should fail the length check before the pattern, got %q", got["code"])
	}
}

func TestFormCustomRule(t *testing.T) {
	rules := Rules{
		"confirmPassword": {
			Required: true,
			Custom: func(v string) string {
				if v != "secret123" {
					return "Passwords do not match."
				}
				return ""
			},
		},
	}

	if got := Form(map[string]string{"confirmPassword": "secret123"}, rules); len(got) != 0 {
		t.Errorf("matching value should pass, got %v", got)
	}
	got := Form(map[string]string{"confirmPassword": "other"}, rules)
	if got["confirmPassword"] != "Passwords do not match." {
		t.Errorf("custom message not surfaced, got %q", got["confirmPassword"])
	}
}

func TestFieldLabel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"email", "email"},
		{"barNumber", "bar number"},
		{"yearsOfExperience", "years of experience"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := fieldLabel(tt.input); got != tt.want {
				t.Errorf("fieldLabel(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
