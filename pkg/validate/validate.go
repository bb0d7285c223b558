// Package validate checks form input client-side before it is submitted,
// so obvious mistakes never cost a round trip. Backend 422 responses remain
// authoritative; these rules only mirror the common ones.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Rule constrains one form field. Custom runs last and returns a message,
// or "" when the value is acceptable.
type Rule struct {
	Required  bool
	MinLength int
	MaxLength int
	Pattern   *regexp.Regexp
	Message   string
	Custom    func(value string) string
}

// Rules maps field names to their constraints.
type Rules map[string]Rule

// Errors maps field names to human-readable messages. An empty map means
// the form passed.
type Errors map[string]string

// Common rules shared by the login, signup, and settings forms.
var (
	EmailRule = Rule{
		Required: true,
		Pattern:  regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`),
		Message:  "Please enter a valid email address.",
	}
	PasswordRule = Rule{
		Required:  true,
		MinLength: 6,
		Message:   "Password must be at least 6 characters long.",
	}
	PhoneRule = Rule{
		Pattern: regexp.MustCompile(`^\+?[0-9\s\-()]{7,20}$`),
		Message: "Please enter a valid phone number.",
	}
)

// Form checks values against rules and returns per-field messages. Each
// field stops at its first failing constraint. Optional fields (Required
// false) with empty values still run pattern checks against the empty
// string, matching the form behavior users already see.
func Form(values map[string]string, rules Rules) Errors {
	errs := Errors{}

	for field, rule := range rules {
		value := values[field]

		if rule.Required && strings.TrimSpace(value) == "" {
			errs[field] = messageOr(rule, fieldLabel(field)+" is required.")
			continue
		}
		if rule.MinLength > 0 && len(value) < rule.MinLength {
			errs[field] = messageOr(rule, fmt.Sprintf("%s must be at least %d characters.", fieldLabel(field), rule.MinLength))
			continue
		}
		if rule.MaxLength > 0 && len(value) > rule.MaxLength {
			errs[field] = messageOr(rule, fmt.Sprintf("%s must be no more than %d characters.", fieldLabel(field), rule.MaxLength))
			continue
		}
		if rule.Pattern != nil && !rule.Pattern.MatchString(value) {
			errs[field] = messageOr(rule, "Please enter a valid "+fieldLabel(field)+".")
			continue
		}
		if rule.Custom != nil {
			if msg := rule.Custom(value); msg != "" {
				errs[field] = msg
			}
		}
	}

	return errs
}

func messageOr(rule Rule, fallback string) string {
	if rule.Message != "" {
		return rule.Message
	}
	return fallback
}

// fieldLabel turns a camelCase field name into a spaced lowercase label,
// e.g. "barNumber" becomes "bar number".
func fieldLabel(field string) string {
	var b strings.Builder
	for _, r := range field {
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
