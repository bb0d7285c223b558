package model

// AccountType identifies the kind of account a user holds.
type AccountType string

const (
	AccountLawyer AccountType = "lawyer"
	AccountClient AccountType = "client"
	AccountAdmin  AccountType = "admin"
)

// ParseAccountType converts a backend user_type/accountType value to an
// AccountType. Unrecognised values fall back to AccountClient, matching
// what the backend assigns to unclassified signups.
func ParseAccountType(s string) AccountType {
	switch s {
	case "lawyer":
		return AccountLawyer
	case "admin":
		return AccountAdmin
	default:
		return AccountClient
	}
}

// Valid returns true if the account type is a recognised value.
func (a AccountType) Valid() bool {
	switch a {
	case AccountLawyer, AccountClient, AccountAdmin:
		return true
	}
	return false
}

func (a AccountType) String() string {
	return string(a)
}

// LandingPath returns the role-specific destination a freshly registered
// user is sent to. Unknown roles land on the home page.
func (a AccountType) LandingPath() string {
	switch a {
	case AccountLawyer:
		return "/dashboard"
	case AccountClient:
		return "/chat"
	case AccountAdmin:
		return "/admin"
	default:
		return "/"
	}
}
