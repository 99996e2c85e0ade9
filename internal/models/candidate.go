// internal/models/candidate.go
package models

// CandidateProfile is the profile record the remote API keeps per user.
// At most one profile is associated with the active session.
type CandidateProfile struct {
	ID               int64  `json:"id"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `json:"email"`
	PreferredRole    string `json:"preferredRole"`
	PhoneNumber      string `json:"phoneNumber"`
	CountryPhoneCode string `json:"countryPhoneCode"`
	DateOfBirth      string `json:"dateOfBirth,omitempty"`
}

// CandidateProfileInput is the onboarding payload for profile creation.
type CandidateProfileInput struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `json:"email"`
	PreferredRole    string `json:"preferredRole"`
	PhoneNumber      string `json:"phoneNumber"`
	CountryPhoneCode string `json:"countryPhoneCode"`
	DateOfBirth      string `json:"dateOfBirth,omitempty"`
}
