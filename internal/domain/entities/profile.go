package entities

import "time"

// BusinessProfile is the tradesperson's business as captured during onboarding.
type BusinessProfile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Trade     string    `json:"trade,omitempty"`
	Address   string    `json:"address,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	VATNumber string    `json:"vat_number,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserProfile is the signed-in user.
type UserProfile struct {
	ID         string    `json:"id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	BusinessID string    `json:"business_id,omitempty"`
	Role       string    `json:"role,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}
