package entities

import "time"

type InvitationStatus string

const (
	InvitationStatusPending InvitationStatus = "pending"
	InvitationStatusActive  InvitationStatus = "active"
)

// TeamInvitation grants an email permission to join a business team on sign-up.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (business_id-index): business_id
//
// Email is the case-insensitive key and is always stored lowercased.
type TeamInvitation struct {
	ID         string           `json:"id"`
	BusinessID string           `json:"business_id"`
	Email      string           `json:"email"`
	Role       string           `json:"role"`
	Status     InvitationStatus `json:"status"`
	CreatedAt  time.Time        `json:"created_at"`
}

func (i TeamInvitation) IsPending() bool {
	return i.Status == InvitationStatusPending
}
