package response

import (
	"time"

	"quotedesk/internal/domain/entities"
	"quotedesk/internal/domain/invitation"
)

type InvitationResponse struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"business_id"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type InvitationMatchResponse struct {
	BusinessID string             `json:"business_id"`
	Tier       string             `json:"tier"`
	Invitation InvitationResponse `json:"invitation"`
}

func FromInvitation(i entities.TeamInvitation) InvitationResponse {
	return InvitationResponse{
		ID:         i.ID,
		BusinessID: i.BusinessID,
		Email:      i.Email,
		Role:       i.Role,
		Status:     string(i.Status),
		CreatedAt:  i.CreatedAt,
	}
}

func FromInvitations(items []entities.TeamInvitation) []InvitationResponse {
	out := make([]InvitationResponse, 0, len(items))
	for _, i := range items {
		out = append(out, FromInvitation(i))
	}
	return out
}

func FromMatch(m invitation.Match) InvitationMatchResponse {
	return InvitationMatchResponse{
		BusinessID: m.BusinessID,
		Tier:       string(m.Tier),
		Invitation: FromInvitation(m.Invitation),
	}
}
