package request

import "quotedesk/internal/usecase"

type InvitationRequest struct {
	BusinessID string `json:"business_id"`
	Email      string `json:"email" binding:"required"`
	Role       string `json:"role"`
}

type ResolveInvitationRequest struct {
	Email string `json:"email" binding:"required"`
}

type JoinTeamRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required"`
}

func (r JoinTeamRequest) ToInput() usecase.UserInput {
	return usecase.UserInput{FullName: r.FullName, Email: r.Email}
}
