package response

import "quotedesk/internal/domain/entities"

type ProfileResponse struct {
	Business entities.BusinessProfile `json:"business"`
	User     entities.UserProfile     `json:"user"`
}

func FromProfiles(b entities.BusinessProfile, u entities.UserProfile) ProfileResponse {
	return ProfileResponse{Business: b, User: u}
}
