package request

import "quotedesk/internal/usecase"

type BusinessRequest struct {
	Name      string `json:"name"`
	Trade     string `json:"trade"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	VATNumber string `json:"vat_number"`
}

type UserRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

type OnboardingRequest struct {
	Business BusinessRequest `json:"business"`
	User     UserRequest     `json:"user"`
}

func (r BusinessRequest) ToInput() usecase.BusinessInput {
	return usecase.BusinessInput{
		Name:      r.Name,
		Trade:     r.Trade,
		Address:   r.Address,
		Phone:     r.Phone,
		Email:     r.Email,
		VATNumber: r.VATNumber,
	}
}

func (r UserRequest) ToInput() usecase.UserInput {
	return usecase.UserInput{FullName: r.FullName, Email: r.Email}
}

func (r OnboardingRequest) ToInput() usecase.OnboardingInput {
	return usecase.OnboardingInput{Business: r.Business.ToInput(), User: r.User.ToInput()}
}
