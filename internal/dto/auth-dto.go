package dto

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenPairDTO struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type LoginResponseDTO struct {
	UserID    string `json:"userId"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Portfolio string `json:"portfolio"`
	TokenPairDTO
}

type RefreshDTO struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}
