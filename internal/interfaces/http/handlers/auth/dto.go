package auth

import "github.com/relatorio-inc/relatorio/internal/application/user/usecases"

type LoginRequest struct {
	// Login accepts a username or an e-mail address.
	Login    string `json:"login" binding:"required,max=254"`
	Password string `json:"password" binding:"required,max=128"`
}

func (r *LoginRequest) ToCommand() usecases.LoginCommand {
	return usecases.LoginCommand{Login: r.Login, Password: r.Password}
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type GoogleLoginResponse struct {
	AuthURL string `json:"auth_url"`
}
