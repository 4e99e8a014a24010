package adapters

import (
	"github.com/relatorio-inc/relatorio/internal/application/user/usecases"
	"github.com/relatorio-inc/relatorio/internal/infrastructure/auth"
)

// TokenServiceAdapter exposes auth.JWTService as usecases.TokenService.
type TokenServiceAdapter struct {
	jwt *auth.JWTService
}

func NewTokenServiceAdapter(jwt *auth.JWTService) *TokenServiceAdapter {
	return &TokenServiceAdapter{jwt: jwt}
}

func (a *TokenServiceAdapter) Generate(userID, tenantID uint, role string) (*usecases.TokenPair, error) {
	pair, err := a.jwt.Generate(userID, tenantID, role)
	if err != nil {
		return nil, err
	}
	return &usecases.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

func (a *TokenServiceAdapter) ParseRefresh(token string) (*usecases.TokenClaims, error) {
	claims, err := a.jwt.VerifyRefresh(token)
	if err != nil {
		return nil, err
	}
	userID, err := claims.UserID()
	if err != nil {
		return nil, err
	}
	return &usecases.TokenClaims{
		UserID:   userID,
		TenantID: claims.TenantID,
		Role:     claims.Role,
	}, nil
}
