package usecase

import (
	"promo-api/internal/domain/user"
	"promo-api/internal/pkg/jwt"
)

// TokenValidator is the identity provider contract: a bearer token either
// resolves to a caller identity or fails as unauthenticated.
type TokenValidator interface {
	ValidateToken(tokenString string) (user.Identity, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (user.Identity, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return user.Identity{}, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return user.Identity{}, err
	}

	return user.Identity{
		Subject: claims.Subject,
		Email:   claims.Email,
		Role:    role,
	}, nil
}
