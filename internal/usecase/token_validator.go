package usecase

import (
	"bulk-cleanup/internal/domain/operator"
	"bulk-cleanup/internal/pkg/jwt"
)

// TokenValidator resolves an access token to the operator it was issued for.
type TokenValidator interface {
	Identify(token string) (operator.Identity, error)
}

type jwtTokenValidator struct {
	verifier *jwt.Service
}

func NewTokenValidator(verifier *jwt.Service) TokenValidator {
	return &jwtTokenValidator{verifier: verifier}
}

// Identify rejects tokens whose role is unknown even when the signature is valid.
func (v *jwtTokenValidator) Identify(token string) (operator.Identity, error) {
	claims, err := v.verifier.Verify(token)
	if err != nil {
		return operator.Identity{}, err
	}
	role, err := operator.NewRole(claims.Role)
	if err != nil {
		return operator.Identity{}, err
	}
	return operator.Identity{UserID: claims.UserID, Role: role}, nil
}
