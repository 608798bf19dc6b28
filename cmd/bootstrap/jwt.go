package bootstrap

import (
	"fmt"
	"time"

	"bulk-cleanup/internal/pkg/config"
	"bulk-cleanup/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	return newJWTService(cfg.JWT)
}

func newJWTService(jc config.JWTConfig) (*jwt.Service, error) {
	ttl, err := time.ParseDuration(jc.Duration)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_DURATION: %w", err)
	}
	return jwt.NewService(jwt.Options{
		Secret: jc.Secret,
		TTL:    ttl,
		Issuer: jc.Issuer,
		Leeway: jc.Leeway,
	}), nil
}
