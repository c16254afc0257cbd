package bootstrap

import (
	"time"

	"promo-api/internal/pkg/config"
	"promo-api/internal/pkg/jwt"

	"go.uber.org/fx"
)

var AuthModule = fx.Module("auth",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	tokenDuration, err := time.ParseDuration(cfg.Auth.TokenDuration)
	if err != nil {
		panic("invalid AUTH_TOKEN_DURATION: " + err.Error())
	}

	return jwt.NewService(cfg.Auth.Secret, tokenDuration)
}
