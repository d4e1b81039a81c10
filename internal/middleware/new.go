package middleware

import (
	"financial-coach/config"
	"financial-coach/internal/auth"
	"financial-coach/pkg/log"
)

type Middleware struct {
	l           log.Logger
	verifier    auth.Verifier
	authConfig  config.AuthConfig
	corsConfig  config.CORSConfig
	rateLimiter *rateLimiter
}

func New(l log.Logger, verifier auth.Verifier, cfg *config.Config) Middleware {
	return Middleware{
		l:           l,
		verifier:    verifier,
		authConfig:  cfg.Auth,
		corsConfig:  cfg.CORS,
		rateLimiter: newRateLimiter(cfg.RateLimit.PerMin),
	}
}
