package http

import (
	"time"

	"github.com/amaradesign/portfolio-backend/internal/auth"
)

// CookieOptions controls the session cookie issued at login.
type CookieOptions struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

// Handler bundles the dependencies for the auth HTTP endpoints.
type Handler struct {
	svc    *auth.Service
	cookie CookieOptions
}

func New(svc *auth.Service, cookie CookieOptions) *Handler {
	return &Handler{svc: svc, cookie: cookie}
}
