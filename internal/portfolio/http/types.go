package http

import "github.com/amaradesign/portfolio-backend/internal/portfolio"

// Handler bundles the dependencies for portfolio HTTP endpoints. It holds no
// entity state of its own; everything lives behind the Storage interface.
type Handler struct {
	store portfolio.Storage
}

func New(store portfolio.Storage) *Handler {
	return &Handler{store: store}
}
