package portfolio

import (
	"context"

	"github.com/amaradesign/portfolio-backend/internal/portfolio/domain"
)

// Storage is the single source of truth for portfolio entities. It performs
// no validation and no authentication; callers are trusted to have done both.
// Implementations signal absence with the domain sentinel errors rather than
// inventing their own.
type Storage interface {
	// Projects
	GetAllProjects(ctx context.Context) ([]domain.Project, error)
	GetFeaturedProjects(ctx context.Context) ([]domain.Project, error)
	GetProject(ctx context.Context, id int) (*domain.Project, error)
	CreateProject(ctx context.Context, in domain.InsertProject) (*domain.Project, error)
	UpdateProject(ctx context.Context, id int, patch domain.ProjectPatch) (*domain.Project, error)
	DeleteProject(ctx context.Context, id int) (bool, error)

	// Messages
	CreateMessage(ctx context.Context, in domain.InsertMessage) (*domain.Message, error)

	// Admins
	GetAdmin(ctx context.Context, id int) (*domain.Admin, error)
	GetAdminByUsername(ctx context.Context, username string) (*domain.Admin, error)
	CreateAdmin(ctx context.Context, username, password string) (*domain.Admin, error)
}
