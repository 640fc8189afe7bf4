package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/amaradesign/portfolio-backend/internal/portfolio/domain"
)

// MemStore keeps all entities in process memory. Ids come from per-entity
// counters and are never reused after a delete. The server loses everything
// on restart; that is the deal.
type MemStore struct {
	mu        sync.RWMutex
	projects  map[int]domain.Project
	messages  map[int]domain.Message
	admins    map[int]domain.Admin
	projectID int
	messageID int
	adminID   int
}

func NewMemStore() *MemStore {
	return &MemStore{
		projects:  make(map[int]domain.Project),
		messages:  make(map[int]domain.Message),
		admins:    make(map[int]domain.Admin),
		projectID: 1,
		messageID: 1,
		adminID:   1,
	}
}

// Projects

func (s *MemStore) GetAllProjects(_ context.Context) ([]domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Project, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, p)
	}
	sortByOrder(out)
	return out, nil
}

func (s *MemStore) GetFeaturedProjects(_ context.Context) ([]domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Project, 0, len(s.projects))
	for _, p := range s.projects {
		if p.Featured {
			out = append(out, p)
		}
	}
	sortByOrder(out)
	return out, nil
}

func (s *MemStore) GetProject(_ context.Context, id int) (*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.projects[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	return &p, nil
}

func (s *MemStore) CreateProject(_ context.Context, in domain.InsertProject) (*domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := domain.Project{
		ID:           s.projectID,
		Title:        in.Title,
		Description:  in.Description,
		Challenge:    in.Challenge,
		Solution:     in.Solution,
		Impact:       in.Impact,
		Image:        in.Image,
		Featured:     in.Featured,
		Order:        in.Order,
		CaseStudyURL: in.CaseStudyURL,
		UpdatedAt:    time.Now(),
	}
	s.projectID++
	s.projects[p.ID] = p
	return &p, nil
}

func (s *MemStore) UpdateProject(_ context.Context, id int, patch domain.ProjectPatch) (*domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.projects[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}

	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Challenge != nil {
		p.Challenge = *patch.Challenge
	}
	if patch.Solution != nil {
		p.Solution = *patch.Solution
	}
	if patch.Impact != nil {
		p.Impact = *patch.Impact
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Featured != nil {
		p.Featured = *patch.Featured
	}
	if patch.Order != nil {
		p.Order = *patch.Order
	}
	if patch.CaseStudyURL != nil {
		p.CaseStudyURL = *patch.CaseStudyURL
	}
	p.UpdatedAt = time.Now()

	s.projects[id] = p
	return &p, nil
}

func (s *MemStore) DeleteProject(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[id]; !ok {
		return false, nil
	}
	delete(s.projects, id)
	return true, nil
}

// Messages

func (s *MemStore) CreateMessage(_ context.Context, in domain.InsertMessage) (*domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := domain.Message{
		ID:        s.messageID,
		Name:      in.Name,
		Email:     in.Email,
		Message:   in.Message,
		CreatedAt: time.Now(),
	}
	s.messageID++
	s.messages[m.ID] = m
	return &m, nil
}

// Admins

func (s *MemStore) GetAdmin(_ context.Context, id int) (*domain.Admin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.admins[id]
	if !ok {
		return nil, domain.ErrAdminNotFound
	}
	return &a, nil
}

func (s *MemStore) GetAdminByUsername(_ context.Context, username string) (*domain.Admin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.admins {
		if a.Username == username {
			return &a, nil
		}
	}
	return nil, domain.ErrAdminNotFound
}

// CreateAdmin hashes the plaintext password before storing. Hashing is the
// one CPU-heavy operation in this store; a bcrypt failure is fatal and
// propagates.
func (s *MemStore) CreateAdmin(_ context.Context, username, password string) (*domain.Admin, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.admins {
		if a.Username == username {
			return nil, domain.ErrAdminExists
		}
	}

	a := domain.Admin{
		ID:        s.adminID,
		Username:  username,
		Password:  string(hash),
		CreatedAt: time.Now(),
	}
	s.adminID++
	s.admins[a.ID] = a
	return &a, nil
}

func sortByOrder(projects []domain.Project) {
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].Order < projects[j].Order
	})
}
