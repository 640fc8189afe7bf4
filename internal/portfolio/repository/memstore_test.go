package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/amaradesign/portfolio-backend/internal/portfolio/domain"
)

func insertFixture(title string, featured bool, order int) domain.InsertProject {
	return domain.InsertProject{
		Title:       title,
		Description: "D",
		Challenge:   "C",
		Solution:    "S",
		Impact:      "I",
		Image:       "img.png",
		Featured:    featured,
		Order:       order,
	}
}

func TestCreateProject_MonotonicIDs(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	first, err := store.CreateProject(ctx, insertFixture("one", false, 1))
	require.NoError(t, err)
	second, err := store.CreateProject(ctx, insertFixture("two", false, 2))
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)

	// deleted ids are never handed out again
	deleted, err := store.DeleteProject(ctx, second.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	third, err := store.CreateProject(ctx, insertFixture("three", false, 3))
	require.NoError(t, err)
	assert.Greater(t, third.ID, second.ID)
}

func TestCreateProject_DefaultsAndTimestamp(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	created, err := store.CreateProject(ctx, domain.InsertProject{
		Title:       "T",
		Description: "D",
		Challenge:   "C",
		Solution:    "S",
		Impact:      "I",
		Image:       "img.png",
		Order:       5,
	})
	require.NoError(t, err)

	got, err := store.GetProject(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, got.Featured)
	assert.Equal(t, 5, got.Order)
	assert.WithinDuration(t, time.Now(), got.UpdatedAt, time.Second)
}

func TestGetFeaturedProjects_SubsetSortedByOrder(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	_, err := store.CreateProject(ctx, insertFixture("plain", false, 2))
	require.NoError(t, err)
	_, err = store.CreateProject(ctx, insertFixture("late", true, 9))
	require.NoError(t, err)
	_, err = store.CreateProject(ctx, insertFixture("early", true, 0))
	require.NoError(t, err)

	all, err := store.GetAllProjects(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"early", "plain", "late"}, titles(all))

	featured, err := store.GetFeaturedProjects(ctx)
	require.NoError(t, err)
	require.Len(t, featured, 2)
	assert.Equal(t, []string{"early", "late"}, titles(featured))

	seen := make(map[int]bool, len(all))
	for _, p := range all {
		seen[p.ID] = true
	}
	for _, p := range featured {
		assert.True(t, seen[p.ID], "featured project %d missing from all projects", p.ID)
	}
}

func TestUpdateProject_PartialMerge(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	created, err := store.CreateProject(ctx, insertFixture("old", true, 4))
	require.NoError(t, err)

	newTitle := "New"
	updated, err := store.UpdateProject(ctx, created.ID, domain.ProjectPatch{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, created.Description, updated.Description)
	assert.Equal(t, created.Challenge, updated.Challenge)
	assert.Equal(t, created.Solution, updated.Solution)
	assert.Equal(t, created.Impact, updated.Impact)
	assert.Equal(t, created.Image, updated.Image)
	assert.Equal(t, created.Featured, updated.Featured)
	assert.Equal(t, created.Order, updated.Order)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestUpdateProject_NotFound(t *testing.T) {
	store := NewMemStore()

	title := "New"
	_, err := store.UpdateProject(context.Background(), 42, domain.ProjectPatch{Title: &title})
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestDeleteProject_Missing(t *testing.T) {
	store := NewMemStore()

	deleted, err := store.DeleteProject(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestCreateMessage(t *testing.T) {
	store := NewMemStore()

	msg, err := store.CreateMessage(context.Background(), domain.InsertMessage{
		Name:    "Ada",
		Email:   "ada@example.com",
		Message: "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, msg.ID)
	assert.WithinDuration(t, time.Now(), msg.CreatedAt, time.Second)
}

func TestCreateAdmin_HashesPassword(t *testing.T) {
	store := NewMemStore()

	admin, err := store.CreateAdmin(context.Background(), "ada", "correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", admin.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("correct horse")))
}

func TestCreateAdmin_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	first, err := store.CreateAdmin(ctx, "ada", "first password")
	require.NoError(t, err)

	_, err = store.CreateAdmin(ctx, "ada", "second password")
	assert.ErrorIs(t, err, domain.ErrAdminExists)

	// the stored hash must be untouched by the failed attempt
	got, err := store.GetAdminByUsername(ctx, "ada")
	require.NoError(t, err)
	assert.Equal(t, first.Password, got.Password)
}

func TestGetAdmin_ByIDAndUsername(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	created, err := store.CreateAdmin(ctx, "ada", "correct horse")
	require.NoError(t, err)

	byID, err := store.GetAdmin(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada", byID.Username)

	byName, err := store.GetAdminByUsername(ctx, "ada")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	_, err = store.GetAdmin(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrAdminNotFound)
	_, err = store.GetAdminByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrAdminNotFound)
}

func TestSeedDemoProjects(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	require.NoError(t, SeedDemoProjects(ctx, store))

	all, err := store.GetAllProjects(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	featured, err := store.GetFeaturedProjects(ctx)
	require.NoError(t, err)
	assert.Len(t, featured, 3)
}

func titles(projects []domain.Project) []string {
	out := make([]string, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.Title)
	}
	return out
}
