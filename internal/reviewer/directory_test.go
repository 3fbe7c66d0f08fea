package reviewer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruit/internal/reviewer/models"
	"recruit/internal/reviewer/store"
	"recruit/pkg/domain"
)

var (
	science = domain.SpecialtyKey{Faculty: "S", Specialty: "S1"}
	maths   = domain.SpecialtyKey{Faculty: "M", Specialty: "M1"}
)

func seeded() *store.InMemory {
	s := store.NewInMemory()
	s.Save(models.Reviewer{ID: 9, Role: domain.RoleDirector, Specialty: &science, Active: true})
	s.Save(models.Reviewer{ID: 5, Role: domain.RoleDirector, Specialty: &science, Active: true})
	s.Save(models.Reviewer{ID: 2, Role: domain.RoleDirector, Specialty: &science, Active: false})
	s.Save(models.Reviewer{ID: 3, Role: domain.RoleDean, Active: true})
	s.Save(models.Reviewer{ID: 4, Role: domain.RoleDirector, Specialty: &maths, Active: false})
	return s
}

func TestDirectory_ResolveEvaluator(t *testing.T) {
	d := NewDirectory(seeded())
	ctx := context.Background()

	t.Run("lowest active director wins", func(t *testing.T) {
		id, err := d.ResolveEvaluator(ctx, science)
		require.NoError(t, err)
		require.NotNil(t, id)
		assert.Equal(t, domain.UserID(5), *id)
	})

	t.Run("no active director yields nil", func(t *testing.T) {
		id, err := d.ResolveEvaluator(ctx, maths)
		require.NoError(t, err)
		assert.Nil(t, id)
	})
}

func TestDirectory_AssignedSpecialty(t *testing.T) {
	d := NewDirectory(seeded())
	ctx := context.Background()

	key, err := d.AssignedSpecialty(ctx, 9)
	require.NoError(t, err)
	require.NotNil(t, key)
	assert.Equal(t, science, *key)

	for _, id := range []domain.UserID{2, 3, 4, 404} {
		key, err := d.AssignedSpecialty(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, key, "reviewer %d should have no assignment", id)
	}
}

type failingStore struct{ err error }

func (f failingStore) FindByID(context.Context, domain.UserID) (*models.Reviewer, error) {
	return nil, f.err
}

func (f failingStore) FirstActiveDirector(context.Context, domain.SpecialtyKey) (*models.Reviewer, error) {
	return nil, f.err
}

func TestDirectory_PropagatesStoreFailures(t *testing.T) {
	boom := errors.New("db down")
	d := NewDirectory(failingStore{err: boom})

	_, err := d.ResolveEvaluator(context.Background(), science)
	assert.ErrorIs(t, err, boom)

	_, err = d.AssignedSpecialty(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
}
