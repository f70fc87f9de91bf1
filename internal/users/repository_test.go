package users

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func seedRecord(t *testing.T, repo *MemoryRepository, id, name, email string) User {
	t.Helper()
	now := time.Now()
	u := User{ID: id, Name: name, Email: email, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repo.Insert(u))
	return u
}

func TestListInsertionOrder(t *testing.T) {
	repo := NewMemoryRepository()
	seedRecord(t, repo, "a", "Ann", "ann@x.com")
	seedRecord(t, repo, "b", "Bob", "bob@x.com")
	seedRecord(t, repo, "c", "Cid", "cid@x.com")

	records := repo.List()
	require.Len(t, records, 3)
	require.Equal(t, "a", records[0].ID)
	require.Equal(t, "b", records[1].ID)
	require.Equal(t, "c", records[2].ID)

	_, err := repo.Delete("b")
	require.NoError(t, err)

	records = repo.List()
	require.Len(t, records, 2)
	require.Equal(t, "a", records[0].ID)
	require.Equal(t, "c", records[1].ID)
}

func TestGetReturnsCopy(t *testing.T) {
	repo := NewMemoryRepository()
	now := time.Now()
	age := 41
	require.NoError(t, repo.Insert(User{
		ID: "a", Name: "Ann", Email: "ann@x.com", Age: &age,
		CreatedAt: now, UpdatedAt: now,
	}))

	got, err := repo.Get("a")
	require.NoError(t, err)
	*got.Age = 99
	got.Name = "Mallory"

	again, err := repo.Get("a")
	require.NoError(t, err)
	require.Equal(t, "Ann", again.Name)
	require.Equal(t, 41, *again.Age)
}

func TestEmailExistsExcludeID(t *testing.T) {
	repo := NewMemoryRepository()
	seedRecord(t, repo, "a", "Ann", "ann@x.com")

	require.True(t, repo.EmailExists("ann@x.com", ""))
	require.False(t, repo.EmailExists("ann@x.com", "a"))
	require.False(t, repo.EmailExists("ANN@x.com", ""))
	require.False(t, repo.EmailExists("bob@x.com", ""))
}

func TestInsertRejectsDuplicateEmail(t *testing.T) {
	repo := NewMemoryRepository()
	seedRecord(t, repo, "a", "Ann", "ann@x.com")

	err := repo.Insert(User{ID: "b", Name: "Bob", Email: "ann@x.com"})
	require.ErrorIs(t, err, ErrEmailExists)
	require.Equal(t, 1, repo.Count())
}

func TestReplacePreservesCreatedAt(t *testing.T) {
	repo := NewMemoryRepository()
	created := time.Date(2026, 8, 1, 9, 0, 0, 0, time.Local)
	require.NoError(t, repo.Insert(User{
		ID: "a", Name: "Ann", Email: "ann@x.com",
		CreatedAt: created, UpdatedAt: created,
	}))

	updatedAt := created.Add(time.Hour)
	got, err := repo.Replace("a", User{
		Name: "Annette", Email: "annette@x.com", UpdatedAt: updatedAt,
	})
	require.NoError(t, err)
	require.Equal(t, "a", got.ID)
	require.Equal(t, created, got.CreatedAt)
	require.Equal(t, updatedAt, got.UpdatedAt)

	_, err = repo.Replace("missing", User{Name: "X", Email: "x@x.com"})
	require.ErrorIs(t, err, ErrNotFound)
}
