// Package storetest holds behaviour every store driver must share. Driver
// packages call Run from their own tests with a constructor for a fresh,
// migrated, empty store.
package storetest

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vitaran/vitaran/internal/vitaran/domain"
	"github.com/vitaran/vitaran/internal/vitaran/store"
	"github.com/vitaran/vitaran/pkg/idx"
	"github.com/vitaran/vitaran/pkg/plans"
)

// Run exercises the Users repository against stores produced by newStore.
func Run(t *testing.T, newStore func(t *testing.T) store.Store) {
	t.Run("create and fetch", func(t *testing.T) { testCreateAndFetch(t, newStore(t)) })
	t.Run("duplicate email", func(t *testing.T) { testDuplicateEmail(t, newStore(t)) })
	t.Run("concurrent duplicate email", func(t *testing.T) { testConcurrentDuplicate(t, newStore(t)) })
	t.Run("not found", func(t *testing.T) { testNotFound(t, newStore(t)) })
	t.Run("update password hash", func(t *testing.T) { testUpdatePasswordHash(t, newStore(t)) })
	t.Run("update plan", func(t *testing.T) { testUpdatePlan(t, newStore(t)) })
	t.Run("ping", func(t *testing.T) { require.NoError(t, newStore(t).Ping(context.Background())) })
}

// NewUser returns a valid user with a fresh id and the given email.
func NewUser(email string) domain.User {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return domain.User{
		ID:           idx.New().String(),
		Name:         "Ravi Kumar",
		Email:        email,
		Phone:        "9876543210",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuuN0vK8T7mK2WcF9yH1a8d6c9lQ8pS6e",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func testCreateAndFetch(t *testing.T, st store.Store) {
	ctx := context.Background()
	u := NewUser("ravi@example.com")
	require.NoError(t, st.Users().CreateUser(ctx, u))

	byID, err := st.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.ID, byID.ID)
	require.Equal(t, u.Name, byID.Name)
	require.Equal(t, u.Email, byID.Email)
	require.Equal(t, u.Phone, byID.Phone)
	require.Equal(t, u.PasswordHash, byID.PasswordHash)
	require.Nil(t, byID.Plan)
	require.WithinDuration(t, u.CreatedAt, byID.CreatedAt, time.Second)

	byEmail, err := st.Users().GetUserByEmail(ctx, "ravi@example.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)
}

func testDuplicateEmail(t *testing.T, st store.Store) {
	ctx := context.Background()
	require.NoError(t, st.Users().CreateUser(ctx, NewUser("dup@example.com")))

	err := st.Users().CreateUser(ctx, NewUser("dup@example.com"))
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func testConcurrentDuplicate(t *testing.T, st store.Store) {
	ctx := context.Background()
	const n = 8

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		oks  int
		dups int
	)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := st.Users().CreateUser(ctx, NewUser("race@example.com"))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				oks++
			case errors.Is(err, store.ErrAlreadyExists):
				dups++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, oks)
	require.Equal(t, n-1, dups)
}

func testNotFound(t *testing.T, st store.Store) {
	ctx := context.Background()

	_, err := st.Users().GetUserByID(ctx, idx.New().String())
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.Users().GetUserByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.ErrorIs(t, st.Users().UpdatePasswordHash(ctx, idx.New().String(), "x"), store.ErrNotFound)
	require.ErrorIs(t, st.Users().UpdatePlan(ctx, idx.New().String(), plans.All), store.ErrNotFound)
}

func testUpdatePasswordHash(t *testing.T, st store.Store) {
	ctx := context.Background()
	u := NewUser("hash@example.com")
	u.CreatedAt = u.CreatedAt.Add(-time.Hour)
	u.UpdatedAt = u.CreatedAt
	require.NoError(t, st.Users().CreateUser(ctx, u))

	require.NoError(t, st.Users().UpdatePasswordHash(ctx, u.ID, "$2a$10$new"))

	got, err := st.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "$2a$10$new", got.PasswordHash)
	require.True(t, got.UpdatedAt.After(u.UpdatedAt), "updated_at must move forward")
}

func testUpdatePlan(t *testing.T, st store.Store) {
	ctx := context.Background()
	u := NewUser("plan@example.com")
	require.NoError(t, st.Users().CreateUser(ctx, u))

	require.NoError(t, st.Users().UpdatePlan(ctx, u.ID, plans.Quick))
	got, err := st.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Plan)
	require.Equal(t, plans.Quick, *got.Plan)

	// Overwrite is unconditional.
	require.NoError(t, st.Users().UpdatePlan(ctx, u.ID, plans.All))
	got, err = st.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, plans.All, *got.Plan)
}
