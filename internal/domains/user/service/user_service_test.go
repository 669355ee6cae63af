package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookong/internal/domains/user"
)

type fakeUserRepo struct {
	users []*user.User
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*user.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *fakeUserRepo) Count(_ context.Context) (int, error) {
	return len(r.users), nil
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	u.ID = int64(len(r.users) + 1)
	r.users = append(r.users, u)
	return nil
}

func TestEnsureDefaultAdmin(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo)

	require.NoError(t, svc.EnsureDefaultAdmin(context.Background()))
	require.Len(t, repo.users, 1)
	assert.Equal(t, "admin", repo.users[0].Username)
	assert.Equal(t, user.RoleAdmin, repo.users[0].Role)
	assert.NotEqual(t, "admin123", repo.users[0].Password, "password must be stored hashed")

	// Second call is a no-op once users exist.
	require.NoError(t, svc.EnsureDefaultAdmin(context.Background()))
	assert.Len(t, repo.users, 1)
}

func TestLogin(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo)
	require.NoError(t, svc.EnsureDefaultAdmin(context.Background()))

	dto, err := svc.Login(context.Background(), user.LoginRequest{
		Username: "admin",
		Password: "admin123",
	})
	require.NoError(t, err)
	assert.Equal(t, "admin", dto.Username)
	assert.Equal(t, user.RoleAdmin, dto.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo)
	require.NoError(t, svc.EnsureDefaultAdmin(context.Background()))

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "admin", "nope"},
		{"unknown user", "ghost", "admin123"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), user.LoginRequest{
				Username: tc.username,
				Password: tc.password,
			})
			assert.ErrorIs(t, err, user.ErrInvalidCredentials)
		})
	}
}

func TestLoginValidation(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{})

	_, err := svc.Login(context.Background(), user.LoginRequest{})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, user.ErrInvalidCredentials)
}
