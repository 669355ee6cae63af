package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"bookong/internal/domains/user"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"

	// bcrypt cost 12 trades a little login latency for a much harder
	// offline attack.
	bcryptCost = 12
)

type userService struct {
	repo user.Repository
}

func NewUserService(repo user.Repository) user.Service {
	return &userService{repo: repo}
}

func (s *userService) Login(ctx context.Context, req user.LoginRequest) (*user.UserDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, user.ErrInvalidCredentials
	}

	// Constant-time comparison against the stored hash.
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	dto := u.ToDTO()
	return &dto, nil
}

func (s *userService) EnsureDefaultAdmin(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &user.User{
		Username: defaultAdminUsername,
		Password: string(hash),
		Role:     user.RoleAdmin,
	}
	if err := s.repo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create default admin: %w", err)
	}

	log.Info().Str("username", defaultAdminUsername).Msg("Default admin user created")
	return nil
}
