package service

import (
	"context"
	"errors"

	"github.com/izabelforte/ProjetoPCRH/internal/modules/model"
	"github.com/izabelforte/ProjetoPCRH/internal/modules/repo"
	"github.com/izabelforte/ProjetoPCRH/internal/pkg/apperrors"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	// Login returns the matching user or ErrInvalidCredentials. The error is
	// identical for an unknown username and a wrong password.
	Login(ctx context.Context, username, password string) (*model.User, error)
}

type authService struct{ users repo.UserRepo }

func NewAuthService(users repo.UserRepo) AuthService {
	return &authService{users: users}
}

func (s *authService) Login(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}
