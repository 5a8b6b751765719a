package service

import (
	"context"

	"github.com/izabelforte/ProjetoPCRH/internal/modules/model"
	"github.com/izabelforte/ProjetoPCRH/internal/modules/repo"
	"github.com/izabelforte/ProjetoPCRH/internal/pkg/apperrors"
	"github.com/izabelforte/ProjetoPCRH/internal/pkg/authz"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	List(ctx context.Context) ([]model.User, error)
	GetByID(ctx context.Context, id uint) (*model.User, error)
	Create(ctx context.Context, m *model.User) error
	Update(ctx context.Context, m *model.User) error
	Delete(ctx context.Context, id uint) error
}

type userService struct{ r repo.UserRepo }

func NewUserService(r repo.UserRepo) UserService {
	return &userService{r: r}
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.r.List(ctx)
}

func (s *userService) GetByID(ctx context.Context, id uint) (*model.User, error) {
	return s.r.Get(ctx, id)
}

func (s *userService) Create(ctx context.Context, m *model.User) error {
	if m.Password == "" {
		return apperrors.NewValidation("password", "password is required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(m.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	m.Password = string(hash)
	clearLinksForRole(m)
	return s.r.Create(ctx, m)
}

func (s *userService) Update(ctx context.Context, m *model.User) error {
	if m.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(m.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		m.Password = string(hash)
	}
	clearLinksForRole(m)
	return s.r.Update(ctx, m)
}

func (s *userService) Delete(ctx context.Context, id uint) error {
	return s.r.Delete(ctx, id)
}

// clearLinksForRole keeps at most one of the employee/client links populated:
// the employee link for role Employee, the client link for role Client,
// neither for anything else.
func clearLinksForRole(m *model.User) {
	switch m.Role {
	case authz.RoleEmployee:
		m.ClientID = nil
	case authz.RoleClient:
		m.EmployeeID = nil
	default:
		m.EmployeeID = nil
		m.ClientID = nil
	}
}
