package service

import (
	"context"

	"github.com/izabelforte/ProjetoPCRH/internal/modules/model"
	"github.com/izabelforte/ProjetoPCRH/internal/modules/repo"
	"github.com/izabelforte/ProjetoPCRH/internal/pkg/apperrors"
)

type EmployeeService interface {
	List(ctx context.Context) ([]model.Employee, error)
	GetByID(ctx context.Context, id uint) (*model.Employee, error)
	Create(ctx context.Context, m *model.Employee) error
	Update(ctx context.Context, m *model.Employee) error
	Delete(ctx context.Context, id uint) error
}

type employeeService struct{ r repo.EmployeeRepo }

func NewEmployeeService(r repo.EmployeeRepo) EmployeeService {
	return &employeeService{r: r}
}

func (s *employeeService) List(ctx context.Context) ([]model.Employee, error) {
	return s.r.List(ctx)
}

func (s *employeeService) GetByID(ctx context.Context, id uint) (*model.Employee, error) {
	return s.r.Get(ctx, id)
}

func (s *employeeService) Create(ctx context.Context, m *model.Employee) error {
	return s.r.Create(ctx, m)
}

// Update rejects deactivation while the employee is assigned to any project
// still in progress. The check happens before the write; a rejected update
// leaves the row untouched.
func (s *employeeService) Update(ctx context.Context, m *model.Employee) error {
	if !m.Active {
		busy, err := s.r.HasAssignmentWithProjectStatus(ctx, m.ID, model.ProjectStatusInProgress)
		if err != nil {
			return err
		}
		if busy {
			return apperrors.NewValidation("active",
				"employee is assigned to projects in progress and cannot be deactivated")
		}
	}
	return s.r.Update(ctx, m)
}

func (s *employeeService) Delete(ctx context.Context, id uint) error {
	return s.r.Delete(ctx, id)
}
