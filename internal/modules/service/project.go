package service

import (
	"context"
	"time"

	"github.com/izabelforte/ProjetoPCRH/internal/modules/model"
	"github.com/izabelforte/ProjetoPCRH/internal/modules/repo"
)

type ProjectService interface {
	List(ctx context.Context) ([]model.Project, error)
	GetByID(ctx context.Context, id uint) (*model.Project, error)
	Create(ctx context.Context, m *model.Project, employeeIDs []uint) error
	Update(ctx context.Context, m *model.Project, employeeIDs *[]uint) error
	Delete(ctx context.Context, id uint) error
	ListByEmployee(ctx context.Context, employeeID uint) ([]model.Project, error)
	Finish(ctx context.Context, id uint) (*model.Report, error)
}

type projectService struct {
	r   repo.ProjectRepo
	now func() time.Time
}

func NewProjectService(r repo.ProjectRepo) ProjectService {
	return &projectService{r: r, now: time.Now}
}

func (s *projectService) List(ctx context.Context) ([]model.Project, error) {
	return s.r.List(ctx)
}

func (s *projectService) GetByID(ctx context.Context, id uint) (*model.Project, error) {
	return s.r.Get(ctx, id)
}

func (s *projectService) Create(ctx context.Context, m *model.Project, employeeIDs []uint) error {
	if m.Status == "" {
		m.Status = model.ProjectStatusPlanned
	}
	return s.r.Create(ctx, m, employeeIDs)
}

func (s *projectService) Update(ctx context.Context, m *model.Project, employeeIDs *[]uint) error {
	return s.r.Update(ctx, m, employeeIDs)
}

func (s *projectService) Delete(ctx context.Context, id uint) error {
	return s.r.Delete(ctx, id)
}

func (s *projectService) ListByEmployee(ctx context.Context, employeeID uint) ([]model.Project, error) {
	return s.r.ListByEmployee(ctx, employeeID)
}

// Finish transitions the project to "Finished" and emits its report. Finishing
// an already finished project emits another report; the operation does not
// guard against repeats.
func (s *projectService) Finish(ctx context.Context, id uint) (*model.Report, error) {
	return s.r.Finish(ctx, id, s.now())
}
