package repo

import (
	"context"

	"github.com/izabelforte/ProjetoPCRH/internal/modules/model"
	"gorm.io/gorm"
)

type EmployeeRepo interface {
	List(ctx context.Context) ([]model.Employee, error)
	Get(ctx context.Context, id uint) (*model.Employee, error)
	Create(ctx context.Context, m *model.Employee) error
	Update(ctx context.Context, m *model.Employee) error
	Delete(ctx context.Context, id uint) error
	HasAssignmentWithProjectStatus(ctx context.Context, employeeID uint, status string) (bool, error)
}

type employeeRepo struct{ db *gorm.DB }

func NewEmployeeRepo(db *gorm.DB) EmployeeRepo {
	return &employeeRepo{db: db}
}

func (r *employeeRepo) List(ctx context.Context) ([]model.Employee, error) {
	var items []model.Employee
	return items, r.db.WithContext(ctx).Order("id").Find(&items).Error
}

func (r *employeeRepo) Get(ctx context.Context, id uint) (*model.Employee, error) {
	m := new(model.Employee)
	if err := r.db.WithContext(ctx).Preload("Projects").First(m, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return m, nil
}

func (r *employeeRepo) Create(ctx context.Context, m *model.Employee) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *employeeRepo) Update(ctx context.Context, m *model.Employee) error {
	err := optimisticUpdate(r.db.WithContext(ctx), &model.Employee{}, m.ID, m.Version, map[string]interface{}{
		"name":      m.Name,
		"tax_id":    m.TaxID,
		"position":  m.Position,
		"email":     m.Email,
		"hire_date": m.HireDate,
		"active":    m.Active,
	})
	if err != nil {
		return err
	}
	m.Version++
	return nil
}

func (r *employeeRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Employee{}, id).Error
}

// HasAssignmentWithProjectStatus reports whether the employee is assigned to
// any project currently in the given status.
func (r *employeeRepo) HasAssignmentWithProjectStatus(ctx context.Context, employeeID uint, status string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.ProjectAssignment{}).
		Joins("JOIN projects ON projects.id = project_assignments.project_id").
		Where("project_assignments.employee_id = ? AND projects.status = ?", employeeID, status).
		Count(&n).Error
	return n > 0, err
}
