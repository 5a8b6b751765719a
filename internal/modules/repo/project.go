package repo

import (
	"context"
	"time"

	"github.com/izabelforte/ProjetoPCRH/internal/modules/model"
	"gorm.io/gorm"
)

type ProjectRepo interface {
	List(ctx context.Context) ([]model.Project, error)
	Get(ctx context.Context, id uint) (*model.Project, error)
	Create(ctx context.Context, m *model.Project, employeeIDs []uint) error
	Update(ctx context.Context, m *model.Project, employeeIDs *[]uint) error
	Delete(ctx context.Context, id uint) error
	ListByEmployee(ctx context.Context, employeeID uint) ([]model.Project, error)
	Finish(ctx context.Context, id uint, reportDate time.Time) (*model.Report, error)
}

type projectRepo struct{ db *gorm.DB }

func NewProjectRepo(db *gorm.DB) ProjectRepo {
	return &projectRepo{db: db}
}

func (r *projectRepo) List(ctx context.Context) ([]model.Project, error) {
	var items []model.Project
	return items, r.db.WithContext(ctx).Preload("Client").Order("id").Find(&items).Error
}

func (r *projectRepo) Get(ctx context.Context, id uint) (*model.Project, error) {
	m := new(model.Project)
	if err := r.db.WithContext(ctx).Preload("Client").Preload("Employees").First(m, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return m, nil
}

func (r *projectRepo) Create(ctx context.Context, m *model.Project, employeeIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		return insertAssignments(tx, m.ID, employeeIDs)
	})
}

// Update persists the project fields and, when employeeIDs is non-nil,
// replaces the assignment set wholesale. A nil slice pointer leaves the
// assignments untouched.
func (r *projectRepo) Update(ctx context.Context, m *model.Project, employeeIDs *[]uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := optimisticUpdate(tx, &model.Project{}, m.ID, m.Version, map[string]interface{}{
			"name":        m.Name,
			"description": m.Description,
			"start_date":  m.StartDate,
			"end_date":    m.EndDate,
			"budget":      m.Budget,
			"status":      m.Status,
			"client_id":   m.ClientID,
		})
		if err != nil {
			return err
		}
		if employeeIDs == nil {
			return nil
		}
		if err := tx.Where("project_id = ?", m.ID).Delete(&model.ProjectAssignment{}).Error; err != nil {
			return err
		}
		return insertAssignments(tx, m.ID, *employeeIDs)
	})
	if err != nil {
		return err
	}
	m.Version++
	return nil
}

func (r *projectRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Project{}, id).Error
}

func (r *projectRepo) ListByEmployee(ctx context.Context, employeeID uint) ([]model.Project, error) {
	var items []model.Project
	err := r.db.WithContext(ctx).
		Preload("Client").
		Joins("JOIN project_assignments ON project_assignments.project_id = projects.id").
		Where("project_assignments.employee_id = ?", employeeID).
		Order("projects.id").
		Find(&items).Error
	return items, err
}

// Finish marks the project finished and creates its report in one
// transaction, so a finished project without a report can never be observed.
func (r *projectRepo) Finish(ctx context.Context, id uint, reportDate time.Time) (*model.Report, error) {
	report := new(model.Report)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		project := new(model.Project)
		if err := tx.First(project, id).Error; err != nil {
			return translateNotFound(err)
		}

		updates := map[string]interface{}{
			"status":  model.ProjectStatusFinished,
			"version": gorm.Expr("version + 1"),
		}
		if err := tx.Model(&model.Project{}).Where("id = ?", project.ID).Updates(updates).Error; err != nil {
			return err
		}

		*report = model.Report{
			ReportDate: reportDate,
			Value:      project.Budget,
			TotalHours: int(project.EndDate.Sub(project.StartDate).Hours()),
			ProjectID:  project.ID,
		}
		return tx.Create(report).Error
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

func insertAssignments(tx *gorm.DB, projectID uint, employeeIDs []uint) error {
	if len(employeeIDs) == 0 {
		return nil
	}
	rows := make([]model.ProjectAssignment, 0, len(employeeIDs))
	for _, eid := range employeeIDs {
		rows = append(rows, model.ProjectAssignment{ProjectID: projectID, EmployeeID: eid})
	}
	return tx.Create(&rows).Error
}
