package repo

import (
	"context"

	"github.com/izabelforte/ProjetoPCRH/internal/modules/model"
	"gorm.io/gorm"
)

type ReportRepo interface {
	List(ctx context.Context) ([]model.Report, error)
	Get(ctx context.Context, id uint) (*model.Report, error)
	Create(ctx context.Context, m *model.Report) error
	Update(ctx context.Context, m *model.Report) error
	Delete(ctx context.Context, id uint) error
	ListByClient(ctx context.Context, clientID uint) ([]model.Report, error)
}

type reportRepo struct{ db *gorm.DB }

func NewReportRepo(db *gorm.DB) ReportRepo {
	return &reportRepo{db: db}
}

func (r *reportRepo) List(ctx context.Context) ([]model.Report, error) {
	var items []model.Report
	return items, r.db.WithContext(ctx).Preload("Project").Order("id").Find(&items).Error
}

func (r *reportRepo) Get(ctx context.Context, id uint) (*model.Report, error) {
	m := new(model.Report)
	if err := r.db.WithContext(ctx).Preload("Project").First(m, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return m, nil
}

func (r *reportRepo) Create(ctx context.Context, m *model.Report) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *reportRepo) Update(ctx context.Context, m *model.Report) error {
	err := optimisticUpdate(r.db.WithContext(ctx), &model.Report{}, m.ID, m.Version, map[string]interface{}{
		"report_date": m.ReportDate,
		"value":       m.Value,
		"total_hours": m.TotalHours,
		"project_id":  m.ProjectID,
	})
	if err != nil {
		return err
	}
	m.Version++
	return nil
}

func (r *reportRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Report{}, id).Error
}

// ListByClient returns the reports of every project owned by the client.
func (r *reportRepo) ListByClient(ctx context.Context, clientID uint) ([]model.Report, error) {
	var items []model.Report
	err := r.db.WithContext(ctx).
		Preload("Project").
		Joins("JOIN projects ON projects.id = reports.project_id").
		Where("projects.client_id = ?", clientID).
		Order("reports.id").
		Find(&items).Error
	return items, err
}
