package repo

import (
	"context"

	"github.com/izabelforte/ProjetoPCRH/internal/modules/model"
	"gorm.io/gorm"
)

type ContractRepo interface {
	List(ctx context.Context) ([]model.Contract, error)
	Get(ctx context.Context, id uint) (*model.Contract, error)
	Create(ctx context.Context, m *model.Contract) error
	Update(ctx context.Context, m *model.Contract) error
	Delete(ctx context.Context, id uint) error
}

type contractRepo struct{ db *gorm.DB }

func NewContractRepo(db *gorm.DB) ContractRepo {
	return &contractRepo{db: db}
}

func (r *contractRepo) List(ctx context.Context) ([]model.Contract, error) {
	var items []model.Contract
	return items, r.db.WithContext(ctx).Preload("Client").Preload("Project").Order("id").Find(&items).Error
}

func (r *contractRepo) Get(ctx context.Context, id uint) (*model.Contract, error) {
	m := new(model.Contract)
	if err := r.db.WithContext(ctx).Preload("Client").Preload("Project").First(m, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return m, nil
}

func (r *contractRepo) Create(ctx context.Context, m *model.Contract) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *contractRepo) Update(ctx context.Context, m *model.Contract) error {
	err := optimisticUpdate(r.db.WithContext(ctx), &model.Contract{}, m.ID, m.Version, map[string]interface{}{
		"start_date": m.StartDate,
		"end_date":   m.EndDate,
		"value":      m.Value,
		"status":     m.Status,
		"client_id":  m.ClientID,
		"project_id": m.ProjectID,
	})
	if err != nil {
		return err
	}
	m.Version++
	return nil
}

func (r *contractRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Contract{}, id).Error
}
