package repo

import (
	"context"

	"github.com/izabelforte/ProjetoPCRH/internal/modules/model"
	"gorm.io/gorm"
)

type ClientRepo interface {
	List(ctx context.Context) ([]model.Client, error)
	Get(ctx context.Context, id uint) (*model.Client, error)
	Create(ctx context.Context, m *model.Client) error
	Update(ctx context.Context, m *model.Client) error
	Delete(ctx context.Context, id uint) error
}

type clientRepo struct{ db *gorm.DB }

func NewClientRepo(db *gorm.DB) ClientRepo {
	return &clientRepo{db: db}
}

func (r *clientRepo) List(ctx context.Context) ([]model.Client, error) {
	var items []model.Client
	return items, r.db.WithContext(ctx).Order("id").Find(&items).Error
}

func (r *clientRepo) Get(ctx context.Context, id uint) (*model.Client, error) {
	m := new(model.Client)
	if err := r.db.WithContext(ctx).First(m, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return m, nil
}

func (r *clientRepo) Create(ctx context.Context, m *model.Client) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *clientRepo) Update(ctx context.Context, m *model.Client) error {
	err := optimisticUpdate(r.db.WithContext(ctx), &model.Client{}, m.ID, m.Version, map[string]interface{}{
		"name":    m.Name,
		"tax_id":  m.TaxID,
		"address": m.Address,
		"email":   m.Email,
	})
	if err != nil {
		return err
	}
	m.Version++
	return nil
}

func (r *clientRepo) Delete(ctx context.Context, id uint) error {
	// deleting an absent row is a no-op
	return r.db.WithContext(ctx).Delete(&model.Client{}, id).Error
}
