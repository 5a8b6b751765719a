package repo

import (
	"context"

	"github.com/izabelforte/ProjetoPCRH/internal/modules/model"
	"gorm.io/gorm"
)

type InvoiceRepo interface {
	List(ctx context.Context) ([]model.Invoice, error)
	Get(ctx context.Context, id uint) (*model.Invoice, error)
	Create(ctx context.Context, m *model.Invoice) error
	Update(ctx context.Context, m *model.Invoice) error
	Delete(ctx context.Context, id uint) error
}

type invoiceRepo struct{ db *gorm.DB }

func NewInvoiceRepo(db *gorm.DB) InvoiceRepo {
	return &invoiceRepo{db: db}
}

func (r *invoiceRepo) List(ctx context.Context) ([]model.Invoice, error) {
	var items []model.Invoice
	return items, r.db.WithContext(ctx).Preload("Contract").Order("id").Find(&items).Error
}

func (r *invoiceRepo) Get(ctx context.Context, id uint) (*model.Invoice, error) {
	m := new(model.Invoice)
	if err := r.db.WithContext(ctx).Preload("Contract").First(m, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return m, nil
}

func (r *invoiceRepo) Create(ctx context.Context, m *model.Invoice) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *invoiceRepo) Update(ctx context.Context, m *model.Invoice) error {
	err := optimisticUpdate(r.db.WithContext(ctx), &model.Invoice{}, m.ID, m.Version, map[string]interface{}{
		"invoice_date": m.InvoiceDate,
		"value":        m.Value,
		"contract_id":  m.ContractID,
	})
	if err != nil {
		return err
	}
	m.Version++
	return nil
}

func (r *invoiceRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Invoice{}, id).Error
}
