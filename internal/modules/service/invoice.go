package service

import (
	"context"

	"github.com/izabelforte/ProjetoPCRH/internal/modules/model"
	"github.com/izabelforte/ProjetoPCRH/internal/modules/repo"
)

type InvoiceService interface {
	List(ctx context.Context) ([]model.Invoice, error)
	GetByID(ctx context.Context, id uint) (*model.Invoice, error)
	Create(ctx context.Context, m *model.Invoice) error
	Update(ctx context.Context, m *model.Invoice) error
	Delete(ctx context.Context, id uint) error
}

type invoiceService struct{ r repo.InvoiceRepo }

func NewInvoiceService(r repo.InvoiceRepo) InvoiceService {
	return &invoiceService{r: r}
}

func (s *invoiceService) List(ctx context.Context) ([]model.Invoice, error) {
	return s.r.List(ctx)
}

func (s *invoiceService) GetByID(ctx context.Context, id uint) (*model.Invoice, error) {
	return s.r.Get(ctx, id)
}

func (s *invoiceService) Create(ctx context.Context, m *model.Invoice) error {
	return s.r.Create(ctx, m)
}

func (s *invoiceService) Update(ctx context.Context, m *model.Invoice) error {
	return s.r.Update(ctx, m)
}

func (s *invoiceService) Delete(ctx context.Context, id uint) error {
	return s.r.Delete(ctx, id)
}
