package service

import (
	"context"

	"github.com/izabelforte/ProjetoPCRH/internal/modules/model"
	"github.com/izabelforte/ProjetoPCRH/internal/modules/repo"
)

type ReportService interface {
	List(ctx context.Context) ([]model.Report, error)
	GetByID(ctx context.Context, id uint) (*model.Report, error)
	Create(ctx context.Context, m *model.Report) error
	Update(ctx context.Context, m *model.Report) error
	Delete(ctx context.Context, id uint) error
	ListByClient(ctx context.Context, clientID uint) ([]model.Report, error)
}

type reportService struct{ r repo.ReportRepo }

func NewReportService(r repo.ReportRepo) ReportService {
	return &reportService{r: r}
}

func (s *reportService) List(ctx context.Context) ([]model.Report, error) {
	return s.r.List(ctx)
}

func (s *reportService) GetByID(ctx context.Context, id uint) (*model.Report, error) {
	return s.r.Get(ctx, id)
}

func (s *reportService) Create(ctx context.Context, m *model.Report) error {
	return s.r.Create(ctx, m)
}

func (s *reportService) Update(ctx context.Context, m *model.Report) error {
	return s.r.Update(ctx, m)
}

func (s *reportService) Delete(ctx context.Context, id uint) error {
	return s.r.Delete(ctx, id)
}

func (s *reportService) ListByClient(ctx context.Context, clientID uint) ([]model.Report, error) {
	return s.r.ListByClient(ctx, clientID)
}
