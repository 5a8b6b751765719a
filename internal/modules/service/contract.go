package service

import (
	"context"

	"github.com/izabelforte/ProjetoPCRH/internal/modules/model"
	"github.com/izabelforte/ProjetoPCRH/internal/modules/repo"
)

type ContractService interface {
	List(ctx context.Context) ([]model.Contract, error)
	GetByID(ctx context.Context, id uint) (*model.Contract, error)
	Create(ctx context.Context, m *model.Contract) error
	Update(ctx context.Context, m *model.Contract) error
	Delete(ctx context.Context, id uint) error
}

type contractService struct{ r repo.ContractRepo }

func NewContractService(r repo.ContractRepo) ContractService {
	return &contractService{r: r}
}

func (s *contractService) List(ctx context.Context) ([]model.Contract, error) {
	return s.r.List(ctx)
}

func (s *contractService) GetByID(ctx context.Context, id uint) (*model.Contract, error) {
	return s.r.Get(ctx, id)
}

func (s *contractService) Create(ctx context.Context, m *model.Contract) error {
	return s.r.Create(ctx, m)
}

func (s *contractService) Update(ctx context.Context, m *model.Contract) error {
	return s.r.Update(ctx, m)
}

func (s *contractService) Delete(ctx context.Context, id uint) error {
	return s.r.Delete(ctx, id)
}
