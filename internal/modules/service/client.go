package service

import (
	"context"

	"github.com/izabelforte/ProjetoPCRH/internal/modules/model"
	"github.com/izabelforte/ProjetoPCRH/internal/modules/repo"
)

type ClientService interface {
	List(ctx context.Context) ([]model.Client, error)
	GetByID(ctx context.Context, id uint) (*model.Client, error)
	Create(ctx context.Context, m *model.Client) error
	Update(ctx context.Context, m *model.Client) error
	Delete(ctx context.Context, id uint) error
}

type clientService struct{ r repo.ClientRepo }

func NewClientService(r repo.ClientRepo) ClientService {
	return &clientService{r: r}
}

func (s *clientService) List(ctx context.Context) ([]model.Client, error) {
	return s.r.List(ctx)
}

func (s *clientService) GetByID(ctx context.Context, id uint) (*model.Client, error) {
	return s.r.Get(ctx, id)
}

func (s *clientService) Create(ctx context.Context, m *model.Client) error {
	return s.r.Create(ctx, m)
}

func (s *clientService) Update(ctx context.Context, m *model.Client) error {
	return s.r.Update(ctx, m)
}

func (s *clientService) Delete(ctx context.Context, id uint) error {
	return s.r.Delete(ctx, id)
}
