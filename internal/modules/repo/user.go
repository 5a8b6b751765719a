package repo

import (
	"context"

	"github.com/izabelforte/ProjetoPCRH/internal/modules/model"
	"gorm.io/gorm"
)

type UserRepo interface {
	List(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, id uint) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	Create(ctx context.Context, m *model.User) error
	Update(ctx context.Context, m *model.User) error
	Delete(ctx context.Context, id uint) error
}

type userRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) UserRepo {
	return &userRepo{db: db}
}

func (r *userRepo) List(ctx context.Context) ([]model.User, error) {
	var items []model.User
	return items, r.db.WithContext(ctx).Preload("Employee").Preload("Client").Order("id").Find(&items).Error
}

func (r *userRepo) Get(ctx context.Context, id uint) (*model.User, error) {
	m := new(model.User)
	if err := r.db.WithContext(ctx).Preload("Employee").Preload("Client").First(m, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return m, nil
}

func (r *userRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	m := new(model.User)
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(m).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return m, nil
}

func (r *userRepo) Create(ctx context.Context, m *model.User) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *userRepo) Update(ctx context.Context, m *model.User) error {
	updates := map[string]interface{}{
		"username":    m.Username,
		"role":        m.Role,
		"employee_id": m.EmployeeID,
		"client_id":   m.ClientID,
	}
	// an empty password means keep the stored hash
	if m.Password != "" {
		updates["password"] = m.Password
	}
	if err := optimisticUpdate(r.db.WithContext(ctx), &model.User{}, m.ID, m.Version, updates); err != nil {
		return err
	}
	m.Version++
	return nil
}

func (r *userRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.User{}, id).Error
}
