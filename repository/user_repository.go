package repository

import (
	"context"

	"github.com/kapilkaushal24/restaurant-management-api/entity"

	"gorm.io/gorm"
)

// UserRepository is the only thing that talks to the users table.
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var user entity.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CountByEmail is an exact, case-sensitive match on the stored email.
func (r *UserRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var count int64
	err := r.DB.WithContext(ctx).Model(&entity.User{}).
		Where("email = ?", email).Count(&count).Error
	return count, err
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	return r.DB.WithContext(ctx).Create(user).Error
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var user entity.User
	if err := r.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) ListAll(ctx context.Context) ([]entity.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var users []entity.User
	err := r.DB.WithContext(ctx).Order("id").Find(&users).Error
	return users, err
}
