package repository

import (
	"context"

	"github.com/kapilkaushal24/restaurant-management-api/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) ListAll(ctx context.Context) ([]entity.Restaurant, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var out []entity.Restaurant
	err := r.DB.WithContext(ctx).Order("id").Find(&out).Error
	return out, err
}

func (r *RestaurantRepository) FindByID(ctx context.Context, id uint) (*entity.Restaurant, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var rest entity.Restaurant
	if err := r.DB.WithContext(ctx).First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

// Search matches term against name/address.
func (r *RestaurantRepository) Search(ctx context.Context, term string) ([]entity.Restaurant, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	q := r.DB.WithContext(ctx).Model(&entity.Restaurant{})
	if term != "" {
		like := "%" + term + "%"
		q = q.Where("name LIKE ? OR address LIKE ?", like, like)
	}

	var out []entity.Restaurant
	err := q.Order("id").Find(&out).Error
	return out, err
}

func (r *RestaurantRepository) Exists(ctx context.Context, id uint) (bool, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var cnt int64
	if err := r.DB.WithContext(ctx).Model(&entity.Restaurant{}).
		Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *RestaurantRepository) Create(ctx context.Context, rest *entity.Restaurant) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	return r.DB.WithContext(ctx).Create(rest).Error
}

func (r *RestaurantRepository) Update(ctx context.Context, rest *entity.Restaurant) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	return r.DB.WithContext(ctx).Save(rest).Error
}

func (r *RestaurantRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	return r.DB.WithContext(ctx).Delete(&entity.Restaurant{}, id).Error
}
