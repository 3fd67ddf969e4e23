package repository

import (
	"context"

	"github.com/kapilkaushal24/restaurant-management-api/entity"

	"gorm.io/gorm"
)

// MenuRepository covers both menu categories and menu items.
type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// ---------------- Categories ----------------

func (r *MenuRepository) ListCategoriesByRestaurant(ctx context.Context, restID uint) ([]entity.MenuCategory, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var out []entity.MenuCategory
	err := r.DB.WithContext(ctx).
		Where("restaurant_id = ?", restID).
		Order("id").Find(&out).Error
	return out, err
}

func (r *MenuRepository) FindCategoryByID(ctx context.Context, id uint) (*entity.MenuCategory, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var cat entity.MenuCategory
	if err := r.DB.WithContext(ctx).First(&cat, id).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *MenuRepository) CreateCategory(ctx context.Context, cat *entity.MenuCategory) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	return r.DB.WithContext(ctx).Create(cat).Error
}

// DeleteCategory removes the category and its items in one transaction
// (cascade by design, not restrict).
func (r *MenuRepository) DeleteCategory(ctx context.Context, id uint) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&entity.MenuItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.MenuCategory{}, id).Error
	})
}

// ---------------- Items ----------------

func (r *MenuRepository) ListItemsByCategory(ctx context.Context, categoryID uint) ([]entity.MenuItem, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var out []entity.MenuItem
	err := r.DB.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("id").Find(&out).Error
	return out, err
}

func (r *MenuRepository) FindItemByID(ctx context.Context, id uint) (*entity.MenuItem, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var item entity.MenuItem
	if err := r.DB.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) CreateItem(ctx context.Context, item *entity.MenuItem) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	return r.DB.WithContext(ctx).Create(item).Error
}

func (r *MenuRepository) UpdateItem(ctx context.Context, item *entity.MenuItem) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	return r.DB.WithContext(ctx).Save(item).Error
}

func (r *MenuRepository) DeleteItem(ctx context.Context, id uint) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	return r.DB.WithContext(ctx).Delete(&entity.MenuItem{}, id).Error
}

// SearchItems matches term against name/description, with optional
// price bounds in minor units.
func (r *MenuRepository) SearchItems(ctx context.Context, term string, minPrice, maxPrice *int64) ([]entity.MenuItem, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	q := r.DB.WithContext(ctx).Model(&entity.MenuItem{})
	if term != "" {
		like := "%" + term + "%"
		q = q.Where("name LIKE ? OR description LIKE ?", like, like)
	}
	if minPrice != nil {
		q = q.Where("price >= ?", *minPrice)
	}
	if maxPrice != nil {
		q = q.Where("price <= ?", *maxPrice)
	}

	var out []entity.MenuItem
	err := q.Order("id").Find(&out).Error
	return out, err
}
