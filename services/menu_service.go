package services

import (
	"context"

	"github.com/kapilkaushal24/restaurant-management-api/entity"
	"github.com/kapilkaushal24/restaurant-management-api/repository"
)

// MenuService manages categories and items. Cache is optional (nil
// disables it); mutations always invalidate before returning.
type MenuService struct {
	Repo  *repository.MenuRepository
	Cache *repository.MenuCache
}

func NewMenuService(repo *repository.MenuRepository, cache *repository.MenuCache) *MenuService {
	return &MenuService{Repo: repo, Cache: cache}
}

// ---------------- Categories ----------------

type CreateCategoryInput struct {
	Name         string `json:"name" binding:"required"`
	RestaurantID uint   `json:"restaurantId" binding:"required"`
}

func (s *MenuService) ListCategories(ctx context.Context, restaurantID uint) ([]entity.MenuCategory, error) {
	out, err := s.Repo.ListCategoriesByRestaurant(ctx, restaurantID)
	return out, storeErr(err, err)
}

func (s *MenuService) GetCategory(ctx context.Context, id uint) (*entity.MenuCategory, error) {
	cat, err := s.Repo.FindCategoryByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, ErrCategoryNotFound)
	}
	return cat, nil
}

func (s *MenuService) CreateCategory(ctx context.Context, in CreateCategoryInput) (*entity.MenuCategory, error) {
	cat := &entity.MenuCategory{Name: in.Name, RestaurantID: in.RestaurantID}
	if err := s.Repo.CreateCategory(ctx, cat); err != nil {
		return nil, storeErr(err, err)
	}
	return cat, nil
}

// DeleteCategory cascades to the category's items.
func (s *MenuService) DeleteCategory(ctx context.Context, id uint) error {
	if _, err := s.Repo.FindCategoryByID(ctx, id); err != nil {
		return storeErr(err, ErrCategoryNotFound)
	}
	items, err := s.Repo.ListItemsByCategory(ctx, id)
	if err != nil {
		return storeErr(err, err)
	}
	if err := s.Repo.DeleteCategory(ctx, id); err != nil {
		return storeErr(err, err)
	}
	for _, it := range items {
		s.Cache.InvalidateItem(ctx, it.ID)
	}
	return nil
}

// ---------------- Items ----------------

type CreateMenuItemInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"min=0"`
	CategoryID  uint   `json:"categoryId" binding:"required"`
}

type UpdateMenuItemInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"min=0"`
}

func (s *MenuService) ListItems(ctx context.Context, categoryID uint) ([]entity.MenuItem, error) {
	out, err := s.Repo.ListItemsByCategory(ctx, categoryID)
	return out, storeErr(err, err)
}

func (s *MenuService) GetItem(ctx context.Context, id uint) (*entity.MenuItem, error) {
	if cached, _ := s.Cache.GetItem(ctx, id); cached != nil {
		return cached, nil
	}
	item, err := s.Repo.FindItemByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, ErrItemNotFound)
	}
	s.Cache.SetItem(ctx, item)
	return item, nil
}

func (s *MenuService) CreateItem(ctx context.Context, in CreateMenuItemInput) (*entity.MenuItem, error) {
	if _, err := s.Repo.FindCategoryByID(ctx, in.CategoryID); err != nil {
		return nil, storeErr(err, ErrCategoryNotFound)
	}
	item := &entity.MenuItem{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		CategoryID:  in.CategoryID,
	}
	if err := s.Repo.CreateItem(ctx, item); err != nil {
		return nil, storeErr(err, err)
	}
	return item, nil
}

// UpdateItem edits the live catalog record only; prices already
// snapshotted into order items are untouched.
func (s *MenuService) UpdateItem(ctx context.Context, id uint, in UpdateMenuItemInput) (*entity.MenuItem, error) {
	item, err := s.Repo.FindItemByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, ErrItemNotFound)
	}
	item.Name = in.Name
	item.Description = in.Description
	item.Price = in.Price
	if err := s.Repo.UpdateItem(ctx, item); err != nil {
		return nil, storeErr(err, err)
	}
	s.Cache.InvalidateItem(ctx, id)
	return item, nil
}

func (s *MenuService) DeleteItem(ctx context.Context, id uint) error {
	if _, err := s.Repo.FindItemByID(ctx, id); err != nil {
		return storeErr(err, ErrItemNotFound)
	}
	if err := s.Repo.DeleteItem(ctx, id); err != nil {
		return storeErr(err, err)
	}
	s.Cache.InvalidateItem(ctx, id)
	return nil
}

func (s *MenuService) SearchItems(ctx context.Context, term string, minPrice, maxPrice *int64) ([]entity.MenuItem, error) {
	out, err := s.Repo.SearchItems(ctx, term, minPrice, maxPrice)
	return out, storeErr(err, err)
}
