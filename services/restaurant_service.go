package services

import (
	"context"

	"github.com/kapilkaushal24/restaurant-management-api/entity"
	"github.com/kapilkaushal24/restaurant-management-api/repository"
)

type RestaurantService struct {
	Repo *repository.RestaurantRepository
}

func NewRestaurantService(repo *repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{Repo: repo}
}

type RestaurantInput struct {
	Name        string  `json:"name" binding:"required"`
	Address     string  `json:"address"`
	Description string  `json:"description"`
	Rating      float32 `json:"rating" binding:"min=0,max=5"`
}

func (s *RestaurantService) List(ctx context.Context) ([]entity.Restaurant, error) {
	out, err := s.Repo.ListAll(ctx)
	return out, storeErr(err, err)
}

func (s *RestaurantService) Search(ctx context.Context, term string) ([]entity.Restaurant, error) {
	out, err := s.Repo.Search(ctx, term)
	return out, storeErr(err, err)
}

func (s *RestaurantService) Get(ctx context.Context, id uint) (*entity.Restaurant, error) {
	rest, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, ErrRestaurantNotFound)
	}
	return rest, nil
}

func (s *RestaurantService) Create(ctx context.Context, in RestaurantInput) (*entity.Restaurant, error) {
	rest := &entity.Restaurant{
		Name:        in.Name,
		Address:     in.Address,
		Description: in.Description,
		Rating:      in.Rating,
	}
	if err := s.Repo.Create(ctx, rest); err != nil {
		return nil, storeErr(err, err)
	}
	return rest, nil
}

func (s *RestaurantService) Update(ctx context.Context, id uint, in RestaurantInput) (*entity.Restaurant, error) {
	rest, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, ErrRestaurantNotFound)
	}
	rest.Name = in.Name
	rest.Address = in.Address
	rest.Description = in.Description
	rest.Rating = in.Rating
	if err := s.Repo.Update(ctx, rest); err != nil {
		return nil, storeErr(err, err)
	}
	return rest, nil
}

func (s *RestaurantService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Repo.FindByID(ctx, id); err != nil {
		return storeErr(err, ErrRestaurantNotFound)
	}
	return storeErr(s.Repo.Delete(ctx, id), ErrRestaurantNotFound)
}
