package services

import (
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"foodchef/entity"
	"foodchef/repository"
)

type MenuService struct {
	Repo *repository.MenuRepository
	Log  *logrus.Logger
}

func NewMenuService(repo *repository.MenuRepository, log *logrus.Logger) *MenuService {
	return &MenuService{Repo: repo, Log: log}
}

type CreateFoodReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	CategoryID  uint   `json:"categoryId"`
	ImagePath   string `json:"imagePath"`
}

type UpdateFoodReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *int64  `json:"price"`
	CategoryID  *uint   `json:"categoryId"`
	ImagePath   *string `json:"imagePath"`
	IsActive    *bool   `json:"isActive"`
}

func (s *MenuService) ActiveMenu() ([]entity.Food, error) {
	out, err := s.Repo.ActiveFoods()
	if err != nil {
		return nil, s.dbFail("active menu", err)
	}
	return out, nil
}

func (s *MenuService) GetFood(id uint) (*entity.Food, error) {
	f, err := s.Repo.FindFood(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, s.dbFail("get food", err)
	}
	return f, nil
}

func (s *MenuService) CreateFood(req *CreateFoodReq) (*entity.Food, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, missingField("name")
	}
	if req.Price <= 0 {
		return nil, invalidField("price", "must be positive")
	}
	f := entity.Food{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		ImagePath:   req.ImagePath,
		IsActive:    true,
	}
	if err := s.Repo.CreateFood(&f); err != nil {
		return nil, s.dbFail("create food", err)
	}
	return &f, nil
}

func (s *MenuService) UpdateFood(id uint, req *UpdateFoodReq) error {
	updates := map[string]any{}
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return missingField("name")
		}
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return invalidField("price", "must be positive")
		}
		updates["price"] = *req.Price
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.ImagePath != nil {
		updates["image_path"] = *req.ImagePath
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		return invalidField("body", "nothing to update")
	}

	affected, err := s.Repo.UpdateFood(id, updates)
	if err != nil {
		return s.dbFail("update food", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MenuService) Categories() ([]entity.MenuCategory, error) {
	out, err := s.Repo.Categories()
	if err != nil {
		return nil, s.dbFail("list categories", err)
	}
	return out, nil
}

func (s *MenuService) CreateCategory(name, description string, sortOrder int) (*entity.MenuCategory, error) {
	if strings.TrimSpace(name) == "" {
		return nil, missingField("name")
	}
	c := entity.MenuCategory{
		Name:        strings.TrimSpace(name),
		Description: description,
		SortOrder:   sortOrder,
		IsActive:    true,
	}
	if err := s.Repo.CreateCategory(&c); err != nil {
		return nil, s.dbFail("create category", err)
	}
	return &c, nil
}

func (s *MenuService) dbFail(op string, err error) error {
	s.Log.WithFields(logrus.Fields{"op": op, "error": err.Error()}).Error("database error")
	return ErrDatabase
}
