package repository

import (
	"foodchef/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) ActiveFoods() ([]entity.Food, error) {
	var out []entity.Food
	err := r.DB.Where("is_active = ?", true).
		Order("category_id ASC, name ASC").
		Find(&out).Error
	return out, err
}

func (r *MenuRepository) FindFood(id uint) (*entity.Food, error) {
	var f entity.Food
	if err := r.DB.First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *MenuRepository) CreateFood(f *entity.Food) error {
	return r.DB.Create(f).Error
}

func (r *MenuRepository) UpdateFood(id uint, updates map[string]any) (int64, error) {
	res := r.DB.Model(&entity.Food{}).Where("id = ?", id).Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *MenuRepository) Categories() ([]entity.MenuCategory, error) {
	var out []entity.MenuCategory
	err := r.DB.Where("is_active = ?", true).
		Order("sort_order ASC, name ASC").
		Find(&out).Error
	return out, err
}

func (r *MenuRepository) CreateCategory(c *entity.MenuCategory) error {
	return r.DB.Create(c).Error
}
