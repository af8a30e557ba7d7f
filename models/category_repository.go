package models

import (
	"errors"

	"gorm.io/gorm"
)

type CategoriesRepository struct {
	db *gorm.DB
}

func NewCategoriesRepository(db *gorm.DB) *CategoriesRepository {
	return &CategoriesRepository{db: db}
}

func (r *CategoriesRepository) Create(c *Category) error {
	return r.db.Create(c).Error
}

func (r *CategoriesRepository) GetByID(id string) (*Category, error) {
	var category Category
	if err := r.db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoriesRepository) Update(id string, name, description string) (*Category, error) {
	category, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	changes := map[string]any{"name": name, "description": description}
	if err := r.db.Model(category).Updates(changes).Error; err != nil {
		return nil, err
	}
	return category, nil
}

func (r *CategoriesRepository) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&Category{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (r *CategoriesRepository) List() ([]Category, error) {
	var categories []Category
	if err := r.db.Order("created_at DESC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

type SubcategoriesRepository struct {
	db *gorm.DB
}

func NewSubcategoriesRepository(db *gorm.DB) *SubcategoriesRepository {
	return &SubcategoriesRepository{db: db}
}

func (r *SubcategoriesRepository) Create(s *Subcategory) error {
	return r.db.Create(s).Error
}

func (r *SubcategoriesRepository) Update(id string, name string) (*Subcategory, error) {
	var subcategory Subcategory
	if err := r.db.First(&subcategory, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubcategoryNotFound
		}
		return nil, err
	}
	if err := r.db.Model(&subcategory).Update("name", name).Error; err != nil {
		return nil, err
	}
	return &subcategory, nil
}

func (r *SubcategoriesRepository) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&Subcategory{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrSubcategoryNotFound
	}
	return nil
}

// List returns all subcategories, or only those under a parent category
// when categoryID is non-empty.
func (r *SubcategoriesRepository) List(categoryID string) ([]Subcategory, error) {
	q := r.db.Order("created_at DESC")
	if categoryID != "" {
		q = q.Where("category_id = ?", categoryID)
	}
	var subcategories []Subcategory
	if err := q.Find(&subcategories).Error; err != nil {
		return nil, err
	}
	return subcategories, nil
}
