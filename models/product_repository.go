package models

import (
	"errors"

	"gorm.io/gorm"
)

type ProductsRepository struct {
	db *gorm.DB
}

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{db: db}
}

// Create persists a new product. Unless force is set, a product sharing
// name and category with an existing row is rejected with a DuplicateError
// so the admin console can show a confirmation prompt.
func (r *ProductsRepository) Create(p *Product, force bool) error {
	if !force {
		var existing Product
		err := r.db.Where("name = ? AND category_id = ?", p.Name, p.CategoryID).First(&existing).Error
		if err == nil {
			return DuplicateError{Message: "a product with the same name and category already exists"}
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}
	return r.db.Create(p).Error
}

func (r *ProductsRepository) GetByID(id string) (*Product, error) {
	var product Product
	if err := r.db.Preload("Category").First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// Update replaces the mutable fields wholesale. There are no partial patch
// semantics: images, specifications, and variants arrive as full arrays.
func (r *ProductsRepository) Update(id string, p *Product) (*Product, error) {
	existing, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	changes := map[string]any{
		"name":           p.Name,
		"description":    p.Description,
		"price":          p.Price,
		"crossed_price":  p.CrossedPrice,
		"stock":          p.Stock,
		"status":         p.Status,
		"category_id":    p.CategoryID,
		"subcategory_id": p.SubcategoryID,
		"images":         p.Images,
		"specifications": p.Specifications,
		"variants":       p.Variants,
	}
	if err := r.db.Model(existing).Updates(changes).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes the row and returns the deleted product so the caller can
// clean up its images from object storage afterwards.
func (r *ProductsRepository) Delete(id string) (*Product, error) {
	product, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Delete(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

func (r *ProductsRepository) List() ([]Product, error) {
	var products []Product
	if err := r.db.
		Preload("Category").
		Order("created_at DESC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Search does a case-insensitive substring match over product name,
// description, and category name.
func (r *ProductsRepository) Search(query string) ([]Product, error) {
	like := "%" + query + "%"
	var products []Product
	if err := r.db.
		Joins("LEFT JOIN categories ON categories.id = products.category_id").
		Where("products.name ILIKE ? OR products.description ILIKE ? OR categories.name ILIKE ?", like, like, like).
		Preload("Category").
		Order("products.created_at DESC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
