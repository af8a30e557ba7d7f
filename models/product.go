package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProductStatus string

const (
	ProductStatusDraft     ProductStatus = "Draft"
	ProductStatusPublished ProductStatus = "Published"
)

// ParseProductStatus maps a string onto the product status vocabulary.
func ParseProductStatus(s string) (ProductStatus, error) {
	switch s {
	case string(ProductStatusDraft):
		return ProductStatusDraft, nil
	case string(ProductStatusPublished):
		return ProductStatusPublished, nil
	default:
		return "", errors.New("invalid product status")
	}
}

// SpecificationEntry is a single documentation key/value pair.
type SpecificationEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// SpecificationGroup is a titled block of free-form product documentation.
// It never affects price or cart behavior.
type SpecificationGroup struct {
	Title   string               `json:"title"`
	Entries []SpecificationEntry `json:"entries"`
}

type Product struct {
	ID             string                                  `gorm:"primaryKey" json:"id"`
	Name           string                                  `gorm:"not null" json:"name"`
	Description    string                                  `json:"description"`
	Price          float64                                 `gorm:"not null" json:"price"`
	CrossedPrice   float64                                 `json:"crossedPrice"`
	Stock          int                                     `json:"stock"`
	Status         ProductStatus                           `gorm:"type:VARCHAR(20);default:'Draft'" json:"status"`
	CategoryID     string                                  `gorm:"index;not null" json:"categoryId"`
	Category       *Category                               `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	SubcategoryID  *string                                 `gorm:"index" json:"subcategoryId"`
	Images         datatypes.JSONSlice[string]             `json:"images"`
	Specifications datatypes.JSONSlice[SpecificationGroup] `json:"specifications"`
	Variants       datatypes.JSONSlice[VariantGroup]       `json:"variants"`
	CreatedAt      time.Time                               `json:"createdAt"`
	UpdatedAt      time.Time                               `json:"updatedAt"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
