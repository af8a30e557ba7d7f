package models

import (
	"errors"

	"gorm.io/gorm"
)

type BannersRepository struct {
	db *gorm.DB
}

func NewBannersRepository(db *gorm.DB) *BannersRepository {
	return &BannersRepository{db: db}
}

func (r *BannersRepository) Create(b *Banner) error {
	return r.db.Create(b).Error
}

func (r *BannersRepository) GetByID(id string) (*Banner, error) {
	var banner Banner
	if err := r.db.First(&banner, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBannerNotFound
		}
		return nil, err
	}
	return &banner, nil
}

func (r *BannersRepository) Update(id string, b *Banner) (*Banner, error) {
	banner, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	changes := map[string]any{
		"title":     b.Title,
		"image":     b.Image,
		"cta_text":  b.CtaText,
		"cta_link":  b.CtaLink,
		"is_active": b.IsActive,
	}
	if err := r.db.Model(banner).Updates(changes).Error; err != nil {
		return nil, err
	}
	return banner, nil
}

func (r *BannersRepository) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&Banner{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrBannerNotFound
	}
	return nil
}

// List returns banners newest first; activeOnly narrows to live ones for
// the public storefront.
func (r *BannersRepository) List(activeOnly bool) ([]Banner, error) {
	q := r.db.Order("created_at DESC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var banners []Banner
	if err := q.Find(&banners).Error; err != nil {
		return nil, err
	}
	return banners, nil
}
