package models

import (
	"errors"

	"gorm.io/gorm"
)

type UsersRepository struct {
	db *gorm.DB
}

func NewUsersRepository(db *gorm.DB) *UsersRepository {
	return &UsersRepository{db: db}
}

// Ensure lazily creates the identity's row on first sight and returns the
// stored record either way.
func (r *UsersRepository) Ensure(u *User) (*User, error) {
	var existing User
	if err := r.db.Where(User{ID: u.ID}).Attrs(*u).FirstOrCreate(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

func (r *UsersRepository) GetByID(id string) (*User, error) {
	var user User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfile changes the fields a user may edit on their own account.
func (r *UsersRepository) UpdateProfile(id, name, phone string) (*User, error) {
	user, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	changes := map[string]any{"name": name, "phone": phone}
	if err := r.db.Model(user).Updates(changes).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UsersRepository) List() ([]User, error) {
	var users []User
	if err := r.db.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
