package models

import (
	"errors"

	"gorm.io/gorm"
)

type OrdersRepository struct {
	db *gorm.DB
}

func NewOrdersRepository(db *gorm.DB) *OrdersRepository {
	return &OrdersRepository{db: db}
}

// OrderUpdate carries the optional fields of an order patch. Nil means
// "leave untouched".
type OrderUpdate struct {
	Status        *OrderStatus
	PaymentStatus *PaymentStatus
	PaymentType   *PaymentType
}

// OrderFilters are AND-combined. EmailContains matches the snapshotted
// customer email, case-insensitively.
type OrderFilters struct {
	Status        *OrderStatus
	PaymentType   *PaymentType
	EmailContains string
}

// Create persists a new order. When user is non-nil the row is lazily
// created first, in the same transaction, so a failed order insert cannot
// leave an orphaned user behind.
func (r *OrdersRepository) Create(order *Order, user *User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if user != nil {
			var existing User
			if err := tx.Where(User{ID: user.ID}).Attrs(*user).FirstOrCreate(&existing).Error; err != nil {
				return err
			}
			order.UserID = &existing.ID
		}
		return tx.Create(order).Error
	})
}

func (r *OrdersRepository) GetByID(id string) (*Order, error) {
	var order Order
	if err := r.db.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// Update applies the supplied fields and returns the refreshed order.
// Last write wins at the row level; there is no optimistic locking on
// concurrent admin edits.
func (r *OrdersRepository) Update(id string, upd OrderUpdate) (*Order, error) {
	order, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	changes := map[string]any{}
	if upd.Status != nil {
		changes["status"] = *upd.Status
	}
	if upd.PaymentStatus != nil {
		changes["payment_status"] = *upd.PaymentStatus
	}
	if upd.PaymentType != nil {
		changes["payment_type"] = *upd.PaymentType
	}
	if len(changes) == 0 {
		return order, nil
	}

	if err := r.db.Model(order).Updates(changes).Error; err != nil {
		return nil, err
	}
	return order, nil
}

func (r *OrdersRepository) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&Order{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *OrdersRepository) List(f OrderFilters) ([]Order, error) {
	q := r.db.Order("created_at DESC")
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.PaymentType != nil {
		q = q.Where("payment_type = ?", *f.PaymentType)
	}
	if f.EmailContains != "" {
		q = q.Where("customer ->> 'email' ILIKE ?", "%"+f.EmailContains+"%")
	}

	var orders []Order
	if err := q.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListByEmail returns the order history attributed to an email address via
// the snapshotted customer record, not the user foreign key. Guest orders
// placed before the account existed are picked up; orders placed under a
// different email are not.
func (r *OrdersRepository) ListByEmail(email string) ([]Order, error) {
	var orders []Order
	if err := r.db.
		Where("LOWER(customer ->> 'email') = LOWER(?)", email).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
