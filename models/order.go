package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type OrderStatus string
type PaymentStatus string
type PaymentType string

const (
	// Order statuses
	OrderStatusPending   OrderStatus = "Pending"   // Order placed, awaiting payment or dispatch
	OrderStatusPaid      OrderStatus = "Paid"      // Payment recorded
	OrderStatusShipped   OrderStatus = "Shipped"   // Out for delivery
	OrderStatusDelivered OrderStatus = "Delivered" // Customer received the item
	OrderStatusCancelled OrderStatus = "Cancelled" // Cancelled by admin

	// Payment statuses
	PaymentStatusUnpaid PaymentStatus = "Unpaid"
	PaymentStatusPaid   PaymentStatus = "Paid"

	// Payment types
	PaymentTypeCOD     PaymentType = "COD"
	PaymentTypeEsewa   PaymentType = "ESEWA"
	PaymentTypeKhalti  PaymentType = "KHALTI"
	PaymentTypeFonepay PaymentType = "FONEPAY"
)

// ParseOrderStatus maps a string onto the order status vocabulary.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch strings.ToLower(s) {
	case "pending":
		return OrderStatusPending, nil
	case "paid":
		return OrderStatusPaid, nil
	case "shipped":
		return OrderStatusShipped, nil
	case "delivered":
		return OrderStatusDelivered, nil
	case "cancelled":
		return OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// ParsePaymentStatus maps a string onto the payment status vocabulary.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch strings.ToLower(s) {
	case "unpaid":
		return PaymentStatusUnpaid, nil
	case "paid":
		return PaymentStatusPaid, nil
	default:
		return "", errors.New("invalid payment status")
	}
}

// ParsePaymentType maps a string onto the payment type vocabulary.
func ParsePaymentType(s string) (PaymentType, error) {
	switch strings.ToUpper(s) {
	case "COD":
		return PaymentTypeCOD, nil
	case "ESEWA":
		return PaymentTypeEsewa, nil
	case "KHALTI":
		return PaymentTypeKhalti, nil
	case "FONEPAY":
		return PaymentTypeFonepay, nil
	default:
		return "", errors.New("invalid payment type")
	}
}

// CustomerInfo is the delivery snapshot captured at checkout. Later edits to
// the user profile never touch it.
type CustomerInfo struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode,omitempty"`
}

// OrderItem is a denormalized line-item snapshot. Price and name are frozen
// at order time, independent of later catalog changes.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image"`
}

type Order struct {
	ID            string                           `gorm:"primaryKey" json:"id"`
	UserID        *string                          `gorm:"index" json:"userId"`
	Customer      datatypes.JSONType[CustomerInfo] `json:"customer"`
	Items         datatypes.JSONSlice[OrderItem]   `json:"items"`
	Total         float64                          `json:"total"`
	Status        OrderStatus                      `gorm:"type:VARCHAR(20);default:'Pending'" json:"status"`
	PaymentType   *PaymentType                     `gorm:"type:VARCHAR(20)" json:"paymentType"`
	PaymentStatus PaymentStatus                    `gorm:"type:VARCHAR(20);default:'Unpaid'" json:"paymentStatus"`
	CreatedAt     time.Time                        `json:"createdAt"`
}

// NewCustomerColumn wraps a customer snapshot for JSONB storage.
func NewCustomerColumn(c CustomerInfo) datatypes.JSONType[CustomerInfo] {
	return datatypes.NewJSONType(c)
}

// NewItemsColumn wraps a line-item snapshot for JSONB storage.
func NewItemsColumn(items []OrderItem) datatypes.JSONSlice[OrderItem] {
	return datatypes.NewJSONSlice(items)
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
