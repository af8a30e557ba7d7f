package orderControllers

import "github.com/diwashkafle/mygadgetnepal/models"

// PaymentPolicy decides the order status that follows a payment-type
// selection. It exists so the shortcut below can be swapped for genuine
// gateway confirmation without touching the handlers.
type PaymentPolicy interface {
	StatusFor(pt models.PaymentType) models.OrderStatus
}

// CaptureLessPolicy stands in for real payment capture: cash on delivery
// stays Pending, every prepaid wallet is recorded as Paid immediately.
type CaptureLessPolicy struct{}

func (CaptureLessPolicy) StatusFor(pt models.PaymentType) models.OrderStatus {
	if pt == models.PaymentTypeCOD {
		return models.OrderStatusPending
	}
	return models.OrderStatusPaid
}
