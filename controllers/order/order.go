package orderControllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/diwashkafle/mygadgetnepal/httperr"
	"github.com/diwashkafle/mygadgetnepal/middleware"
	"github.com/diwashkafle/mygadgetnepal/models"
)

// OrderStore is the persistence surface the handlers need.
type OrderStore interface {
	Create(order *models.Order, user *models.User) error
	GetByID(id string) (*models.Order, error)
	Update(id string, upd models.OrderUpdate) (*models.Order, error)
	Delete(id string) error
	List(f models.OrderFilters) ([]models.Order, error)
	ListByEmail(email string) ([]models.Order, error)
}

type Handler struct {
	store  OrderStore
	policy PaymentPolicy
	events *EventHub
	// verifyTotals turns on server-side recomputation of the declared
	// total. Off by default for compatibility with clients that round
	// differently.
	verifyTotals bool
}

func NewHandler(store OrderStore, policy PaymentPolicy, events *EventHub, verifyTotals bool) *Handler {
	return &Handler{store: store, policy: policy, events: events, verifyTotals: verifyTotals}
}

// -------- Requests --------

type createOrderRequest struct {
	Customer    models.CustomerInfo `json:"customer"`
	Items       []models.OrderItem  `json:"items"`
	Total       float64             `json:"total"`
	PaymentType string              `json:"paymentType"`
}

type selectPaymentRequest struct {
	PaymentType string `json:"paymentType"`
}

type updateOrderRequest struct {
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
}

func validateCustomer(c models.CustomerInfo) error {
	switch {
	case strings.TrimSpace(c.Name) == "":
		return models.NewValidationError("customer name is required")
	case strings.TrimSpace(c.Email) == "":
		return models.NewValidationError("customer email is required")
	case strings.TrimSpace(c.Phone) == "":
		return models.NewValidationError("customer phone is required")
	case strings.TrimSpace(c.Address) == "":
		return models.NewValidationError("customer address is required")
	case strings.TrimSpace(c.City) == "":
		return models.NewValidationError("customer city is required")
	}
	return nil
}

func validateItems(items []models.OrderItem) error {
	if len(items) == 0 {
		return models.NewValidationError("order must contain at least one item")
	}
	for i, item := range items {
		if item.ProductID == "" || item.Name == "" {
			return models.NewValidationError("item %d is missing product information", i)
		}
		if item.Quantity < 1 {
			return models.NewValidationError("item %d has an invalid quantity", i)
		}
	}
	return nil
}

// -------- Handlers --------

// Create places a new order from the client-assembled cart snapshot.
// Signed-in callers get their user row lazily created alongside the order;
// anonymous callers place a guest order with no user linkage.
func (h *Handler) Create(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := validateCustomer(req.Customer); err != nil {
		httperr.JSON(c, err)
		return
	}
	if err := validateItems(req.Items); err != nil {
		httperr.JSON(c, err)
		return
	}
	if req.Total <= 0 {
		httperr.JSON(c, models.NewValidationError("order total must be positive"))
		return
	}
	if h.verifyTotals {
		if err := verifyTotal(req.Items, req.Total); err != nil {
			httperr.JSON(c, err)
			return
		}
	}

	order := &models.Order{
		Customer:      models.NewCustomerColumn(req.Customer),
		Items:         models.NewItemsColumn(req.Items),
		Total:         req.Total,
		Status:        models.OrderStatusPending,
		PaymentStatus: models.PaymentStatusUnpaid,
	}
	if req.PaymentType != "" {
		pt, err := models.ParsePaymentType(req.PaymentType)
		if err != nil {
			httperr.JSON(c, models.NewValidationError("%s", err.Error()))
			return
		}
		order.PaymentType = &pt
	}

	var user *models.User
	if ident, ok := middleware.IdentityFrom(c); ok {
		name := ident.Name
		if name == "" {
			name = "Guest User"
		}
		user = &models.User{ID: ident.ID, Email: ident.Email, Name: name, Role: models.UserRoleUser}
	}

	if err := h.store.Create(order, user); err != nil {
		httperr.JSON(c, err)
		return
	}

	h.events.Broadcast("order.created", order)
	c.JSON(http.StatusCreated, gin.H{"orderId": order.ID})
}

// Get returns a single order, snapshots and all.
func (h *Handler) Get(c *gin.Context) {
	order, err := h.store.GetByID(c.Param("id"))
	if err != nil {
		httperr.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// SelectPayment records the customer's payment choice and derives the order
// status through the payment policy.
func (h *Handler) SelectPayment(c *gin.Context) {
	var req selectPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.PaymentType == "" {
		httperr.JSON(c, models.NewValidationError("paymentType is required"))
		return
	}
	pt, err := models.ParsePaymentType(req.PaymentType)
	if err != nil {
		httperr.JSON(c, models.NewValidationError("%s", err.Error()))
		return
	}

	status := h.policy.StatusFor(pt)
	order, err := h.store.Update(c.Param("id"), models.OrderUpdate{
		PaymentType: &pt,
		Status:      &status,
	})
	if err != nil {
		httperr.JSON(c, err)
		return
	}

	h.events.Broadcast("order.payment_selected", order)
	c.JSON(http.StatusOK, order)
}

// UpdateStatus is the admin override: either axis may be set to any value
// in its vocabulary, independent of the current one. At least one field
// must be supplied.
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req updateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status == "" && req.PaymentStatus == "" {
		httperr.JSON(c, models.NewValidationError("at least one of status or paymentStatus must be provided"))
		return
	}

	var upd models.OrderUpdate
	if req.Status != "" {
		status, err := models.ParseOrderStatus(req.Status)
		if err != nil {
			httperr.JSON(c, models.NewValidationError("%s", err.Error()))
			return
		}
		upd.Status = &status
	}
	if req.PaymentStatus != "" {
		ps, err := models.ParsePaymentStatus(req.PaymentStatus)
		if err != nil {
			httperr.JSON(c, models.NewValidationError("%s", err.Error()))
			return
		}
		upd.PaymentStatus = &ps
	}

	order, err := h.store.Update(c.Param("id"), upd)
	if err != nil {
		httperr.JSON(c, err)
		return
	}

	h.events.Broadcast("order.updated", order)
	c.JSON(http.StatusOK, order)
}

// Delete removes an order permanently. No soft delete, no audit trail.
func (h *Handler) Delete(c *gin.Context) {
	if err := h.store.Delete(c.Param("id")); err != nil {
		httperr.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}

// List returns orders newest first, narrowed by the optional query filters.
func (h *Handler) List(c *gin.Context) {
	var filters models.OrderFilters
	if s := c.Query("status"); s != "" {
		status, err := models.ParseOrderStatus(s)
		if err != nil {
			httperr.JSON(c, models.NewValidationError("%s", err.Error()))
			return
		}
		filters.Status = &status
	}
	if s := c.Query("paymentType"); s != "" {
		pt, err := models.ParsePaymentType(s)
		if err != nil {
			httperr.JSON(c, models.NewValidationError("%s", err.Error()))
			return
		}
		filters.PaymentType = &pt
	}
	filters.EmailContains = c.Query("email")

	orders, err := h.store.List(filters)
	if err != nil {
		httperr.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// MyOrders returns the caller's order history, attributed through the
// snapshotted customer email rather than the user foreign key.
func (h *Handler) MyOrders(c *gin.Context) {
	ident, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "login required"})
		return
	}
	orders, err := h.store.ListByEmail(ident.Email)
	if err != nil {
		httperr.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}
