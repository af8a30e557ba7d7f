package orderControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diwashkafle/mygadgetnepal/auth"
	"github.com/diwashkafle/mygadgetnepal/middleware"
	"github.com/diwashkafle/mygadgetnepal/models"
)

// --- Mock store ---

type mockOrderStore struct {
	orders      map[string]*models.Order
	nextID      int
	lastUser    *models.User
	lastFilters models.OrderFilters
}

func newMockOrderStore() *mockOrderStore {
	return &mockOrderStore{orders: make(map[string]*models.Order)}
}

func (m *mockOrderStore) Create(order *models.Order, user *models.User) error {
	m.nextID++
	order.ID = fmt.Sprintf("ord-%d", m.nextID)
	m.lastUser = user
	if user != nil {
		order.UserID = &user.ID
	}
	m.orders[order.ID] = order
	return nil
}

func (m *mockOrderStore) GetByID(id string) (*models.Order, error) {
	order, ok := m.orders[id]
	if !ok {
		return nil, models.ErrOrderNotFound
	}
	return order, nil
}

func (m *mockOrderStore) Update(id string, upd models.OrderUpdate) (*models.Order, error) {
	order, ok := m.orders[id]
	if !ok {
		return nil, models.ErrOrderNotFound
	}
	if upd.Status != nil {
		order.Status = *upd.Status
	}
	if upd.PaymentStatus != nil {
		order.PaymentStatus = *upd.PaymentStatus
	}
	if upd.PaymentType != nil {
		order.PaymentType = upd.PaymentType
	}
	return order, nil
}

func (m *mockOrderStore) Delete(id string) error {
	if _, ok := m.orders[id]; !ok {
		return models.ErrOrderNotFound
	}
	delete(m.orders, id)
	return nil
}

func (m *mockOrderStore) List(f models.OrderFilters) ([]models.Order, error) {
	m.lastFilters = f
	out := make([]models.Order, 0, len(m.orders))
	for _, o := range m.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (m *mockOrderStore) ListByEmail(email string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range m.orders {
		if strings.EqualFold(o.Customer.Data().Email, email) {
			out = append(out, *o)
		}
	}
	return out, nil
}

// --- Helpers ---

func newTestRouter(h *Handler, ident *auth.Identity) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if ident != nil {
		r.Use(func(c *gin.Context) { c.Set("identity", *ident) })
	}
	r.POST("/orders", h.Create)
	r.GET("/orders/me", middleware.RequireAuth, h.MyOrders)
	r.GET("/orders/:id", h.Get)
	r.PUT("/orders/:id/payment", h.SelectPayment)
	r.GET("/admin/orders", h.List)
	r.PATCH("/admin/orders/:id", h.UpdateStatus)
	r.DELETE("/admin/orders/:id", h.Delete)
	return r
}

func newTestHandler(store OrderStore, verifyTotals bool) *Handler {
	return NewHandler(store, CaptureLessPolicy{}, NewEventHub(), verifyTotals)
}

func validCustomer() models.CustomerInfo {
	return models.CustomerInfo{
		Name:    "A",
		Email:   "a@x.com",
		Phone:   "9812345678",
		Address: "X",
		City:    "Y",
	}
}

func validItems() []models.OrderItem {
	return []models.OrderItem{
		{ProductID: "p1", Name: "Phone", Price: 1000, Quantity: 2, Image: "p1.jpg"},
	}
}

func postJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

// --- Tests ---

func TestCreateOrder(t *testing.T) {
	testCases := []struct {
		name           string
		mutate         func(req map[string]any)
		expectedStatus int
	}{
		{
			name:           "valid order",
			mutate:         func(req map[string]any) {},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing customer phone",
			mutate:         func(req map[string]any) { req["customer"] = models.CustomerInfo{Name: "A", Email: "a@x.com", Address: "X", City: "Y"} },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty items",
			mutate:         func(req map[string]any) { req["items"] = []models.OrderItem{} },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "zero total",
			mutate:         func(req map[string]any) { req["total"] = 0 },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "zero quantity item",
			mutate: func(req map[string]any) {
				req["items"] = []models.OrderItem{{ProductID: "p1", Name: "Phone", Price: 1000, Quantity: 0}}
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid payment type",
			mutate:         func(req map[string]any) { req["paymentType"] = "PAYPAL" },
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := newMockOrderStore()
			r := newTestRouter(newTestHandler(store, false), nil)

			req := map[string]any{
				"customer": validCustomer(),
				"items":    validItems(),
				"total":    2000,
			}
			tc.mutate(req)

			rec := postJSON(r, http.MethodPost, "/orders", req)
			assert.Equal(t, tc.expectedStatus, rec.Code)

			if tc.expectedStatus == http.StatusCreated {
				var resp map[string]string
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				order, ok := store.orders[resp["orderId"]]
				require.True(t, ok, "order should be persisted under the returned id")
				assert.Equal(t, models.OrderStatusPending, order.Status)
				assert.Equal(t, models.PaymentStatusUnpaid, order.PaymentStatus)
				assert.Nil(t, order.UserID, "guest order carries no user linkage")
			} else {
				assert.Empty(t, store.orders, "nothing should be persisted on rejection")
			}
		})
	}
}

func TestCreateOrderEnsuresUser(t *testing.T) {
	store := newMockOrderStore()
	ident := &auth.Identity{ID: "u-1", Email: "a@x.com"}
	r := newTestRouter(newTestHandler(store, false), ident)

	rec := postJSON(r, http.MethodPost, "/orders", map[string]any{
		"customer": validCustomer(),
		"items":    validItems(),
		"total":    2000,
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, store.lastUser)
	assert.Equal(t, "u-1", store.lastUser.ID)
	assert.Equal(t, "a@x.com", store.lastUser.Email)
	assert.Equal(t, "Guest User", store.lastUser.Name, "missing display name falls back")
}

func TestCreateOrderTotalTrusted(t *testing.T) {
	// The declared total is stored as-is, even when it disagrees with the
	// item snapshots.
	store := newMockOrderStore()
	r := newTestRouter(newTestHandler(store, false), nil)

	rec := postJSON(r, http.MethodPost, "/orders", map[string]any{
		"customer": validCustomer(),
		"items":    validItems(),
		"total":    2000,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))

	getRec := postJSON(r, http.MethodGet, "/orders/"+created["orderId"], nil)
	require.Equal(t, http.StatusOK, getRec.Code)

	var fetched models.Order
	require.NoError(t, json.NewDecoder(getRec.Body).Decode(&fetched))
	assert.Equal(t, float64(2000), fetched.Total)
	assert.Len(t, fetched.Items, 1)
}

func TestCreateOrderTotalVerification(t *testing.T) {
	store := newMockOrderStore()
	r := newTestRouter(newTestHandler(store, true), nil)

	rec := postJSON(r, http.MethodPost, "/orders", map[string]any{
		"customer": validCustomer(),
		"items":    validItems(),
		"total":    1999,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(r, http.MethodPost, "/orders", map[string]any{
		"customer": validCustomer(),
		"items":    validItems(),
		"total":    2000,
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestSelectPayment(t *testing.T) {
	testCases := []struct {
		name           string
		paymentType    string
		expectedStatus models.OrderStatus
	}{
		{"cash on delivery stays pending", "COD", models.OrderStatusPending},
		{"esewa is marked paid", "ESEWA", models.OrderStatusPaid},
		{"khalti is marked paid", "KHALTI", models.OrderStatusPaid},
		{"fonepay is marked paid", "FONEPAY", models.OrderStatusPaid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := newMockOrderStore()
			r := newTestRouter(newTestHandler(store, false), nil)

			created := postJSON(r, http.MethodPost, "/orders", map[string]any{
				"customer": validCustomer(),
				"items":    validItems(),
				"total":    2000,
			})
			require.Equal(t, http.StatusCreated, created.Code)
			var resp map[string]string
			require.NoError(t, json.NewDecoder(created.Body).Decode(&resp))

			rec := postJSON(r, http.MethodPut, "/orders/"+resp["orderId"]+"/payment",
				map[string]any{"paymentType": tc.paymentType})
			require.Equal(t, http.StatusOK, rec.Code)

			order := store.orders[resp["orderId"]]
			require.NotNil(t, order.PaymentType)
			assert.Equal(t, tc.paymentType, string(*order.PaymentType))
			assert.Equal(t, tc.expectedStatus, order.Status)
			assert.Equal(t, models.PaymentStatusUnpaid, order.PaymentStatus,
				"payment selection must not touch the payment status axis")
		})
	}

	t.Run("unknown payment type is rejected", func(t *testing.T) {
		store := newMockOrderStore()
		r := newTestRouter(newTestHandler(store, false), nil)
		rec := postJSON(r, http.MethodPut, "/orders/ord-1/payment", map[string]any{"paymentType": "STRIPE"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing order yields 404", func(t *testing.T) {
		store := newMockOrderStore()
		r := newTestRouter(newTestHandler(store, false), nil)
		rec := postJSON(r, http.MethodPut, "/orders/ghost/payment", map[string]any{"paymentType": "COD"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUpdateStatus(t *testing.T) {
	seed := func(store *mockOrderStore) string {
		order := &models.Order{
			Customer:      models.NewCustomerColumn(validCustomer()),
			Items:         models.NewItemsColumn(validItems()),
			Total:         2000,
			Status:        models.OrderStatusDelivered,
			PaymentStatus: models.PaymentStatusUnpaid,
		}
		require.NoError(t, store.Create(order, nil))
		return order.ID
	}

	t.Run("both fields absent is rejected", func(t *testing.T) {
		store := newMockOrderStore()
		id := seed(store)
		r := newTestRouter(newTestHandler(store, false), nil)
		rec := postJSON(r, http.MethodPatch, "/admin/orders/"+id, map[string]any{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("status alone leaves payment status untouched", func(t *testing.T) {
		store := newMockOrderStore()
		id := seed(store)
		r := newTestRouter(newTestHandler(store, false), nil)
		rec := postJSON(r, http.MethodPatch, "/admin/orders/"+id, map[string]any{"status": "Shipped"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, models.OrderStatusShipped, store.orders[id].Status)
		assert.Equal(t, models.PaymentStatusUnpaid, store.orders[id].PaymentStatus)
	})

	t.Run("payment status alone leaves status untouched", func(t *testing.T) {
		store := newMockOrderStore()
		id := seed(store)
		r := newTestRouter(newTestHandler(store, false), nil)
		rec := postJSON(r, http.MethodPatch, "/admin/orders/"+id, map[string]any{"paymentStatus": "Paid"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, models.OrderStatusDelivered, store.orders[id].Status)
		assert.Equal(t, models.PaymentStatusPaid, store.orders[id].PaymentStatus)
	})

	t.Run("any backward transition is allowed", func(t *testing.T) {
		store := newMockOrderStore()
		id := seed(store)
		r := newTestRouter(newTestHandler(store, false), nil)
		rec := postJSON(r, http.MethodPatch, "/admin/orders/"+id, map[string]any{"status": "Pending"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, models.OrderStatusPending, store.orders[id].Status)
	})

	t.Run("unknown status value is rejected", func(t *testing.T) {
		store := newMockOrderStore()
		id := seed(store)
		r := newTestRouter(newTestHandler(store, false), nil)
		rec := postJSON(r, http.MethodPatch, "/admin/orders/"+id, map[string]any{"status": "Archived"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing order yields 404", func(t *testing.T) {
		store := newMockOrderStore()
		r := newTestRouter(newTestHandler(store, false), nil)
		rec := postJSON(r, http.MethodPatch, "/admin/orders/ghost", map[string]any{"status": "Paid"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteOrder(t *testing.T) {
	store := newMockOrderStore()
	r := newTestRouter(newTestHandler(store, false), nil)

	rec := postJSON(r, http.MethodDelete, "/admin/orders/ghost", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	created := postJSON(r, http.MethodPost, "/orders", map[string]any{
		"customer": validCustomer(),
		"items":    validItems(),
		"total":    2000,
	})
	require.Equal(t, http.StatusCreated, created.Code)
	var resp map[string]string
	require.NoError(t, json.NewDecoder(created.Body).Decode(&resp))

	rec = postJSON(r, http.MethodDelete, "/admin/orders/"+resp["orderId"], nil)
	require.Equal(t, http.StatusOK, rec.Code)

	listRec := postJSON(r, http.MethodGet, "/admin/orders", nil)
	require.Equal(t, http.StatusOK, listRec.Code)
	var orders []models.Order
	require.NoError(t, json.NewDecoder(listRec.Body).Decode(&orders))
	assert.Empty(t, orders)
}

func TestListFilterParsing(t *testing.T) {
	store := newMockOrderStore()
	r := newTestRouter(newTestHandler(store, false), nil)

	rec := postJSON(r, http.MethodGet, "/admin/orders?status=Shipped&paymentType=COD&email=a@x", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, store.lastFilters.Status)
	assert.Equal(t, models.OrderStatusShipped, *store.lastFilters.Status)
	require.NotNil(t, store.lastFilters.PaymentType)
	assert.Equal(t, models.PaymentTypeCOD, *store.lastFilters.PaymentType)
	assert.Equal(t, "a@x", store.lastFilters.EmailContains)

	rec = postJSON(r, http.MethodGet, "/admin/orders?status=Archived", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMyOrders(t *testing.T) {
	store := newMockOrderStore()
	guest := &models.Order{
		Customer: models.NewCustomerColumn(models.CustomerInfo{
			Name: "A", Email: "A@X.com", Phone: "98", Address: "X", City: "Y",
		}),
		Items: models.NewItemsColumn(validItems()),
		Total: 2000,
	}
	require.NoError(t, store.Create(guest, nil))

	t.Run("matches the snapshotted email case-insensitively", func(t *testing.T) {
		ident := &auth.Identity{ID: "u-1", Email: "a@x.com"}
		r := newTestRouter(newTestHandler(store, false), ident)
		rec := postJSON(r, http.MethodGet, "/orders/me", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var orders []models.Order
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&orders))
		assert.Len(t, orders, 1, "guest order placed under the same email is attributed")
	})

	t.Run("anonymous caller is rejected", func(t *testing.T) {
		r := newTestRouter(newTestHandler(store, false), nil)
		rec := postJSON(r, http.MethodGet, "/orders/me", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
