package userControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diwashkafle/mygadgetnepal/auth"
	"github.com/diwashkafle/mygadgetnepal/models"
)

type mockUserStore struct {
	users map[string]*models.User
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{users: make(map[string]*models.User)}
}

func (m *mockUserStore) Ensure(u *models.User) (*models.User, error) {
	if existing, ok := m.users[u.ID]; ok {
		return existing, nil
	}
	m.users[u.ID] = u
	return u, nil
}

func (m *mockUserStore) GetByID(id string) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	return u, nil
}

func (m *mockUserStore) UpdateProfile(id, name, phone string) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	u.Name = name
	u.Phone = phone
	return u, nil
}

func (m *mockUserStore) List() ([]models.User, error) {
	out := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

func adminDomainCheck(email string) bool { return email == "admin@x.com" }

func newUserRouter(store UserStore, ident *auth.Identity) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(store, adminDomainCheck)
	r := gin.New()
	if ident != nil {
		r.Use(func(c *gin.Context) { c.Set("identity", *ident) })
	}
	r.POST("/users/sync", h.Sync)
	r.GET("/users/me", h.Me)
	r.PATCH("/users/:id", h.UpdateProfile)
	r.GET("/admin/users", h.List)
	return r
}

func serve(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestSync(t *testing.T) {
	t.Run("first sync creates the row with the derived role", func(t *testing.T) {
		store := newMockUserStore()
		r := newUserRouter(store, &auth.Identity{ID: "u-1", Email: "admin@x.com", Name: "Admin"})

		rec := serve(r, http.MethodPost, "/users/sync", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, store.users, "u-1")
		assert.Equal(t, models.UserRoleAdmin, store.users["u-1"].Role)
	})

	t.Run("regular email gets the user role and a name fallback", func(t *testing.T) {
		store := newMockUserStore()
		r := newUserRouter(store, &auth.Identity{ID: "u-2", Email: "b@x.com"})

		rec := serve(r, http.MethodPost, "/users/sync", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, models.UserRoleUser, store.users["u-2"].Role)
		assert.Equal(t, "Guest User", store.users["u-2"].Name)
	})

	t.Run("second sync returns the stored row untouched", func(t *testing.T) {
		store := newMockUserStore()
		store.users["u-3"] = &models.User{ID: "u-3", Email: "c@x.com", Name: "Original", Role: models.UserRoleUser}
		r := newUserRouter(store, &auth.Identity{ID: "u-3", Email: "c@x.com", Name: "Renamed"})

		rec := serve(r, http.MethodPost, "/users/sync", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Original", store.users["u-3"].Name)
	})

	t.Run("anonymous caller is rejected", func(t *testing.T) {
		r := newUserRouter(newMockUserStore(), nil)
		rec := serve(r, http.MethodPost, "/users/sync", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestMe(t *testing.T) {
	store := newMockUserStore()
	store.users["u-1"] = &models.User{ID: "u-1", Email: "a@x.com", Name: "A"}

	rec := serve(newUserRouter(store, &auth.Identity{ID: "u-1", Email: "a@x.com"}), http.MethodGet, "/users/me", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var user models.User
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&user))
	assert.Equal(t, "A", user.Name)

	rec = serve(newUserRouter(store, &auth.Identity{ID: "ghost", Email: "g@x.com"}), http.MethodGet, "/users/me", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateProfile(t *testing.T) {
	store := newMockUserStore()
	store.users["u-1"] = &models.User{ID: "u-1", Email: "a@x.com", Name: "A"}
	store.users["u-2"] = &models.User{ID: "u-2", Email: "b@x.com", Name: "B"}

	t.Run("caller edits their own profile", func(t *testing.T) {
		r := newUserRouter(store, &auth.Identity{ID: "u-1", Email: "a@x.com"})
		rec := serve(r, http.MethodPatch, "/users/u-1", map[string]string{"name": "A2", "phone": "98"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "A2", store.users["u-1"].Name)
		assert.Equal(t, "98", store.users["u-1"].Phone)
	})

	t.Run("editing another user's profile is refused", func(t *testing.T) {
		r := newUserRouter(store, &auth.Identity{ID: "u-1", Email: "a@x.com"})
		rec := serve(r, http.MethodPatch, "/users/u-2", map[string]string{"name": "Hijacked"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "B", store.users["u-2"].Name)
	})
}
