package ngos

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/surplustoserve/backend/internal/auth"
	"github.com/surplustoserve/backend/internal/donors"
	"github.com/surplustoserve/backend/internal/models"
)

type fakeStore struct {
	byEmail map[string]*models.NGO
	byID    map[uuid.UUID]*models.NGO
}

func newFakeStore() *fakeStore {
	return &fakeStore{byEmail: make(map[string]*models.NGO), byID: make(map[uuid.UUID]*models.NGO)}
}

func (f *fakeStore) Create(_ context.Context, n *models.NGO) error {
	n.ID = uuid.New()
	f.byEmail[n.Email] = n
	f.byID[n.ID] = n
	return nil
}

func (f *fakeStore) GetByEmail(_ context.Context, email string) (*models.NGO, error) {
	if n, ok := f.byEmail[email]; ok {
		return n, nil
	}
	return nil, ErrNotFound
}

func (f *fakeStore) GetByID(_ context.Context, id uuid.UUID) (*models.NGO, error) {
	if n, ok := f.byID[id]; ok {
		return n, nil
	}
	return nil, ErrNotFound
}

// brokenStore fails every call, as a store does when the database is down.
type brokenStore struct{}

func (brokenStore) Create(context.Context, *models.NGO) error {
	return errors.New("connection refused")
}

func (brokenStore) GetByEmail(context.Context, string) (*models.NGO, error) {
	return nil, errors.New("connection refused")
}

func (brokenStore) GetByID(context.Context, uuid.UUID) (*models.NGO, error) {
	return nil, errors.New("connection refused")
}

func newRouter(store Store) (*gin.Engine, *auth.TokenService) {
	gin.SetMode(gin.TestMode)
	tokens := auth.NewTokenService("test-secret", 168)
	h := NewHandler(store, tokens, zap.NewNop())
	r := gin.New()
	r.POST("/ngos/register", h.Register)
	r.POST("/ngos/login", h.Login)
	r.POST("/ngos/validate-secret", h.ValidateSecret)
	return r, tokens
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerHelpers(t *testing.T, r *gin.Engine) uuid.UUID {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/ngos/register", gin.H{
		"name": "Helpers", "email": "helpers@example.com", "password": "secret1",
		"phone": "555-0200", "address": "1 Relief Rd", "secret_key": "xyz",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var resp struct {
		NGO models.NGOPublic `json:"ngo"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.NGO.ID
}

func TestRegisterNeverReturnsSecretKey(t *testing.T) {
	store := newFakeStore()
	r, tokens := newRouter(store)

	w := doJSON(t, r, http.MethodPost, "/ngos/register", gin.H{
		"name": "Helpers", "email": "helpers@example.com", "password": "secret1",
		"phone": "555-0200", "address": "1 Relief Rd", "secret_key": "xyz",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "xyz")
	assert.NotContains(t, w.Body.String(), "secret_key")

	var resp struct {
		Token string           `json:"token"`
		NGO   models.NGOPublic `json:"ngo"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "1 Relief Rd", resp.NGO.Address)

	claims, err := tokens.Validate(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, auth.KindNGO, claims.Kind)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r, _ := newRouter(newFakeStore())
	registerHelpers(t, r)

	w := doJSON(t, r, http.MethodPost, "/ngos/register", gin.H{
		"name": "Helpers Two", "email": "helpers@example.com", "password": "secret2",
		"phone": "555-0201", "address": "2 Relief Rd", "secret_key": "abc",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email already registered")
}

func TestLoginInvalidCredentials(t *testing.T) {
	r, _ := newRouter(newFakeStore())
	registerHelpers(t, r)

	w := doJSON(t, r, http.MethodPost, "/ngos/login", gin.H{"email": "helpers@example.com", "password": "wrong-1"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/ngos/login", gin.H{"email": "ghost@example.com", "password": "secret1"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestValidateSecret(t *testing.T) {
	r, _ := newRouter(newFakeStore())
	id := registerHelpers(t, r)

	w := doJSON(t, r, http.MethodPost, "/ngos/validate-secret", gin.H{"ngoId": id.String(), "secretKey": "xyz"})
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Valid bool `json:"valid"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Valid)

	w = doJSON(t, r, http.MethodPost, "/ngos/validate-secret", gin.H{"ngoId": id.String(), "secretKey": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid secret key")

	w = doJSON(t, r, http.MethodPost, "/ngos/validate-secret", gin.H{"ngoId": uuid.NewString(), "secretKey": "xyz"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPost, "/ngos/validate-secret", gin.H{"ngoId": "not-a-uuid", "secretKey": "xyz"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStoreFailureIsServerError(t *testing.T) {
	r, _ := newRouter(brokenStore{})

	w := doJSON(t, r, http.MethodPost, "/ngos/login", gin.H{"email": "helpers@example.com", "password": "secret1"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Server error")

	w = doJSON(t, r, http.MethodPost, "/ngos/validate-secret", gin.H{"ngoId": uuid.NewString(), "secretKey": "xyz"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Server error")

	w = doJSON(t, r, http.MethodPost, "/ngos/register", gin.H{
		"name": "Helpers", "email": "helpers@example.com", "password": "secret1",
		"phone": "555-0200", "address": "1 Relief Rd", "secret_key": "xyz",
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

type fakeDonorStore struct {
	byEmail map[string]*models.Donor
}

func (f *fakeDonorStore) Create(_ context.Context, name, email, passwordHash, phone string) (*models.Donor, error) {
	d := &models.Donor{ID: uuid.New(), Name: name, Email: email, PasswordHash: passwordHash, Phone: phone}
	f.byEmail[email] = d
	return d, nil
}

func (f *fakeDonorStore) GetByEmail(_ context.Context, email string) (*models.Donor, error) {
	if d, ok := f.byEmail[email]; ok {
		return d, nil
	}
	return nil, donors.ErrNotFound
}

// Donor and NGO accounts live in separate tables, so the same email may be
// registered once under each kind.
func TestEmailSpacesAreIndependent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens := auth.NewTokenService("test-secret", 168)
	r := gin.New()
	r.POST("/ngos/register", NewHandler(newFakeStore(), tokens, zap.NewNop()).Register)
	dh := donors.NewHandler(&fakeDonorStore{byEmail: make(map[string]*models.Donor)}, tokens, zap.NewNop())
	r.POST("/donors/register", dh.Register)

	w := doJSON(t, r, http.MethodPost, "/donors/register", gin.H{
		"name": "Shared", "email": "shared@example.com", "password": "secret1", "phone": "555-0300",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/ngos/register", gin.H{
		"name": "Shared NGO", "email": "shared@example.com", "password": "secret1",
		"phone": "555-0301", "address": "3 Relief Rd", "secret_key": "xyz",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}
