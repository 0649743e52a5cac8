package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tourbase/tourbase/internal/domain"
	"github.com/tourbase/tourbase/internal/service"
	"github.com/tourbase/tourbase/pkg/response"
)

// stubTenantService resolves from a fixed tenant set
type stubTenantService struct {
	tenants []*domain.Tenant
}

func (s *stubTenantService) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	for _, t := range s.tenants {
		if t.Slug == slug {
			return t, nil
		}
	}
	return nil, service.ErrTenantNotFound
}

func (s *stubTenantService) GetByDomain(ctx context.Context, dom string) (*domain.Tenant, error) {
	for _, t := range s.tenants {
		if t.Domain == dom {
			return t, nil
		}
	}
	return nil, service.ErrTenantNotFound
}

func setupTenantRouter(svc service.TenantService) *gin.Engine {
	router := gin.New()
	h := NewTenantHandler(svc)
	router.GET("/api/v1/tenants/slug/:slug", h.GetBySlug)
	router.GET("/api/v1/tenants/domain/:domain", h.GetByDomain)
	return router
}

func TestTenantHandler_GetBySlug(t *testing.T) {
	svc := &stubTenantService{tenants: []*domain.Tenant{
		{ID: "tenant-a", Name: "Andes Trails", Slug: "andes-trails", Domain: "andestrails.example"},
	}}
	router := setupTenantRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tenants/slug/andes-trails", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "tenant-a", data["id"])
	assert.Equal(t, "Andes Trails", data["name"])
}

func TestTenantHandler_GetBySlug_NotFound(t *testing.T) {
	router := setupTenantRouter(&stubTenantService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tenants/slug/ghost", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, response.ErrCodeNotFound, resp.Error.Code)
}

func TestTenantHandler_GetByDomain(t *testing.T) {
	svc := &stubTenantService{tenants: []*domain.Tenant{
		{ID: "tenant-a", Slug: "andes-trails", Domain: "andestrails.example"},
	}}
	router := setupTenantRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tenants/domain/andestrails.example", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestTenantHandler_GetByDomain_NotFound(t *testing.T) {
	router := setupTenantRouter(&stubTenantService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tenants/domain/unknown.example", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}
