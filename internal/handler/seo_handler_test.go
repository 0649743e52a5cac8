package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupSEORouter() *gin.Engine {
	router := gin.New()
	h := NewSEOHandler("https://tourbase.example", []string{"en", "de"})
	router.GET("/robots.txt", h.Robots)
	router.GET("/sitemap.xml", h.Sitemap)
	return router
}

func TestSEOHandler_Robots(t *testing.T) {
	router := setupSEORouter()

	req := httptest.NewRequest(http.MethodGet, "/robots.txt", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	body := w.Body.String()
	for _, line := range []string{"Disallow: /api/", "Disallow: /dashboard", "Sitemap: https://tourbase.example/sitemap.xml"} {
		if !strings.Contains(body, line) {
			t.Errorf("robots.txt missing %q", line)
		}
	}
}

func TestSEOHandler_Sitemap(t *testing.T) {
	router := setupSEORouter()

	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	body := w.Body.String()
	for _, url := range []string{
		"<loc>https://tourbase.example/en/tours</loc>",
		"<loc>https://tourbase.example/de/tours</loc>",
	} {
		if !strings.Contains(body, url) {
			t.Errorf("sitemap missing %q", url)
		}
	}
	if !strings.Contains(body, "<changefreq>daily</changefreq>") {
		t.Error("sitemap missing changefreq hints")
	}
	if !strings.Contains(body, "<priority>1.0</priority>") {
		t.Error("sitemap missing priority hints")
	}
}
