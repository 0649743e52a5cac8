package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/tourbase/tourbase/internal/domain"
	"github.com/tourbase/tourbase/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubMailer returns a fixed drain result
type stubMailer struct {
	processed int
	err       error
}

func (m *stubMailer) Enqueue(ctx context.Context, tenantID string, kind domain.EmailKind, recipient string, payload map[string]interface{}) error {
	return nil
}

func (m *stubMailer) ProcessPending(ctx context.Context) (int, error) {
	return m.processed, m.err
}

func setupCronRouter(mailer *stubMailer, secret string) *gin.Engine {
	router := gin.New()
	h := NewCronHandler(mailer, secret, logger.NewNop())
	router.GET("/api/cron/emails", h.ProcessEmails)
	return router
}

func TestCronHandler_ProcessEmails(t *testing.T) {
	const secret = "cron-secret-token"

	t.Run("no authorization header", func(t *testing.T) {
		router := setupCronRouter(&stubMailer{processed: 3}, secret)

		req := httptest.NewRequest(http.MethodGet, "/api/cron/emails", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
		}
	})

	t.Run("wrong bearer token", func(t *testing.T) {
		router := setupCronRouter(&stubMailer{processed: 3}, secret)

		req := httptest.NewRequest(http.MethodGet, "/api/cron/emails", nil)
		req.Header.Set("Authorization", "Bearer not-the-secret")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
		}
	})

	t.Run("correct token drains the queue", func(t *testing.T) {
		router := setupCronRouter(&stubMailer{processed: 3}, secret)

		req := httptest.NewRequest(http.MethodGet, "/api/cron/emails", nil)
		req.Header.Set("Authorization", "Bearer "+secret)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
		}

		var body map[string]int
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if body["processed"] != 3 {
			t.Errorf("processed = %d, want 3", body["processed"])
		}
	})

	t.Run("empty configured secret rejects everything", func(t *testing.T) {
		router := setupCronRouter(&stubMailer{processed: 3}, "")

		req := httptest.NewRequest(http.MethodGet, "/api/cron/emails", nil)
		req.Header.Set("Authorization", "Bearer ")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
		}
	})

	t.Run("drain failure surfaces as 500", func(t *testing.T) {
		router := setupCronRouter(&stubMailer{err: errors.New("outbox unreachable")}, secret)

		req := httptest.NewRequest(http.MethodGet, "/api/cron/emails", nil)
		req.Header.Set("Authorization", "Bearer "+secret)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
		}
	})
}
