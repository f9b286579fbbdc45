package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"dailybudget/internal/config"
	apperrors "dailybudget/internal/errors"
	"dailybudget/internal/logger"
	"dailybudget/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
}

func loadTestConfig(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "middleware-test-secret")
	t.Setenv("JWT_EXPIRES_IN", "1h")
	if _, err := config.Load(); err != nil {
		t.Fatalf("config.Load: %v", err)
	}
}

func doGet(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse response body: %v", err)
	}
	return result
}

func TestAuthMiddleware(t *testing.T) {
	loadTestConfig(t)

	user := &models.User{Base: models.Base{ID: "0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b"}, Username: "asha"}
	token, err := GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	r := gin.New()
	r.GET("/me", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString(ContextUserID), "username": c.GetString(ContextUsername)})
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Token " + token, http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.jwt", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doGet(r, "/me", tt.header)
			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
			body := parseBody(t, rec)
			if tt.wantStatus == http.StatusOK {
				if body["user_id"] != user.ID || body["username"] != "asha" {
					t.Errorf("unexpected claims in context: %v", body)
				}
				return
			}
			errObj, ok := body["error"].(map[string]interface{})
			if !ok || errObj["code"] != "UNAUTHORIZED" {
				t.Errorf("expected UNAUTHORIZED error, got %v", body)
			}
		})
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	loadTestConfig(t)
	t.Setenv("JWT_EXPIRES_IN", "-1m")
	if _, err := config.Load(); err != nil {
		t.Fatalf("config.Load: %v", err)
	}

	token, err := GenerateToken(&models.User{Base: models.Base{ID: "u-1"}, Username: "old"})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ParseToken(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
	if got := config.Get().JWTExpirationDur; got != -time.Minute {
		t.Errorf("expected -1m expiry, got %v", got)
	}
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/app", func(c *gin.Context) { _ = c.Error(apperrors.ErrExpenseNotFound) })
	r.GET("/raw", func(c *gin.Context) { _ = c.Error(errors.New("boom")) })

	rec := doGet(r, "/app", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if parseBody(t, rec)["error"].(map[string]interface{})["code"] != "EXPENSE_NOT_FOUND" {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}

	rec = doGet(r, "/raw", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if parseBody(t, rec)["error"].(map[string]interface{})["code"] != "INTERNAL_ERROR" {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestRequestLoggingSetsRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogging())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	rec := doGet(r, "/ping", "")
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}
}

func TestRequestLoggingReusesIncomingID(t *testing.T) {
	const incoming = "0190a5b2-7c1e-7d3a-9f00-00000000abcd"
	r := gin.New()
	r.Use(RequestLogging())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, RequestID(c)) })

	req := httptest.NewRequest(http.MethodGet, "/ping", http.NoBody)
	req.Header.Set("X-Request-ID", incoming)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != incoming {
		t.Errorf("expected incoming id to be echoed, got %q", got)
	}
	if rec.Body.String() != incoming {
		t.Errorf("expected handler to see %q, got %q", incoming, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/ping", http.NoBody)
	req.Header.Set("X-Request-ID", "not-a-uuid")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Request-ID"); got == "not-a-uuid" || got == "" {
		t.Errorf("expected malformed id to be replaced, got %q", got)
	}
}

func TestErrorHandlerKeepsWrittenResponse(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/written", func(c *gin.Context) {
		_ = c.Error(errors.New("logged elsewhere"))
		c.JSON(http.StatusAccepted, gin.H{"ok": true})
	})

	rec := doGet(r, "/written", "")
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
	if parseBody(t, rec)["ok"] != true {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}
