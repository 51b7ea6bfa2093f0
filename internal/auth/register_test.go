package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handler := NewHandler(NewService(NewInMemoryUserRepository()))
	r.POST("/auth/register", handler.Register)

	return r
}

func postRegister(r *gin.Engine, payload map[string]string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterSuccess(t *testing.T) {
	r := setupTestRouter()

	w := postRegister(r, map[string]string{
		"name":     "Test Officer",
		"email":    "officer@precinct.hu",
		"password": "Password@123",
		"badge":    "4471",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", w.Code)
	}
}

func TestRegisterMissingFields(t *testing.T) {
	r := setupTestRouter()

	w := postRegister(r, map[string]string{
		"email": "officer@precinct.hu",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r := setupTestRouter()

	payload := map[string]string{
		"name":     "Test Officer",
		"email":    "officer@precinct.hu",
		"password": "Password@123",
	}

	if w := postRegister(r, payload); w.Code != http.StatusCreated {
		t.Fatalf("first register should succeed, got %d", w.Code)
	}
	if w := postRegister(r, payload); w.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", w.Code)
	}
}
