package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gas_delivery/internal/models"
	"gas_delivery/internal/service"
)

func TestLoginHandler_Success(t *testing.T) {
	auth := &mockAuth{
		loginToken: "tok123",
		loginUser:  &models.User{ID: 1, Username: "admin", Name: "Administrador", IsAdmin: true},
	}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	body := bytes.NewBufferString(`{"usuario":"admin","contrasena":"admin123"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/login", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("login status=%d, body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		Token   string      `json:"token"`
		Usuario models.User `json:"usuario"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Token != "tok123" {
		t.Fatalf("expected token tok123, got %q", resp.Token)
	}
	if resp.Usuario.Username != "admin" || !resp.Usuario.IsAdmin {
		t.Fatalf("unexpected usuario: %+v", resp.Usuario)
	}
	if strings.Contains(w.Body.String(), "admin123") {
		t.Fatalf("response leaks the plaintext password: %s", w.Body.String())
	}

	// Session cookie: http-only, token value, 8h max-age.
	cookies := w.Result().Cookies()
	var found bool
	for _, ck := range cookies {
		if ck.Name != "token" {
			continue
		}
		found = true
		if ck.Value != "tok123" {
			t.Errorf("cookie value: got %q, want tok123", ck.Value)
		}
		if !ck.HttpOnly {
			t.Errorf("cookie must be http-only")
		}
		if ck.MaxAge != 8*60*60 {
			t.Errorf("cookie max-age: got %d, want %d", ck.MaxAge, 8*60*60)
		}
		if ck.Secure {
			t.Errorf("cookie should not be marked secure")
		}
	}
	if !found {
		t.Fatalf("token cookie not set; cookies=%v", cookies)
	}

	if auth.lastLoginUsername != "admin" || auth.lastLoginPassword != "admin123" {
		t.Fatalf("Login called with %q/%q", auth.lastLoginUsername, auth.lastLoginPassword)
	}
}

func TestLoginHandler_MissingFields(t *testing.T) {
	auth := &mockAuth{}
	r := newTestRouter(&service.Service{Authorization: auth})

	for _, body := range []string{`{}`, `{"usuario":"admin"}`, `{"contrasena":"x"}`} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, w.Code)
		}
	}
	if auth.lastLoginUsername != "" {
		t.Fatalf("Login should not be called for incomplete bodies")
	}
}

func TestLoginHandler_BadCredentials(t *testing.T) {
	auth := &mockAuth{loginErr: service.ErrInvalidCredentials}
	r := newTestRouter(&service.Service{Authorization: auth})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewBufferString(`{"usuario":"admin","contrasena":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d (body=%s)", w.Code, w.Body.String())
	}
	if len(w.Result().Cookies()) != 0 {
		t.Fatalf("no cookie should be set on failed login")
	}
}
