package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func adminHash(t *testing.T) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return string(h)
}

func TestLoginIssuesUsableToken(t *testing.T) {
	svc := NewAuthService("test-secret")
	login := LoginHandler(svc, "admin", adminHash(t))

	req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(`{"username":"admin","password":"hunter2"}`))
	rec := httptest.NewRecorder()
	login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("login status %d: %s", rec.Code, rec.Body.String())
	}
	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}

	claims, err := svc.Parse(resp["access_token"])
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if claims.Sub != "admin" || claims.Role != "admin" {
		t.Errorf("claims: %+v", claims)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc := NewAuthService("test-secret")
	login := LoginHandler(svc, "admin", adminHash(t))

	req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(`{"username":"admin","password":"wrong"}`))
	rec := httptest.NewRecorder()
	login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status %d, want 401", rec.Code)
	}
}

func TestJWTMiddleware(t *testing.T) {
	svc := NewAuthService("test-secret")
	protected := JWTMiddleware(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// no token
	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, httptest.NewRequest("POST", "/api/dataset/rebuild", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("missing bearer: status %d, want 401", rec.Code)
	}

	// garbage token
	req := httptest.NewRequest("POST", "/api/dataset/rebuild", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec = httptest.NewRecorder()
	protected.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("bad token: status %d, want 401", rec.Code)
	}

	// valid token
	tok, err := svc.IssueJWT("admin", "admin")
	if err != nil {
		t.Fatal(err)
	}
	req = httptest.NewRequest("POST", "/api/dataset/rebuild", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec = httptest.NewRecorder()
	protected.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("valid token: status %d, want 200", rec.Code)
	}
}

func TestTokenFromDifferentSecretRejected(t *testing.T) {
	other := NewAuthService("other-secret")
	tok, err := other.IssueJWT("admin", "admin")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewAuthService("test-secret").Parse(tok); err == nil {
		t.Fatal("expected signature mismatch")
	}
}
