package controllers_test

import (
	"net/http"
	"testing"
)

func TestRegisterAndLogin(t *testing.T) {
	r, _ := setupTestServer(t)

	status, body := doJSON(t, r, http.MethodPost, "/api/auth/register", "",
		map[string]string{
			"username": "alice",
			"email":    "alice@example.com",
			"password": "Sup3r-secret",
		})
	if status != http.StatusCreated {
		t.Fatalf("register status = %d, want 201 (body: %v)", status, body)
	}
	if body["token"] == nil || body["token"] == "" {
		t.Error("register response missing token")
	}
	user := body["user"].(map[string]interface{})
	if user["username"] != "alice" {
		t.Errorf("registered username = %v", user["username"])
	}
	if _, leaked := user["password"]; leaked {
		t.Error("password must not appear in responses")
	}

	// Duplicate registration is rejected
	status, _ = doJSON(t, r, http.MethodPost, "/api/auth/register", "",
		map[string]string{
			"username": "alice",
			"email":    "alice@example.com",
			"password": "Sup3r-secret",
		})
	if status != http.StatusConflict {
		t.Errorf("duplicate register status = %d, want 409", status)
	}

	status, body = doJSON(t, r, http.MethodPost, "/api/auth/login", "",
		map[string]string{
			"identifier": "alice@example.com",
			"password":   "Sup3r-secret",
		})
	if status != http.StatusOK {
		t.Fatalf("login by email status = %d, want 200 (body: %v)", status, body)
	}
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("login response missing token")
	}

	// The identifier also matches the username
	status, body = doJSON(t, r, http.MethodPost, "/api/auth/login", "",
		map[string]string{
			"identifier": "alice",
			"password":   "Sup3r-secret",
		})
	if status != http.StatusOK {
		t.Fatalf("login by username status = %d, want 200 (body: %v)", status, body)
	}

	// The issued token works against a protected endpoint
	status, body = doJSON(t, r, http.MethodGet, "/api/users/profile", token, nil)
	if status != http.StatusOK {
		t.Fatalf("profile status = %d, want 200 (body: %v)", status, body)
	}
	if body["username"] != "alice" {
		t.Errorf("profile username = %v", body["username"])
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	r, _ := setupTestServer(t)

	status, _ := doJSON(t, r, http.MethodPost, "/api/auth/register", "",
		map[string]string{
			"username": "alice",
			"email":    "alice@example.com",
			"password": "Sup3r-secret",
		})
	if status != http.StatusCreated {
		t.Fatalf("register status = %d", status)
	}

	status, _ = doJSON(t, r, http.MethodPost, "/api/auth/login", "",
		map[string]string{
			"identifier": "alice@example.com",
			"password":   "wrong-password",
		})
	if status != http.StatusUnauthorized {
		t.Errorf("bad password login status = %d, want 401", status)
	}

	status, _ = doJSON(t, r, http.MethodPost, "/api/auth/login", "",
		map[string]string{
			"identifier": "nobody@example.com",
			"password":   "Sup3r-secret",
		})
	if status != http.StatusUnauthorized {
		t.Errorf("unknown identifier login status = %d, want 401", status)
	}
}

func TestRegister_WeakPassword(t *testing.T) {
	r, _ := setupTestServer(t)

	status, _ := doJSON(t, r, http.MethodPost, "/api/auth/register", "",
		map[string]string{
			"username": "alice",
			"email":    "alice@example.com",
			"password": "aaaaaa",
		})
	if status != http.StatusBadRequest {
		t.Errorf("weak password register status = %d, want 400", status)
	}
}
