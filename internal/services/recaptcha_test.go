package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
)

func TestRecaptchaVerify(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("Expected POST request, got %s", r.Method)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if r.PostForm.Get("secret") != "test-secret" {
			t.Errorf("Expected secret test-secret, got %s", r.PostForm.Get("secret"))
		}

		success := r.PostForm.Get("response") == "good-token"
		json.NewEncoder(w).Encode(map[string]bool{"success": success})
	}))
	defer server.Close()

	os.Setenv("RECAPTCHA_SECRET_KEY", "test-secret")
	os.Setenv("RECAPTCHA_VERIFY_URL", server.URL)

	// Reset the singleton so it re-reads the environment.
	recaptchaService = nil
	s := GetRecaptchaService()

	ok, err := s.Verify("good-token")
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if !ok {
		t.Error("Expected good-token to verify")
	}

	ok, err = s.Verify("bad-token")
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if ok {
		t.Error("Expected bad-token to be rejected")
	}
}

func TestRecaptchaVerifyTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	os.Setenv("RECAPTCHA_SECRET_KEY", "test-secret")
	os.Setenv("RECAPTCHA_VERIFY_URL", server.URL)

	recaptchaService = nil
	s := GetRecaptchaService()

	if _, err := s.Verify("any"); err == nil {
		t.Error("Expected transport error, got nil")
	}
}

func TestRecaptchaVerifyMissingSecret(t *testing.T) {
	os.Unsetenv("RECAPTCHA_SECRET_KEY")
	os.Unsetenv("RECAPTCHA_VERIFY_URL")

	recaptchaService = nil
	s := GetRecaptchaService()

	if _, err := s.Verify("any"); err == nil {
		t.Error("Expected configuration error, got nil")
	}
}
