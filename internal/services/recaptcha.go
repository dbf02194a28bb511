package services

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"os"
	"time"
)

const defaultVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// RecaptchaService verifies human-interaction tokens against the external
// CAPTCHA service.
type RecaptchaService struct {
	secret    string
	verifyURL string
	client    *http.Client
}

var recaptchaService *RecaptchaService

func GetRecaptchaService() *RecaptchaService {
	if recaptchaService == nil {
		verifyURL := os.Getenv("RECAPTCHA_VERIFY_URL")
		if verifyURL == "" {
			verifyURL = defaultVerifyURL
		}
		recaptchaService = &RecaptchaService{
			secret:    os.Getenv("RECAPTCHA_SECRET_KEY"),
			verifyURL: verifyURL,
			client:    &http.Client{Timeout: 10 * time.Second},
		}
	}
	return recaptchaService
}

// Verify returns whether the service accepted the token. A transport-level
// failure comes back as an error, distinct from a clean rejection.
func (s *RecaptchaService) Verify(token string) (bool, error) {
	if s.secret == "" {
		return false, errors.New("RECAPTCHA_SECRET_KEY is not set")
	}

	resp, err := s.client.PostForm(s.verifyURL, url.Values{
		"secret":   {s.secret},
		"response": {token},
	})
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	var result struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, err
	}
	return result.Success, nil
}
