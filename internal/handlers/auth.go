package handlers

import (
	"net/http"
	"os"

	"gamescove/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const sessionMaxAge = 24 * 60 * 60 // seconds

type AuthHandler struct {
	passwordHash []byte
}

// NewAuthHandler hashes the configured admin password once at startup so
// login never compares plaintext.
func NewAuthHandler() *AuthHandler {
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		logrus.Fatal("ADMIN_PASSWORD is not set")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logrus.Fatalf("Failed to hash admin password: %v", err)
	}
	return &AuthHandler{passwordHash: hash}
}

// Login sets the HttpOnly admin session cookie and a separate readable CSRF
// cookie for the double-submit check.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Password == "" {
		jsonError(c, http.StatusBadRequest, "password is required")
		return
	}

	if bcrypt.CompareHashAndPassword(h.passwordHash, []byte(req.Password)) != nil {
		jsonError(c, http.StatusUnauthorized, "invalid password")
		return
	}

	session := sessions.Default(c)
	session.Options(sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
	session.Set(middleware.AdminSessionKey, true)
	if err := session.Save(); err != nil {
		jsonError(c, http.StatusInternalServerError, "failed to start session")
		return
	}

	csrf := uuid.NewString()
	c.SetSameSite(http.SameSiteStrictMode)
	// Readable by the client so it can echo the token back in a header.
	c.SetCookie(middleware.CSRFCookieName, csrf, sessionMaxAge, "/", "", false, false)

	c.JSON(http.StatusOK, gin.H{"success": true, "csrf_token": csrf})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		logrus.Errorf("Failed to clear session: %v", err)
	}
	c.SetCookie(middleware.CSRFCookieName, "", -1, "/", "", false, false)

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AuthHandler) Check(c *gin.Context) {
	session := sessions.Default(c)
	admin, _ := session.Get(middleware.AdminSessionKey).(bool)
	c.JSON(http.StatusOK, gin.H{"authenticated": admin})
}
