// File: barberbook/handlers/auth.go
package handlers

import (
	"net/http"

	"barberbook/middleware"
	"barberbook/models"
	"barberbook/services/session"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes the authentication endpoints.
type AuthHandler struct {
	Sessions session.Service
}

func NewAuthHandler(sessions session.Service) *AuthHandler {
	return &AuthHandler{Sessions: sessions}
}

// LoginHandler authenticates and caches the session for this client.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var creds models.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	sess, err := h.Sessions.Login(c.Request.Context(), middleware.ClientID(c), creds)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": sess.User})
}

// RegisterHandler creates an account and signs the client in.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var reg models.Registration
	if err := c.ShouldBindJSON(&reg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	sess, err := h.Sessions.Register(c.Request.Context(), middleware.ClientID(c), reg)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": sess.User})
}

// LogoutHandler purges the cached session.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	if err := h.Sessions.Logout(c.Request.Context(), middleware.ClientID(c)); err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

// MeHandler returns the cached profile, or 401 for guests.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	sess := h.Sessions.Current(c.Request.Context(), middleware.ClientID(c))
	if sess == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not signed in"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": sess.User})
}

// UpdateProfileHandler saves profile changes.
func (h *AuthHandler) UpdateProfileHandler(c *gin.Context) {
	var update models.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	user, err := h.Sessions.UpdateProfile(c.Request.Context(), middleware.ClientID(c), update)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdatePasswordHandler changes the account password.
func (h *AuthHandler) UpdatePasswordHandler(c *gin.Context) {
	var update models.PasswordUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Sessions.UpdatePassword(c.Request.Context(), middleware.ClientID(c), update); err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}
