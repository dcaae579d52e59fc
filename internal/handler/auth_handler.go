package handler

import (
	"context"
	"errors"
	"net/http"

	"dailytodo/internal/auth"
	"dailytodo/internal/model"
	"dailytodo/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Authenticator is the part of service.AuthService the handlers need.
type Authenticator interface {
	LoginWithGoogle(ctx context.Context, googleToken string) (string, error)
	CurrentUser(ctx context.Context, userID uuid.UUID) (*model.User, error)
}

type AuthHandler struct {
	auth Authenticator
}

func NewAuthHandler(auth Authenticator) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// GoogleLoginRequest carries the ID token obtained by the browser from Google.
type GoogleLoginRequest struct {
	Token string `json:"token" binding:"required"`
}

// TokenResponse is the access token issued after a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// GoogleLogin godoc
// @Summary      Sign in with Google
// @Description  Exchanges a Google ID token for an API access token, registering the user on first login
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body      GoogleLoginRequest  true  "Google ID token"
// @Success      200      {object}  TokenResponse
// @Failure      400      {object}  map[string]string
// @Router       /api/auth/google/login [post]
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var req GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	token, err := h.auth.LoginWithGoogle(c.Request.Context(), req.Token)
	if errors.Is(err, auth.ErrInvalidIdentityToken) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Google token"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Me godoc
// @Summary      Current user
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  UserResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/users/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	user, err := h.auth.CurrentUser(c.Request.Context(), userID)
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, UserResponse{ID: user.ID.String(), Email: user.Email, Username: user.Username})
}
