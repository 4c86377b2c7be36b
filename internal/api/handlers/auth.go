package handlers

import (
	"net/http"

	"bizhub-backend/internal/auth"
	"bizhub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles login and signup. Every successful call opens a session
// and issues the session cookie.
type AuthHandler struct {
	accounts service.AccountServiceInterface
	cookie   auth.CookieConfig
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(accounts service.AccountServiceInterface, cookie auth.CookieConfig) *AuthHandler {
	return &AuthHandler{accounts: accounts, cookie: cookie}
}

// PasswordLogin handles POST /api/auth/password-login/
// @Summary Log in with email and password
// @Description Authenticate against the identity provider and open a session
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body service.PasswordLoginRequest true "Credentials"
// @Success 200 {object} service.LoginResponse "Session opened"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Failure 403 {object} ErrorResponse "User account is disabled"
// @Failure 503 {object} ErrorResponse "Identity provider unavailable"
// @Router /auth/password-login/ [post]
func (h *AuthHandler) PasswordLogin(c *gin.Context) {
	var req service.PasswordLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	resp, err := h.accounts.PasswordLogin(c.Request.Context(), &req, requestMeta(c))
	if err != nil {
		respondError(c, err, "Password login failed")
		return
	}

	auth.SetSessionCookie(c, h.cookie, resp.SessionToken, resp.ExpiresAt)
	c.JSON(http.StatusOK, resp)
}

// OAuthExchange handles POST /api/auth/oauth-exchange/
// @Summary Exchange an authorization code
// @Description Exchange an OAuth authorization code for a session
// @Tags auth
// @Accept json
// @Produce json
// @Param exchange body service.OAuthExchangeRequest true "Authorization code"
// @Success 200 {object} service.LoginResponse "Session opened"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Code rejected"
// @Failure 503 {object} ErrorResponse "Identity provider unavailable"
// @Router /auth/oauth-exchange/ [post]
func (h *AuthHandler) OAuthExchange(c *gin.Context) {
	var req service.OAuthExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	resp, err := h.accounts.OAuthExchange(c.Request.Context(), &req, requestMeta(c))
	if err != nil {
		respondError(c, err, "OAuth exchange failed")
		return
	}

	auth.SetSessionCookie(c, h.cookie, resp.SessionToken, resp.ExpiresAt)
	c.JSON(http.StatusOK, resp)
}

// Signup handles POST /api/auth/signup/
// @Summary Create a local account
// @Description Register an owner account with email and password and open a session
// @Tags auth
// @Accept json
// @Produce json
// @Param account body service.SignupRequest true "Account data"
// @Success 201 {object} service.LoginResponse "Account created"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Local signup is disabled"
// @Failure 409 {object} ErrorResponse "User already exists"
// @Router /auth/signup/ [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req service.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	resp, err := h.accounts.Signup(c.Request.Context(), &req, requestMeta(c))
	if err != nil {
		respondError(c, err, "Signup failed")
		return
	}

	auth.SetSessionCookie(c, h.cookie, resp.SessionToken, resp.ExpiresAt)
	c.JSON(http.StatusCreated, resp)
}
