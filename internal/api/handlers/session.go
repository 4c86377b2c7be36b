package handlers

import (
	"net/http"

	"bizhub-backend/internal/auth"
	apperrors "bizhub-backend/internal/errors"
	"bizhub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SessionHandler serves /api/auth/session-v2
type SessionHandler struct {
	accounts service.AccountServiceInterface
	sessions service.SessionServiceInterface
	cookie   auth.CookieConfig
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(accounts service.AccountServiceInterface, sessions service.SessionServiceInterface, cookie auth.CookieConfig) *SessionHandler {
	return &SessionHandler{accounts: accounts, sessions: sessions, cookie: cookie}
}

// GetSession handles GET /api/auth/session-v2
// @Summary Get the current session
// @Description Describe the session, its user, tenant and onboarding state
// @Tags session
// @Produce json
// @Success 200 {object} service.LoginResponse "Current session"
// @Failure 401 {object} ErrorResponse "Missing, invalid or expired session"
// @Security SessionAuth
// @Router /auth/session-v2 [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	session, ok := auth.GetSession(c)
	if !ok {
		respondError(c, apperrors.ErrMissingCredentials, "Get session failed")
		return
	}

	resp, err := h.accounts.SessionProfile(c.Request.Context(), session)
	if err != nil {
		respondError(c, err, "Get session failed")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateSession handles POST /api/auth/session-v2
// @Summary Open a session for a bearer token
// @Description Exchange an API or identity provider access token for a session cookie
// @Tags session
// @Produce json
// @Success 201 {object} service.LoginResponse "Session opened"
// @Failure 401 {object} ErrorResponse "Invalid token"
// @Failure 403 {object} ErrorResponse "User account is disabled"
// @Security BearerAuth
// @Router /auth/session-v2 [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	principal, ok := auth.GetPrincipal(c)
	if !ok {
		respondError(c, apperrors.ErrMissingCredentials, "Create session failed")
		return
	}

	accessToken := ""
	if principal.Identity != nil {
		accessToken = principal.Identity.AccessToken
	}

	resp, err := h.accounts.StartSession(c.Request.Context(), principal.UserID, accessToken, requestMeta(c))
	if err != nil {
		respondError(c, err, "Create session failed")
		return
	}

	auth.SetSessionCookie(c, h.cookie, resp.SessionToken, resp.ExpiresAt)
	c.JSON(http.StatusCreated, resp)
}

// UpdateSession handles PATCH /api/auth/session-v2
// @Summary Update the current session
// @Description Extend the session or switch it to the user's tenant
// @Tags session
// @Accept json
// @Produce json
// @Param update body service.UpdateSessionRequest true "Session changes"
// @Success 200 {object} service.LoginResponse "Updated session"
// @Failure 400 {object} ErrorResponse "Invalid extension"
// @Failure 401 {object} ErrorResponse "Missing, invalid or expired session"
// @Failure 403 {object} ErrorResponse "Tenant does not belong to user"
// @Security SessionAuth
// @Router /auth/session-v2 [patch]
func (h *SessionHandler) UpdateSession(c *gin.Context) {
	session, ok := auth.GetSession(c)
	if !ok {
		respondError(c, apperrors.ErrMissingCredentials, "Update session failed")
		return
	}

	var req service.UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	updated, err := h.sessions.UpdateSession(c.Request.Context(), session.SessionID, &req)
	if err != nil {
		respondError(c, err, "Update session failed")
		return
	}

	resp, err := h.accounts.SessionProfile(c.Request.Context(), updated)
	if err != nil {
		respondError(c, err, "Update session failed")
		return
	}

	auth.SetSessionCookie(c, h.cookie, resp.SessionToken, resp.ExpiresAt)
	c.JSON(http.StatusOK, resp)
}

// DeleteSession handles DELETE /api/auth/session-v2
// @Summary Log out
// @Description Invalidate the current session and clear the session cookie
// @Tags session
// @Produce json
// @Success 200 {object} map[string]interface{} "Logged out"
// @Failure 401 {object} ErrorResponse "Missing, invalid or expired session"
// @Security SessionAuth
// @Router /auth/session-v2 [delete]
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	session, ok := auth.GetSession(c)
	if !ok {
		respondError(c, apperrors.ErrMissingCredentials, "Delete session failed")
		return
	}

	if err := h.sessions.InvalidateSession(c.Request.Context(), session.SessionID); err != nil {
		respondError(c, err, "Delete session failed")
		return
	}

	auth.ClearSessionCookie(c, h.cookie)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
