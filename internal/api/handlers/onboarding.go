package handlers

import (
	"context"
	"net/http"

	"bizhub-backend/internal/auth"
	apperrors "bizhub-backend/internal/errors"
	"bizhub-backend/internal/onboarding"
	"bizhub-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OnboardingHandler handles the onboarding steps of the authenticated user
type OnboardingHandler struct {
	service service.OnboardingServiceInterface
}

// NewOnboardingHandler creates a new onboarding handler
func NewOnboardingHandler(service service.OnboardingServiceInterface) *OnboardingHandler {
	return &OnboardingHandler{service: service}
}

// SubmitBusinessInfo handles POST /api/onboarding/business-info
// @Summary Submit business information
// @Description Create or update the user's tenant and business
// @Tags onboarding
// @Accept json
// @Produce json
// @Param business body service.BusinessInfoRequest true "Business information"
// @Success 200 {object} onboarding.Status "Onboarding status"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Security SessionAuth
// @Router /onboarding/business-info [post]
func (h *OnboardingHandler) SubmitBusinessInfo(c *gin.Context) {
	var req service.BusinessInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}
	h.step(c, "Submit business info failed", func(ctx context.Context, userID uuid.UUID) (*onboarding.Status, error) {
		return h.service.SubmitBusinessInfo(ctx, userID, &req)
	})
}

// SelectSubscription handles POST /api/onboarding/subscription
// @Summary Select a subscription plan
// @Tags onboarding
// @Accept json
// @Produce json
// @Param subscription body service.SubscriptionRequest true "Plan and billing cycle"
// @Success 200 {object} onboarding.Status "Onboarding status"
// @Failure 400 {object} ErrorResponse "Invalid plan or step order"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Security SessionAuth
// @Router /onboarding/subscription [post]
func (h *OnboardingHandler) SelectSubscription(c *gin.Context) {
	var req service.SubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}
	h.step(c, "Select subscription failed", func(ctx context.Context, userID uuid.UUID) (*onboarding.Status, error) {
		return h.service.SelectSubscription(ctx, userID, &req)
	})
}

// CompletePayment handles POST /api/onboarding/payment
// @Summary Record payment for the selected plan
// @Tags onboarding
// @Produce json
// @Success 200 {object} onboarding.Status "Onboarding status"
// @Failure 400 {object} ErrorResponse "No paid plan selected"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Security SessionAuth
// @Router /onboarding/payment [post]
func (h *OnboardingHandler) CompletePayment(c *gin.Context) {
	h.step(c, "Complete payment failed", h.service.CompletePayment)
}

// Complete handles POST /api/onboarding/complete
// @Summary Finish onboarding
// @Description Mark onboarding complete and bind the user to their tenant
// @Tags onboarding
// @Produce json
// @Success 200 {object} onboarding.Status "Onboarding status"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 500 {object} ErrorResponse "Tenant could not be resolved"
// @Security SessionAuth
// @Router /onboarding/complete [post]
func (h *OnboardingHandler) Complete(c *gin.Context) {
	h.step(c, "Complete onboarding failed", h.service.Complete)
}

// GetStatus handles GET /api/onboarding/status
// @Summary Get onboarding status
// @Tags onboarding
// @Produce json
// @Success 200 {object} onboarding.Status "Onboarding status"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Security SessionAuth
// @Router /onboarding/status [get]
func (h *OnboardingHandler) GetStatus(c *gin.Context) {
	h.step(c, "Get onboarding status failed", h.service.GetStatus)
}

func (h *OnboardingHandler) step(c *gin.Context, action string, run func(ctx context.Context, userID uuid.UUID) (*onboarding.Status, error)) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrMissingCredentials, action)
		return
	}

	status, err := run(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, action)
		return
	}
	c.JSON(http.StatusOK, status)
}
