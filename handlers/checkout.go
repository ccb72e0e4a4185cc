package handlers

import (
	"net/http"

	"lilac/models"
	"lilac/services/commerce"
	"lilac/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CheckoutHandler serves the checkout render and submission endpoints.
type CheckoutHandler struct {
	Commerce commerce.Service
}

// NewCheckoutHandler creates a CheckoutHandler.
func NewCheckoutHandler(svc commerce.Service) *CheckoutHandler {
	return &CheckoutHandler{Commerce: svc}
}

// GetCheckoutFieldsHandler handles GET /checkout/fields. Query parameters act
// as the client's draft values and are fed through the value primers.
func (h *CheckoutHandler) GetCheckoutFieldsHandler(c *gin.Context) {
	draft := models.Submission{}
	for key, vals := range c.Request.URL.Query() {
		if len(vals) > 0 {
			draft[key] = vals[0]
		}
	}

	view := h.Commerce.RenderCheckout(c.Request.Context(), draft)
	c.JSON(http.StatusOK, view)
}

// SubmitCheckoutHandler handles POST /checkout.
func (h *CheckoutHandler) SubmitCheckoutHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid checkout request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.Commerce.SubmitCheckout(c.Request.Context(), req)
	if err != nil {
		logger.Error("Checkout submission failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, order)
}
