package handlers

import (
	"net/http"

	"lilac/services/customer"
	"lilac/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CustomerHandler serves customer authentication endpoints.
type CustomerHandler struct {
	CustomerService customer.Service
}

// NewCustomerHandler creates a CustomerHandler.
func NewCustomerHandler(svc customer.Service) *CustomerHandler {
	return &CustomerHandler{CustomerService: svc}
}

// SignInHandler handles POST /customers/signin.
func (h *CustomerHandler) SignInHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid sign-in request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.CustomerService.Authenticate(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
