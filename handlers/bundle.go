// File: lilac/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Checkout endpoints
	GetCheckoutFieldsHandler gin.HandlerFunc
	SubmitCheckoutHandler    gin.HandlerFunc

	// Customer endpoints
	SignInHandler gin.HandlerFunc

	// Admin endpoints
	GetNoticesHandler gin.HandlerFunc
}
