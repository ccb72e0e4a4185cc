package handlers

import (
	"net/http"

	"lilac/services/admin"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the admin surface.
type AdminHandler struct {
	Notices admin.NoticeService
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(notices admin.NoticeService) *AdminHandler {
	return &AdminHandler{Notices: notices}
}

// GetNoticesHandler handles GET /admin/notices.
func (h *AdminHandler) GetNoticesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   h.Notices.Notices(),
	})
}
