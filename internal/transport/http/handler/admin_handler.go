package handler

import (
	"github.com/gin-gonic/gin"

	"eventplanner-api/internal/service"
	resp "eventplanner-api/internal/transport/http/response"
)

type AdminHandler struct {
	svc *service.DashboardService
}

func NewAdminHandler(svc *service.DashboardService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, stats)
}
