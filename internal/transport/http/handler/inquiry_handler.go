package handler

import (
	"github.com/gin-gonic/gin"

	"eventplanner-api/internal/domain"
	"eventplanner-api/internal/service"
	resp "eventplanner-api/internal/transport/http/response"
)

type InquiryHandler struct {
	svc *service.InquiryService
}

func NewInquiryHandler(svc *service.InquiryService) *InquiryHandler {
	return &InquiryHandler{svc: svc}
}

func (h *InquiryHandler) Create(c *gin.Context) {
	var in service.InquiryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Err(c, domain.ErrValidation("body"))
		return
	}
	inquiry, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.Created(c, inquiry)
}

func (h *InquiryHandler) List(c *gin.Context) {
	inquiries, err := h.svc.List(c.Request.Context())
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, inquiries)
}

func (h *InquiryHandler) UpdateStatus(c *gin.Context) {
	var in struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Err(c, domain.ErrValidation("status"))
		return
	}
	inquiry, err := h.svc.UpdateStatus(c.Request.Context(), c.Param("id"), in.Status)
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, inquiry)
}

func (h *InquiryHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		resp.Err(c, err)
		return
	}
	resp.Message(c, "Inquiry removed")
}
