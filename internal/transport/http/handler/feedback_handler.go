package handler

import (
	"github.com/gin-gonic/gin"

	"eventplanner-api/internal/domain"
	"eventplanner-api/internal/service"
	resp "eventplanner-api/internal/transport/http/response"
)

type FeedbackHandler struct {
	svc *service.FeedbackService
}

func NewFeedbackHandler(svc *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{svc: svc}
}

func (h *FeedbackHandler) Create(c *gin.Context) {
	var in service.FeedbackInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Err(c, domain.ErrValidation("body"))
		return
	}
	feedback, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.Created(c, feedback)
}

func (h *FeedbackHandler) List(c *gin.Context) {
	feedbacks, err := h.svc.List(c.Request.Context())
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, feedbacks)
}

func (h *FeedbackHandler) ListFeatured(c *gin.Context) {
	feedbacks, err := h.svc.ListFeatured(c.Request.Context())
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, feedbacks)
}

func (h *FeedbackHandler) Get(c *gin.Context) {
	feedback, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, feedback)
}

func (h *FeedbackHandler) Update(c *gin.Context) {
	var in service.FeedbackUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Err(c, domain.ErrValidation("body"))
		return
	}
	feedback, err := h.svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, feedback)
}

func (h *FeedbackHandler) SetFeatured(c *gin.Context) {
	var in struct {
		Featured *bool `json:"featured"`
	}
	if err := c.ShouldBindJSON(&in); err != nil || in.Featured == nil {
		resp.Err(c, domain.ErrValidation("featured"))
		return
	}
	feedback, err := h.svc.SetFeatured(c.Request.Context(), c.Param("id"), *in.Featured)
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, feedback)
}

func (h *FeedbackHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		resp.Err(c, err)
		return
	}
	resp.Message(c, "Feedback removed")
}
