package handler

import (
	"github.com/gin-gonic/gin"

	"eventplanner-api/internal/domain"
	"eventplanner-api/internal/service"
	"eventplanner-api/internal/transport/http/middleware"
	resp "eventplanner-api/internal/transport/http/response"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"isAdmin"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var in loginReq
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Err(c, domain.ErrValidation("body"))
		return
	}
	res, err := h.svc.Login(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, gin.H{"token": res.Token, "user": res.User.Sanitized()})
}

func (h *AuthHandler) RegisterFirstAdmin(c *gin.Context) {
	var in registerReq
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Err(c, domain.ErrValidation("body"))
		return
	}
	res, err := h.svc.RegisterFirstAdmin(c.Request.Context(), in.Name, in.Email, in.Password)
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.Created(c, gin.H{"user": res.User.Sanitized(), "token": res.Token})
}

// Register is admin-gated by the route group.
func (h *AuthHandler) Register(c *gin.Context) {
	var in registerReq
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Err(c, domain.ErrValidation("body"))
		return
	}
	res, err := h.svc.Register(c.Request.Context(), in.Name, in.Email, in.Password, in.IsAdmin)
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.Created(c, gin.H{"user": res.User.Sanitized(), "token": res.Token})
}

// Me serves both GET /api/auth/me and GET /api/auth/verify.
func (h *AuthHandler) Me(c *gin.Context) {
	u := middleware.CurrentUser(c)
	if u == nil {
		resp.Err(c, domain.ErrUnauthenticated("Not authorized, no token"))
		return
	}
	resp.OK(c, gin.H{"user": u.Sanitized()})
}
