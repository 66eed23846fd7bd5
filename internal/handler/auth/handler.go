package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinician-api/internal/handler"
	"github.com/jwalitptl/clinician-api/internal/model"
	"github.com/jwalitptl/clinician-api/internal/service/analytics"
	"github.com/jwalitptl/clinician-api/internal/service/auth"
)

type Handler struct {
	service   *auth.Service
	analytics *analytics.Service
}

func NewHandler(service *auth.Service, analytics *analytics.Service) *Handler {
	return &Handler{service: service, analytics: analytics}
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	h.analytics.Track("login_attempt", map[string]interface{}{"email": req.Email})

	session, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			h.analytics.Track("login_failed", map[string]interface{}{"error": err.Error()})
			c.JSON(http.StatusUnauthorized, handler.NewErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	h.analytics.Track("login_success", map[string]interface{}{"user_id": session.User.ID})
	c.JSON(http.StatusOK, handler.NewSuccessResponse(session))
}

func (h *Handler) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}
	h.analytics.Track("user_logout", nil)
	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}

func (h *Handler) Session(c *gin.Context) {
	authenticated, err := h.service.IsAuthenticated(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"authenticated": authenticated}))
}

func (h *Handler) CurrentUser(c *gin.Context) {
	user, err := h.service.CurrentUser(c.Request.Context())
	if err != nil {
		if errors.Is(err, auth.ErrNoSession) {
			c.JSON(http.StatusNotFound, handler.NewErrorResponse("no active session"))
			return
		}
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(user))
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/login", h.Login)
		authRoutes.POST("/logout", h.Logout)
		authRoutes.GET("/session", h.Session)
		authRoutes.GET("/me", h.CurrentUser)
	}
}
