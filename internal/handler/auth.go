package handler

import (
	"net/http"

	"github.com/12mativ/bd-kursach-pizzeria-back/internal/apierror"
	"github.com/12mativ/bd-kursach-pizzeria-back/internal/dto"
	"github.com/12mativ/bd-kursach-pizzeria-back/internal/middleware"
	"github.com/12mativ/bd-kursach-pizzeria-back/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) RegisterClient(c *gin.Context) {
	var req dto.RegisterClientRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegisterClient(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) RegisterEmployee(c *gin.Context) {
	var req dto.RegisterEmployeeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegisterEmployee(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Session re-checks the token subject against the database so revoked or
// deleted accounts stop validating immediately.
func (h *AuthHandler) Session(c *gin.Context) {
	claims := middleware.GetClaims(c)
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Invalid or expired token"))
		return
	}
	resp, err := h.svc.CheckSession(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Invalid or expired token"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
