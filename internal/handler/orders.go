package handler

import (
	"net/http"

	"github.com/12mativ/bd-kursach-pizzeria-back/internal/apierror"
	"github.com/12mativ/bd-kursach-pizzeria-back/internal/dto"
	"github.com/12mativ/bd-kursach-pizzeria-back/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrdersHandler struct {
	svc service.OrderService
	qr  service.QRGenerator
}

func NewOrdersHandler(svc service.OrderService, qr service.QRGenerator) *OrdersHandler {
	return &OrdersHandler{svc: svc, qr: qr}
}

func (h *OrdersHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListByClient serves GET /orders?clientId= with every order's items joined in.
func (h *OrdersHandler) ListByClient(c *gin.Context) {
	raw := c.Query("clientId")
	clientID, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("clientId query parameter is required"))
		return
	}
	resp, err := h.svc.FindByClient(c.Request.Context(), clientID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrdersHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.FindOne(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrdersHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrdersHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// QRCode renders a PNG pickup code for an existing order.
func (h *OrdersHandler) QRCode(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if _, err := h.svc.FindOne(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	png, err := h.qr.Generate(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
