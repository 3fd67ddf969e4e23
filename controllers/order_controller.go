package controllers

import (
	"strconv"

	"github.com/kapilkaushal24/restaurant-management-api/middlewares"
	"github.com/kapilkaushal24/restaurant-management-api/pkg/resp"
	"github.com/kapilkaushal24/restaurant-management-api/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// POST /orders (Customer)
func (oc *OrderController) Create(c *gin.Context) {
	claims := middlewares.CurrentClaims(c)

	var req services.CreateOrderInput
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Orders.Create(c.Request.Context(), claims.UserID, &req)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders/:id — admin/staff or the owning customer
func (oc *OrderController) Get(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	order, err := oc.Orders.Get(c.Request.Context(), middlewares.CurrentClaims(c), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /orders (Admin)
func (oc *OrderController) ListAll(c *gin.Context) {
	orders, err := oc.Orders.ListAll(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/my-orders
func (oc *OrderController) ListMine(c *gin.Context) {
	claims := middlewares.CurrentClaims(c)
	orders, err := oc.Orders.ListForUser(c.Request.Context(), claims.UserID)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, orders)
}

type statusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /orders/:id/status (Admin, Staff)
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	var req statusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Orders.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, order)
}

func paramID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	return uint(id), err
}
