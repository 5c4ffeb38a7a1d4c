package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

// POST /api/orders with an explicit item list. Any total in the payload is ignored;
// the service recomputes it.
func (h *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := h.Svc.Create(utils.CurrentPrincipalID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, order)
}

// POST /api/orders/checkout builds the order from the session cart.
func (h *OrderController) Checkout(c *gin.Context) {
	var req services.CheckoutIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := h.Svc.Checkout(utils.CurrentPrincipalID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /api/orders
func (h *OrderController) ListForMe(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	orders, err := h.Svc.ListForUser(utils.CurrentPrincipalID(c), limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /api/orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	order, err := h.Svc.DetailForUser(utils.CurrentPrincipalID(c), uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// ----- restaurant side -----

// GET /api/restaurant/orders?status=
func (h *OrderController) ListForRestaurant(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	orders, err := h.Svc.ListForRestaurant(utils.CurrentPrincipalID(c), c.Query("status"), limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, orders)
}

type statusRequest struct {
	Status string `json:"status" binding:"required,oneof=preparing out-for-delivery delivered cancelled"`
}

// PATCH /api/restaurant/orders/:id/status
func (h *OrderController) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	restID := utils.CurrentPrincipalID(c)
	switch req.Status {
	case "preparing":
		err = h.Svc.Accept(restID, uint(id))
	case "out-for-delivery":
		err = h.Svc.HandOff(restID, uint(id))
	case "delivered":
		err = h.Svc.Complete(restID, uint(id))
	case "cancelled":
		err = h.Svc.Cancel(restID, uint(id))
	}
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"status": req.Status})
}
