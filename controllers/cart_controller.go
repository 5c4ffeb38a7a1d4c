package controllers

import (
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(svc *services.CartService) *CartController { return &CartController{Svc: svc} }

// GET /api/cart
func (h *CartController) Get(c *gin.Context) {
	resp.OK(c, h.Svc.Get(utils.CurrentPrincipalID(c)))
}

type addCartItemRequest struct {
	RestaurantID uint `json:"restaurantId" binding:"required"`
	MenuItemID   uint `json:"menuItemId" binding:"required"`
	// Replace acknowledges discarding a cart bound to another restaurant.
	Replace bool `json:"replace"`
}

// POST /api/cart/items
func (h *CartController) Add(c *gin.Context) {
	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	view, err := h.Svc.Add(utils.CurrentPrincipalID(c), req.RestaurantID, req.MenuItemID, req.Replace)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, view)
}

type setQtyRequest struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Qty        int  `json:"qty"`
}

// PATCH /api/cart/items
func (h *CartController) SetQuantity(c *gin.Context) {
	var req setQtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, h.Svc.SetQuantity(utils.CurrentPrincipalID(c), req.MenuItemID, req.Qty))
}

type removeItemRequest struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
}

// DELETE /api/cart/items
func (h *CartController) Remove(c *gin.Context) {
	var req removeItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, h.Svc.Remove(utils.CurrentPrincipalID(c), req.MenuItemID))
}

// DELETE /api/cart
func (h *CartController) Clear(c *gin.Context) {
	h.Svc.Clear(utils.CurrentPrincipalID(c))
	resp.OK(c, gin.H{"cleared": true})
}
