package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct{ Svc *services.RestaurantService }

func NewRestaurantController(svc *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Svc: svc}
}

// GET /api/restaurants
func (h *RestaurantController) List(c *gin.Context) {
	rests, err := h.Svc.List()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rests)
}

// GET /api/restaurants/:id
func (h *RestaurantController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	rest, err := h.Svc.Get(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rest)
}

// GET /api/search/:query
func (h *RestaurantController) Search(c *gin.Context) {
	rests, err := h.Svc.Search(c.Param("query"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rests)
}

// POST /api/restaurant/menu (restaurant role; operates on the caller's own menu)
func (h *RestaurantController) AddMenuItem(c *gin.Context) {
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Svc.AddMenuItem(utils.CurrentPrincipalID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, item)
}

// PUT /api/restaurant/menu/:itemId
func (h *RestaurantController) UpdateMenuItem(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid menu item id")
		return
	}
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Svc.UpdateMenuItem(utils.CurrentPrincipalID(c), uint(itemID), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /api/restaurant/menu/:itemId
func (h *RestaurantController) DeleteMenuItem(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid menu item id")
		return
	}
	if err := h.Svc.DeleteMenuItem(utils.CurrentPrincipalID(c), uint(itemID)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
