package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type FeedbackController struct{ Svc *services.FeedbackService }

func NewFeedbackController(svc *services.FeedbackService) *FeedbackController {
	return &FeedbackController{Svc: svc}
}

// POST /api/feedback (user role)
func (h *FeedbackController) Create(c *gin.Context) {
	var req services.FeedbackIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	f, err := h.Svc.Create(utils.CurrentPrincipalID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, f)
}

// GET /api/feedback/restaurant/:id (public)
func (h *FeedbackController) ListForRestaurant(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	out, err := h.Svc.ListForRestaurant(uint(id), limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}
