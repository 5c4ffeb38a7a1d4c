package controllers

import (
	"backend/entity"
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type SupportController struct{ Svc *services.SupportService }

func NewSupportController(svc *services.SupportService) *SupportController {
	return &SupportController{Svc: svc}
}

// POST /api/support accepts anonymous callers; a logged-in user gets linked.
func (h *SupportController) Create(c *gin.Context) {
	var req services.SupportTicketIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var userID *uint
	if id := utils.CurrentPrincipalID(c); id != 0 && utils.CurrentRole(c) == entity.RoleUser {
		userID = &id
	}
	t, err := h.Svc.Create(userID, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, t)
}

// GET /api/support/mine (user role)
func (h *SupportController) Mine(c *gin.Context) {
	out, err := h.Svc.ListForUser(utils.CurrentPrincipalID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}
