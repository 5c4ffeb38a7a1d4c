package controllers

import (
	"net/http"

	"backend/entity"
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

type RegisterRestaurantRequest struct {
	Name     string         `json:"name" binding:"required"`
	Email    string         `json:"email" binding:"required,email"`
	Password string         `json:"password" binding:"required,min=6"`
	Phone    string         `json:"phone"`
	Cuisine  string         `json:"cuisine"`
	Address  entity.Address `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(svc *services.AuthService) *AuthController { return &AuthController{Svc: svc} }

func userSummary(u *entity.User) gin.H {
	return gin.H{
		"id": u.ID, "name": u.Name, "email": u.Email,
		"phone": u.Phone, "role": entity.RoleUser,
	}
}

func restaurantSummary(r *entity.Restaurant) gin.H {
	return gin.H{
		"id": r.ID, "name": r.Name, "email": r.Email,
		"phone": r.Phone, "cuisine": r.Cuisine, "role": entity.RoleRestaurant,
	}
}

// POST /api/auth/user/register
func (a *AuthController) RegisterUser(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, token, err := a.Svc.RegisterUser(services.RegisterUserIn{
		Name: req.Name, Email: req.Email, Password: req.Password, Phone: req.Phone,
	})
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.AuthOK(c, http.StatusCreated, token, gin.H{"user": userSummary(user)})
}

// POST /api/auth/user/login
func (a *AuthController) LoginUser(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Svc.LoginUser(req.Email, req.Password)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.AuthOK(c, http.StatusOK, token, gin.H{"user": userSummary(user)})
}

// POST /api/auth/restaurant/register
func (a *AuthController) RegisterRestaurant(c *gin.Context) {
	var req RegisterRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest, token, err := a.Svc.RegisterRestaurant(services.RegisterRestaurantIn{
		Name: req.Name, Email: req.Email, Password: req.Password,
		Phone: req.Phone, Cuisine: req.Cuisine, Address: req.Address,
	})
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.AuthOK(c, http.StatusCreated, token, gin.H{"restaurant": restaurantSummary(rest)})
}

// POST /api/auth/restaurant/login
func (a *AuthController) LoginRestaurant(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, rest, err := a.Svc.LoginRestaurant(req.Email, req.Password)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.AuthOK(c, http.StatusOK, token, gin.H{"restaurant": restaurantSummary(rest)})
}

// GET /api/auth/me for either role.
func (a *AuthController) Me(c *gin.Context) {
	id := utils.CurrentPrincipalID(c)
	switch utils.CurrentRole(c) {
	case entity.RoleUser:
		user, err := a.Svc.GetUser(id)
		if err != nil {
			resp.Error(c, err)
			return
		}
		resp.OK(c, gin.H{"user": userSummary(user)})
	case entity.RoleRestaurant:
		rest, err := a.Svc.GetRestaurant(id)
		if err != nil {
			resp.Error(c, err)
			return
		}
		resp.OK(c, gin.H{"restaurant": restaurantSummary(rest)})
	default:
		resp.Unauthorized(c, "missing or invalid token")
	}
}
