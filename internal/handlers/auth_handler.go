package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-manager/internal/dto"
	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-manager/internal/middleware"
	"github.com/BruksfildServices01/barbershop-manager/internal/usecase/account"
)

type AuthHandler struct {
	registerAdmin  *account.RegisterAdmin
	registerBarber *account.RegisterBarber
	login          *account.Login
	logout         *account.Logout
}

func NewAuthHandler(
	registerAdmin *account.RegisterAdmin,
	registerBarber *account.RegisterBarber,
	login *account.Login,
	logout *account.Logout,
) *AuthHandler {
	return &AuthHandler{
		registerAdmin:  registerAdmin,
		registerBarber: registerBarber,
		login:          login,
		logout:         logout,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	ShopName    string `json:"shop_name" binding:"required"`
	ShopAddress string `json:"shop_address"`
	Timezone    string `json:"timezone"`

	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone"`
}

type RegisterBarberRequest struct {
	ShopID   string `json:"shop_id" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	reg, err := h.registerAdmin.Execute(c.Request.Context(), account.RegisterAdminInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		ShopName: req.ShopName,
		Address:  req.ShopAddress,
		Timezone: req.Timezone,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"token":      reg.Session.Token,
		"expires_at": reg.Session.ExpiresAt,
		"user":       dto.User(reg.User),
		"barbershop": reg.Shop,
	})
}

func (h *AuthHandler) RegisterBarber(c *gin.Context) {
	var req RegisterBarberRequest
	if !bindJSON(c, &req) {
		return
	}

	reg, err := h.registerBarber.Execute(c.Request.Context(), account.RegisterBarberInput{
		ShopID:   req.ShopID,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"token":      reg.Session.Token,
		"expires_at": reg.Session.ExpiresAt,
		"user":       dto.User(reg.User),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.login.Execute(c.Request.Context(), account.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"token":      res.Session.Token,
		"expires_at": res.Session.ExpiresAt,
		"user":       dto.User(res.User),
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.logout.Execute(c.Request.Context(), middleware.TokenFrom(c)); err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.NoContent(c)
}
