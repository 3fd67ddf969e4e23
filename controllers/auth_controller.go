package controllers

import (
	"github.com/kapilkaushal24/restaurant-management-api/pkg/resp"
	"github.com/kapilkaushal24/restaurant-management-api/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var in services.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	session, err := a.Auth.Register(c.Request.Context(), in)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, session)
}

// POST /auth/register-bulk
func (a *AuthController) RegisterBulk(c *gin.Context) {
	var entries []services.RegisterInput
	if err := c.ShouldBindJSON(&entries); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	result := a.Auth.RegisterBulk(c.Request.Context(), entries)
	resp.OK(c, result)
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var in services.LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	session, err := a.Auth.Login(c.Request.Context(), in)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, session)
}

type refreshRequest struct {
	Token        string `json:"token" binding:"required"`
	RefreshToken string `json:"refreshToken"`
}

// POST /auth/refresh-token
func (a *AuthController) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	session, err := a.Auth.Refresh(c.Request.Context(), req.Token)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, session)
}

// GET /auth/users (SuperAdmin)
func (a *AuthController) ListUsers(c *gin.Context) {
	users, err := a.Auth.ListUsers(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, users)
}
