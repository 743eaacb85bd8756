package controllers

import (
	"errors"

	"github.com/Diyary311/onlineMenu/pkg/resp"
	"github.com/Diyary311/onlineMenu/services"
	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{Service: service}
}

// POST /api/auth/register
func (ctl *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if _, err := ctl.Service.Register(req.Username, req.Password, req.Role); err != nil {
		respondError(c, err)
		return
	}
	resp.Message(c, "User registered successfully!")
}

// POST /api/auth/login
func (ctl *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := ctl.Service.Login(req.Username, req.Password)
	if err != nil {
		// An unknown username is a 401 on the wire, like a bad password.
		if errors.Is(err, services.ErrNotFound) {
			resp.Unauthorized(c, "User not found.")
			return
		}
		respondError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"token":    token,
		"username": user.Username,
		"role":     user.Role,
	})
}

// GET /api/auth/all
func (ctl *AuthController) All(c *gin.Context) {
	users, err := ctl.Service.ListUsers()
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, gin.H{"id": u.ID, "username": u.Username, "role": u.Role})
	}
	resp.OK(c, out)
}
