package controllers

import (
	"github.com/Deepanghsh/Smart-Ward-Admin/pkg/resp"
	"github.com/Deepanghsh/Smart-Ward-Admin/services"
	"github.com/Deepanghsh/Smart-Ward-Admin/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// POST /api/auth/register
func (ac *AuthController) Register(c *gin.Context) {
	var req struct {
		Name       string `json:"name"`
		Email      string `json:"email"`
		Password   string `json:"password"`
		Role       string `json:"role"`
		Hostel     string `json:"hostel"`
		Block      string `json:"block"`
		Room       string `json:"room"`
		Year       string `json:"year"`
		Phone      string `json:"phone"`
		Department string `json:"department"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := ac.auth.Register(services.RegisterInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Role:       req.Role,
		Hostel:     req.Hostel,
		Block:      req.Block,
		Room:       req.Room,
		Year:       req.Year,
		Phone:      req.Phone,
		Department: req.Department,
	})
	if err != nil {
		respondError(c, err, "user not found")
		return
	}

	resp.Created(c, "User registered successfully", user)
}

// POST /api/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := ac.auth.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err, "user not found")
		return
	}

	resp.OKMessage(c, "Login successful", gin.H{"token": token, "user": user})
}

// GET /api/auth/me
func (ac *AuthController) Me(c *gin.Context) {
	user, err := ac.auth.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		respondError(c, err, "User not found")
		return
	}
	resp.OK(c, user)
}

// PUT /api/auth/profile
func (ac *AuthController) UpdateProfile(c *gin.Context) {
	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := ac.auth.UpdateProfile(utils.CurrentUserID(c), updates)
	if err != nil {
		respondError(c, err, "User not found")
		return
	}
	resp.OKMessage(c, "Profile updated successfully", user)
}

// PUT /api/auth/change-password
func (ac *AuthController) ChangePassword(c *gin.Context) {
	var req struct {
		CurrentPassword string `json:"currentPassword" binding:"required"`
		NewPassword     string `json:"newPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ac.auth.ChangePassword(utils.CurrentUserID(c), req.CurrentPassword, req.NewPassword); err != nil {
		respondError(c, err, "User not found")
		return
	}
	resp.Message(c, "Password changed successfully")
}

// POST /api/auth/forgot-password
func (ac *AuthController) ForgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ac.auth.ForgotPassword(req.Email); err != nil {
		respondError(c, err, "User not found")
		return
	}
	resp.Message(c, "Password reset instructions sent to email")
}

// POST /api/auth/logout
func (ac *AuthController) Logout(c *gin.Context) {
	// stateless JWTs: nothing to invalidate server-side
	resp.Message(c, "Logged out successfully")
}
