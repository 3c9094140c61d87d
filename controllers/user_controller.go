package controllers

import (
	"github.com/Deepanghsh/Smart-Ward-Admin/pkg/resp"
	"github.com/Deepanghsh/Smart-Ward-Admin/services"

	"github.com/gin-gonic/gin"
)

// UserController is the admin user directory.
type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

// GET /api/users
func (uc *UserController) List(c *gin.Context) {
	opts, ok := listOptions(c)
	if !ok {
		return
	}

	page, err := uc.users.List(opts)
	if err != nil {
		respondError(c, err, "User not found")
		return
	}
	resp.Paged(c, page.Data, page.Pagination)
}

// GET /api/users/:id
func (uc *UserController) Get(c *gin.Context) {
	user, err := uc.users.Get(c.Param("id"))
	if err != nil {
		respondError(c, err, "User not found")
		return
	}
	resp.OK(c, user)
}

// PUT /api/users/:id
func (uc *UserController) Update(c *gin.Context) {
	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := uc.users.Update(c.Param("id"), updates)
	if err != nil {
		respondError(c, err, "User not found")
		return
	}
	resp.OKMessage(c, "User updated successfully", user)
}

// DELETE /api/users/:id
func (uc *UserController) Delete(c *gin.Context) {
	if err := uc.users.Delete(c.Param("id")); err != nil {
		respondError(c, err, "User not found")
		return
	}
	resp.Message(c, "User deleted successfully")
}

// GET /api/users/stats
func (uc *UserController) Stats(c *gin.Context) {
	stats, err := uc.users.Stats()
	if err != nil {
		respondError(c, err, "User not found")
		return
	}
	resp.OK(c, stats)
}
