package controllers

import (
	"github.com/Deepanghsh/Smart-Ward-Admin/pkg/resp"
	"github.com/Deepanghsh/Smart-Ward-Admin/services"
	"github.com/Deepanghsh/Smart-Ward-Admin/utils"

	"github.com/gin-gonic/gin"
)

type LostFoundController struct {
	items *services.LostFoundService
}

func NewLostFoundController(items *services.LostFoundService) *LostFoundController {
	return &LostFoundController{items: items}
}

// GET /api/lost-found
func (lc *LostFoundController) List(c *gin.Context) {
	opts, ok := listOptions(c)
	if !ok {
		return
	}

	page, err := lc.items.List(utils.CurrentUserID(c), utils.CurrentRole(c), opts)
	if err != nil {
		respondError(c, err, "Item not found")
		return
	}
	resp.Paged(c, page.Data, page.Pagination)
}

// GET /api/lost-found/:id
func (lc *LostFoundController) Get(c *gin.Context) {
	item, err := lc.items.Get(c.Param("id"))
	if err != nil {
		respondError(c, err, "Item not found")
		return
	}
	resp.OK(c, item)
}

// POST /api/lost-found
func (lc *LostFoundController) Create(c *gin.Context) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Type        string `json:"type"`
		Category    string `json:"category"`
		Location    string `json:"location"`
		Hostel      string `json:"hostel"`
		Phone       string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := lc.items.Create(utils.CurrentUserID(c), services.LostFoundInput{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Category:    req.Category,
		Location:    req.Location,
		Hostel:      req.Hostel,
		Phone:       req.Phone,
	})
	if err != nil {
		respondError(c, err, "Item not found")
		return
	}
	resp.Created(c, "Item posted successfully", item)
}

// PUT /api/lost-found/:id
func (lc *LostFoundController) Update(c *gin.Context) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Status      string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := lc.items.Update(utils.CurrentUserID(c), utils.CurrentRole(c), c.Param("id"), services.LostFoundInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		respondError(c, err, "Item not found")
		return
	}
	resp.OKMessage(c, "Item updated successfully", item)
}

// PUT /api/lost-found/:id/claim
func (lc *LostFoundController) Claim(c *gin.Context) {
	item, err := lc.items.Claim(utils.CurrentUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err, "Item not found")
		return
	}
	resp.OKMessage(c, "Item marked as claimed", item)
}

// DELETE /api/lost-found/:id
func (lc *LostFoundController) Delete(c *gin.Context) {
	if err := lc.items.Delete(utils.CurrentUserID(c), utils.CurrentRole(c), c.Param("id")); err != nil {
		respondError(c, err, "Item not found")
		return
	}
	resp.Message(c, "Item deleted successfully")
}

// GET /api/lost-found/stats
func (lc *LostFoundController) Stats(c *gin.Context) {
	stats, err := lc.items.Stats()
	if err != nil {
		respondError(c, err, "Item not found")
		return
	}
	resp.OK(c, stats)
}
