package controllers

import (
	"github.com/Deepanghsh/Smart-Ward-Admin/pkg/resp"
	"github.com/Deepanghsh/Smart-Ward-Admin/services"
	"github.com/Deepanghsh/Smart-Ward-Admin/utils"
	"github.com/Deepanghsh/Smart-Ward-Admin/ws"

	"github.com/gin-gonic/gin"
)

type AnnouncementController struct {
	announcements *services.AnnouncementService
	hub           *ws.Hub
}

func NewAnnouncementController(announcements *services.AnnouncementService, hub *ws.Hub) *AnnouncementController {
	return &AnnouncementController{announcements: announcements, hub: hub}
}

// GET /api/announcements
func (ac *AnnouncementController) List(c *gin.Context) {
	opts, ok := listOptions(c)
	if !ok {
		return
	}

	page, err := ac.announcements.List(utils.CurrentUserID(c), utils.CurrentRole(c), opts)
	if err != nil {
		respondError(c, err, "Announcement not found")
		return
	}
	resp.Paged(c, page.Data, page.Pagination)
}

// GET /api/announcements/:id
func (ac *AnnouncementController) Get(c *gin.Context) {
	ann, err := ac.announcements.Get(c.Param("id"))
	if err != nil {
		respondError(c, err, "Announcement not found")
		return
	}
	resp.OK(c, ann)
}

type announcementRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Priority string `json:"priority"`
	Hostel   string `json:"hostel"`
	Type     string `json:"type"`
}

func (r announcementRequest) input() services.AnnouncementInput {
	return services.AnnouncementInput{
		Title:    r.Title,
		Content:  r.Content,
		Priority: r.Priority,
		Hostel:   r.Hostel,
		Type:     r.Type,
	}
}

// POST /api/announcements
func (ac *AnnouncementController) Create(c *gin.Context) {
	var req announcementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	ann, err := ac.announcements.Create(utils.CurrentUserID(c), req.input())
	if err != nil {
		respondError(c, err, "Announcement not found")
		return
	}

	ac.hub.Broadcast("announcement:created", ann)
	resp.Created(c, "Announcement created successfully", ann)
}

// PUT /api/announcements/:id
func (ac *AnnouncementController) Update(c *gin.Context) {
	var req announcementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	ann, err := ac.announcements.Update(c.Param("id"), req.input())
	if err != nil {
		respondError(c, err, "Announcement not found")
		return
	}

	ac.hub.Broadcast("announcement:updated", ann)
	resp.OKMessage(c, "Announcement updated successfully", ann)
}

// DELETE /api/announcements/:id
func (ac *AnnouncementController) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := ac.announcements.Delete(id); err != nil {
		respondError(c, err, "Announcement not found")
		return
	}

	ac.hub.Broadcast("announcement:deleted", gin.H{"announcementId": id})
	resp.Message(c, "Announcement deleted successfully")
}
