package controllers

import (
	"github.com/Deepanghsh/Smart-Ward-Admin/pkg/resp"
	"github.com/Deepanghsh/Smart-Ward-Admin/services"
	"github.com/Deepanghsh/Smart-Ward-Admin/utils"
	"github.com/Deepanghsh/Smart-Ward-Admin/ws"

	"github.com/gin-gonic/gin"
)

type IssueController struct {
	issues *services.IssueService
	hub    *ws.Hub
}

func NewIssueController(issues *services.IssueService, hub *ws.Hub) *IssueController {
	return &IssueController{issues: issues, hub: hub}
}

// GET /api/issues
func (ic *IssueController) List(c *gin.Context) {
	opts, ok := listOptions(c)
	if !ok {
		return
	}

	page, err := ic.issues.List(utils.CurrentUserID(c), utils.CurrentRole(c), opts)
	if err != nil {
		respondError(c, err, "Issue not found")
		return
	}
	resp.Paged(c, page.Data, page.Pagination)
}

// GET /api/issues/:id
func (ic *IssueController) Get(c *gin.Context) {
	issue, err := ic.issues.Get(utils.CurrentUserID(c), utils.CurrentRole(c), c.Param("id"))
	if err != nil {
		respondError(c, err, "Issue not found")
		return
	}
	resp.OK(c, issue)
}

// POST /api/issues
func (ic *IssueController) Create(c *gin.Context) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Category    string `json:"category"`
		Priority    string `json:"priority"`
		Hostel      string `json:"hostel"`
		Block       string `json:"block"`
		Room        string `json:"room"`
		Visibility  string `json:"visibility"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	issue, err := ic.issues.Create(utils.CurrentUserID(c), services.CreateIssueInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		Hostel:      req.Hostel,
		Block:       req.Block,
		Room:        req.Room,
		Visibility:  req.Visibility,
	})
	if err != nil {
		respondError(c, err, "Issue not found")
		return
	}

	ic.hub.Broadcast("issue:created", issue)
	resp.Created(c, "Issue reported successfully", issue)
}

// PUT /api/issues/:id/status
func (ic *IssueController) UpdateStatus(c *gin.Context) {
	var req struct {
		Status  string `json:"status" binding:"required"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	issue, err := ic.issues.UpdateStatus(utils.CurrentUserID(c), c.Param("id"), req.Status, req.Comment)
	if err != nil {
		respondError(c, err, "Issue not found")
		return
	}

	ic.hub.Broadcast("issue:updated", issue)
	ic.hub.Broadcast("issue:status-changed", gin.H{
		"issueId":   issue.ID,
		"status":    issue.Status,
		"updatedBy": utils.CurrentUserID(c),
	})
	resp.OKMessage(c, "Issue status updated successfully", issue)
}

// PUT /api/issues/:id/assign
func (ic *IssueController) Assign(c *gin.Context) {
	var req struct {
		AssignedTo   string `json:"assignedTo" binding:"required"`
		AssignedToID string `json:"assignedToId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	issue, err := ic.issues.Assign(c.Param("id"), req.AssignedTo, req.AssignedToID)
	if err != nil {
		respondError(c, err, "Issue not found")
		return
	}

	ic.hub.Broadcast("issue:assigned", issue)
	resp.OKMessage(c, "Issue assigned successfully", issue)
}

// POST /api/issues/:id/comments
func (ic *IssueController) AddComment(c *gin.Context) {
	var req struct {
		Comment string `json:"comment" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	issue, err := ic.issues.AddComment(utils.CurrentUserID(c), c.Param("id"), req.Comment)
	if err != nil {
		respondError(c, err, "Issue not found")
		return
	}
	resp.OKMessage(c, "Comment added successfully", issue)
}

// DELETE /api/issues/:id
func (ic *IssueController) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := ic.issues.Delete(utils.CurrentUserID(c), utils.CurrentRole(c), id); err != nil {
		respondError(c, err, "Issue not found")
		return
	}

	ic.hub.Broadcast("issue:deleted", gin.H{"issueId": id})
	resp.Message(c, "Issue deleted successfully")
}

// GET /api/issues/stats
func (ic *IssueController) Stats(c *gin.Context) {
	stats, err := ic.issues.Stats()
	if err != nil {
		respondError(c, err, "Issue not found")
		return
	}
	resp.OK(c, stats)
}
