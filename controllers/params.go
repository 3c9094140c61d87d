package controllers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Deepanghsh/Smart-Ward-Admin/pkg/query"
	"github.com/Deepanghsh/Smart-Ward-Admin/pkg/resp"
	"github.com/Deepanghsh/Smart-Ward-Admin/services"

	"github.com/gin-gonic/gin"
)

// listOptions parses the query parameters shared by every list
// endpoint. On a bad page/limit it writes the 400 itself and returns
// ok=false.
func listOptions(c *gin.Context) (services.ListOptions, bool) {
	page, err := intQuery(c, "page", query.DefaultPage)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return services.ListOptions{}, false
	}
	limit, err := intQuery(c, "limit", query.DefaultLimit)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return services.ListOptions{}, false
	}

	return services.ListOptions{
		Page:      page,
		Limit:     limit,
		Status:    c.Query("status"),
		Priority:  c.Query("priority"),
		Category:  c.Query("category"),
		Hostel:    c.Query("hostel"),
		Type:      c.Query("type"),
		Role:      c.Query("role"),
		Search:    c.Query("search"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		SortBy:    c.Query("sortBy"),
		Order:     c.Query("order"),
	}, true
}

func intQuery(c *gin.Context, name string, fallback int) (int, error) {
	s := c.Query(name)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	return n, nil
}

// respondError maps service errors onto the response envelope.
func respondError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, notFoundMsg)
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "not authorized to access this resource")
	case errors.Is(err, services.ErrEmailTaken):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, "invalid credentials")
	case errors.Is(err, query.ErrInvalidArgument):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
