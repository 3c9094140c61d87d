package services

import (
	"fmt"
	"time"

	"github.com/Deepanghsh/Smart-Ward-Admin/entity"
	"github.com/Deepanghsh/Smart-Ward-Admin/pkg/query"
	"github.com/Deepanghsh/Smart-Ward-Admin/repository"
	"github.com/Deepanghsh/Smart-Ward-Admin/utils"
)

var lostFoundFields = map[string]query.Accessor[entity.LostFoundItem]{
	"id":          func(i entity.LostFoundItem) any { return i.ID },
	"title":       func(i entity.LostFoundItem) any { return i.Title },
	"description": func(i entity.LostFoundItem) any { return i.Description },
	"type":        func(i entity.LostFoundItem) any { return i.Type },
	"category":    func(i entity.LostFoundItem) any { return i.Category },
	"location":    func(i entity.LostFoundItem) any { return i.Location },
	"hostel":      func(i entity.LostFoundItem) any { return i.Hostel },
	"reporter":    func(i entity.LostFoundItem) any { return i.Reporter },
	"status":      func(i entity.LostFoundItem) any { return i.Status },
	"date":        func(i entity.LostFoundItem) any { return i.Date },
	"createdAt":   func(i entity.LostFoundItem) any { return i.CreatedAt },
}

type LostFoundService struct {
	repo     *repository.LostFoundRepository
	users    *repository.UserRepository
	pipeline *query.Pipeline[entity.LostFoundItem]
}

func NewLostFoundService(repo *repository.LostFoundRepository, users *repository.UserRepository) *LostFoundService {
	return &LostFoundService{
		repo:     repo,
		users:    users,
		pipeline: query.NewPipeline(lostFoundFields),
	}
}

func (s *LostFoundService) List(actorID, role string, opts ListOptions) (query.Page[entity.LostFoundItem], error) {
	items, err := s.repo.FindAll()
	if err != nil {
		return query.Page[entity.LostFoundItem]{}, err
	}

	var scope func(entity.LostFoundItem) bool
	if role == "student" {
		actor, err := s.users.FindByID(actorID)
		if err != nil {
			return query.Page[entity.LostFoundItem]{}, orNotFound(err)
		}
		if actor.Hostel != "" {
			hostel := actor.Hostel
			scope = func(i entity.LostFoundItem) bool { return i.Hostel == hostel }
		}
	}

	opts = opts.withDefaults("date")
	return s.pipeline.Run(items, query.Request[entity.LostFoundItem]{
		Scope: scope,
		Equals: map[string]string{
			"type":     opts.Type,
			"category": opts.Category,
			"status":   opts.Status,
			"hostel":   opts.Hostel,
		},
		DateField:    "date",
		StartDate:    opts.StartDate,
		EndDate:      opts.EndDate,
		Search:       opts.Search,
		SearchFields: []string{"title", "description", "location", "reporter"},
		SortBy:       opts.SortBy,
		Order:        opts.Order,
		Page:         opts.Page,
		Limit:        opts.Limit,
	})
}

func (s *LostFoundService) Get(id string) (*entity.LostFoundItem, error) {
	item, err := s.repo.FindByID(id)
	return item, orNotFound(err)
}

type LostFoundInput struct {
	Title       string
	Description string
	Type        string
	Category    string
	Location    string
	Hostel      string
	Phone       string
	Status      string
}

func (s *LostFoundService) Create(actorID string, in LostFoundInput) (*entity.LostFoundItem, error) {
	if in.Title == "" || in.Description == "" {
		return nil, fmt.Errorf("%w: title and description are required", query.ErrInvalidArgument)
	}
	if !entity.ValidLostFoundType(in.Type) {
		return nil, fmt.Errorf("%w: type must be lost or found", query.ErrInvalidArgument)
	}

	reporter, err := s.users.FindByID(actorID)
	if err != nil {
		return nil, orNotFound(err)
	}

	phone := in.Phone
	if phone == "" {
		phone = reporter.Phone
	}

	now := time.Now()
	item := &entity.LostFoundItem{
		ID:          utils.NewID("LF"),
		Title:       in.Title,
		Description: in.Description,
		Type:        in.Type,
		Category:    in.Category,
		Location:    in.Location,
		Hostel:      in.Hostel,
		ReporterID:  reporter.ID,
		Reporter:    reporter.Name,
		Contact:     reporter.Email,
		Phone:       phone,
		Status:      "active",
		Date:        now,
		CreatedAt:   now,
	}

	if err := s.repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update lets the owner or an admin change title, description or
// status.
func (s *LostFoundService) Update(actorID, role, id string, in LostFoundInput) (*entity.LostFoundItem, error) {
	item, err := s.repo.FindByID(id)
	if err != nil {
		return nil, orNotFound(err)
	}
	if role != "admin" && item.ReporterID != actorID {
		return nil, ErrForbidden
	}

	updates := make(map[string]any)
	if in.Title != "" {
		updates["title"] = in.Title
	}
	if in.Description != "" {
		updates["description"] = in.Description
	}
	if in.Status != "" {
		if !entity.ValidLostFoundStatus(in.Status) {
			return nil, fmt.Errorf("%w: invalid status %q", query.ErrInvalidArgument, in.Status)
		}
		updates["status"] = in.Status
	}

	if len(updates) > 0 {
		if err := s.repo.Update(id, updates); err != nil {
			return nil, err
		}
	}
	updated, err := s.repo.FindByID(id)
	return updated, orNotFound(err)
}

// Claim moves an item active -> claimed. The transition is one-way;
// a claimed item stays claimed.
func (s *LostFoundService) Claim(actorID, id string) (*entity.LostFoundItem, error) {
	item, err := s.repo.FindByID(id)
	if err != nil {
		return nil, orNotFound(err)
	}
	if item.Status == "claimed" {
		return nil, fmt.Errorf("%w: item already claimed", query.ErrInvalidArgument)
	}

	actor, err := s.users.FindByID(actorID)
	if err != nil {
		return nil, orNotFound(err)
	}

	now := time.Now()
	if err := s.repo.Update(id, map[string]any{
		"status":        "claimed",
		"claimed_by":    actor.Name,
		"claimed_by_id": actor.ID,
		"claimed_at":    now,
	}); err != nil {
		return nil, err
	}
	updated, err := s.repo.FindByID(id)
	return updated, orNotFound(err)
}

func (s *LostFoundService) Delete(actorID, role, id string) error {
	item, err := s.repo.FindByID(id)
	if err != nil {
		return orNotFound(err)
	}
	if role != "admin" && item.ReporterID != actorID {
		return ErrForbidden
	}
	return s.repo.Delete(id)
}

type LostFoundStats struct {
	Total      int            `json:"total"`
	Lost       int            `json:"lost"`
	Found      int            `json:"found"`
	Active     int            `json:"active"`
	Claimed    int            `json:"claimed"`
	ByCategory map[string]int `json:"byCategory"`
}

func (s *LostFoundService) Stats() (*LostFoundStats, error) {
	items, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}

	stats := &LostFoundStats{
		Total:      len(items),
		ByCategory: make(map[string]int),
	}
	for _, i := range items {
		switch i.Type {
		case "lost":
			stats.Lost++
		case "found":
			stats.Found++
		}
		switch i.Status {
		case "active":
			stats.Active++
		case "claimed":
			stats.Claimed++
		}
		stats.ByCategory[i.Category]++
	}
	return stats, nil
}
