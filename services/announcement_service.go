package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/Deepanghsh/Smart-Ward-Admin/entity"
	"github.com/Deepanghsh/Smart-Ward-Admin/pkg/query"
	"github.com/Deepanghsh/Smart-Ward-Admin/repository"
	"github.com/Deepanghsh/Smart-Ward-Admin/utils"
)

var announcementFields = map[string]query.Accessor[entity.Announcement]{
	"id":        func(a entity.Announcement) any { return a.ID },
	"title":     func(a entity.Announcement) any { return a.Title },
	"content":   func(a entity.Announcement) any { return a.Content },
	"priority":  func(a entity.Announcement) any { return a.Priority },
	"hostel":    func(a entity.Announcement) any { return a.Hostel },
	"author":    func(a entity.Announcement) any { return a.Author },
	"type":      func(a entity.Announcement) any { return a.Type },
	"date":      func(a entity.Announcement) any { return a.Date },
	"createdAt": func(a entity.Announcement) any { return a.CreatedAt },
}

type AnnouncementService struct {
	repo     *repository.AnnouncementRepository
	users    *repository.UserRepository
	pipeline *query.Pipeline[entity.Announcement]
}

func NewAnnouncementService(repo *repository.AnnouncementRepository, users *repository.UserRepository) *AnnouncementService {
	return &AnnouncementService{
		repo:     repo,
		users:    users,
		pipeline: query.NewPipeline(announcementFields),
	}
}

// hostelMatches reports whether an announcement scoped to scope
// applies to the given hostel. Scope may be "All Hostels" or a
// comma-separated list of hostel names.
func hostelMatches(scope, hostel string) bool {
	return scope == entity.AllHostels || strings.Contains(scope, hostel)
}

func (s *AnnouncementService) List(actorID, role string, opts ListOptions) (query.Page[entity.Announcement], error) {
	anns, err := s.repo.FindAll()
	if err != nil {
		return query.Page[entity.Announcement]{}, err
	}

	var scope func(entity.Announcement) bool
	if role == "student" {
		actor, err := s.users.FindByID(actorID)
		if err != nil {
			return query.Page[entity.Announcement]{}, orNotFound(err)
		}
		if actor.Hostel != "" {
			hostel := actor.Hostel
			scope = func(a entity.Announcement) bool {
				return hostelMatches(a.Hostel, hostel)
			}
		}
	}

	opts = opts.withDefaults("date")
	req := query.Request[entity.Announcement]{
		Scope: scope,
		Equals: map[string]string{
			"priority": opts.Priority,
		},
		DateField:    "date",
		StartDate:    opts.StartDate,
		EndDate:      opts.EndDate,
		Search:       opts.Search,
		SearchFields: []string{"title", "content", "author"},
		SortBy:       opts.SortBy,
		Order:        opts.Order,
		Page:         opts.Page,
		Limit:        opts.Limit,
	}
	if opts.Hostel != "" {
		hostel := opts.Hostel
		req.Match = append(req.Match, func(a entity.Announcement) bool {
			return hostelMatches(a.Hostel, hostel)
		})
	}

	return s.pipeline.Run(anns, req)
}

func (s *AnnouncementService) Get(id string) (*entity.Announcement, error) {
	ann, err := s.repo.FindByID(id)
	return ann, orNotFound(err)
}

type AnnouncementInput struct {
	Title    string
	Content  string
	Priority string
	Hostel   string
	Type     string
}

func (s *AnnouncementService) Create(authorID string, in AnnouncementInput) (*entity.Announcement, error) {
	if in.Title == "" || in.Content == "" {
		return nil, fmt.Errorf("%w: title and content are required", query.ErrInvalidArgument)
	}
	if !entity.ValidAnnouncementPriority(in.Priority) {
		return nil, fmt.Errorf("%w: invalid priority %q", query.ErrInvalidArgument, in.Priority)
	}
	if in.Hostel == "" {
		return nil, fmt.Errorf("%w: hostel is required", query.ErrInvalidArgument)
	}

	author, err := s.users.FindByID(authorID)
	if err != nil {
		return nil, orNotFound(err)
	}

	annType := in.Type
	if annType == "" {
		annType = "general"
	}

	now := time.Now()
	ann := &entity.Announcement{
		ID:        utils.NewID("ANN"),
		Title:     in.Title,
		Content:   in.Content,
		Priority:  in.Priority,
		Hostel:    in.Hostel,
		AuthorID:  author.ID,
		Author:    author.Name,
		Type:      annType,
		Date:      now,
		CreatedAt: now,
	}

	if err := s.repo.Create(ann); err != nil {
		return nil, err
	}
	return ann, nil
}

// Update applies the supplied fields only; empty fields keep their
// current value.
func (s *AnnouncementService) Update(id string, in AnnouncementInput) (*entity.Announcement, error) {
	if _, err := s.repo.FindByID(id); err != nil {
		return nil, orNotFound(err)
	}

	updates := make(map[string]any)
	if in.Title != "" {
		updates["title"] = in.Title
	}
	if in.Content != "" {
		updates["content"] = in.Content
	}
	if in.Priority != "" {
		if !entity.ValidAnnouncementPriority(in.Priority) {
			return nil, fmt.Errorf("%w: invalid priority %q", query.ErrInvalidArgument, in.Priority)
		}
		updates["priority"] = in.Priority
	}
	if in.Hostel != "" {
		updates["hostel"] = in.Hostel
	}
	if in.Type != "" {
		updates["type"] = in.Type
	}

	if len(updates) > 0 {
		if err := s.repo.Update(id, updates); err != nil {
			return nil, err
		}
	}
	updated, err := s.repo.FindByID(id)
	return updated, orNotFound(err)
}

func (s *AnnouncementService) Delete(id string) error {
	if _, err := s.repo.FindByID(id); err != nil {
		return orNotFound(err)
	}
	return s.repo.Delete(id)
}
