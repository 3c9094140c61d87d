package services

import (
	"fmt"
	"log"
	"time"

	"github.com/Deepanghsh/Smart-Ward-Admin/entity"
	"github.com/Deepanghsh/Smart-Ward-Admin/pkg/query"
	"github.com/Deepanghsh/Smart-Ward-Admin/repository"
	"github.com/Deepanghsh/Smart-Ward-Admin/utils"
)

// issueFields names every field the list pipeline may filter, search
// or sort issues by.
var issueFields = map[string]query.Accessor[entity.Issue]{
	"id":          func(i entity.Issue) any { return i.ID },
	"title":       func(i entity.Issue) any { return i.Title },
	"description": func(i entity.Issue) any { return i.Description },
	"category":    func(i entity.Issue) any { return i.Category },
	"priority":    func(i entity.Issue) any { return i.Priority },
	"status":      func(i entity.Issue) any { return i.Status },
	"hostel":      func(i entity.Issue) any { return i.Hostel },
	"block":       func(i entity.Issue) any { return i.Block },
	"room":        func(i entity.Issue) any { return i.Room },
	"reporter":    func(i entity.Issue) any { return i.Reporter },
	"reporterId":  func(i entity.Issue) any { return i.ReporterID },
	"visibility":  func(i entity.Issue) any { return i.Visibility },
	"assignedTo": func(i entity.Issue) any {
		if i.AssignedTo == nil {
			return nil
		}
		return *i.AssignedTo
	},
	"reportedDate": func(i entity.Issue) any { return i.ReportedDate },
	"updatedAt":    func(i entity.Issue) any { return i.UpdatedAt },
}

type IssueService struct {
	repo     *repository.IssueRepository
	users    *repository.UserRepository
	pipeline *query.Pipeline[entity.Issue]
}

func NewIssueService(repo *repository.IssueRepository, users *repository.UserRepository) *IssueService {
	return &IssueService{
		repo:     repo,
		users:    users,
		pipeline: query.NewPipeline(issueFields),
	}
}

// issueScope restricts students to their own issues plus public ones.
func issueScope(actorID, role string) func(entity.Issue) bool {
	if role != "student" {
		return nil
	}
	return func(i entity.Issue) bool {
		return i.ReporterID == actorID || i.Visibility == "public"
	}
}

func (s *IssueService) List(actorID, role string, opts ListOptions) (query.Page[entity.Issue], error) {
	issues, err := s.repo.FindAll()
	if err != nil {
		return query.Page[entity.Issue]{}, err
	}

	opts = opts.withDefaults("reportedDate")
	return s.pipeline.Run(issues, query.Request[entity.Issue]{
		Scope: issueScope(actorID, role),
		Equals: map[string]string{
			"status":   opts.Status,
			"priority": opts.Priority,
			"category": opts.Category,
			"hostel":   opts.Hostel,
		},
		DateField:    "reportedDate",
		StartDate:    opts.StartDate,
		EndDate:      opts.EndDate,
		Search:       opts.Search,
		SearchFields: []string{"title", "description", "reporter", "room"},
		SortBy:       opts.SortBy,
		Order:        opts.Order,
		Page:         opts.Page,
		Limit:        opts.Limit,
	})
}

func (s *IssueService) Get(actorID, role, id string) (*entity.Issue, error) {
	issue, err := s.repo.FindByID(id)
	if err != nil {
		return nil, orNotFound(err)
	}
	if role == "student" && issue.ReporterID != actorID && issue.Visibility != "public" {
		return nil, ErrForbidden
	}
	return issue, nil
}

type CreateIssueInput struct {
	Title       string
	Description string
	Category    string
	Priority    string
	Hostel      string
	Block       string
	Room        string
	Visibility  string
}

func (s *IssueService) Create(actorID string, in CreateIssueInput) (*entity.Issue, error) {
	if in.Title == "" || in.Description == "" {
		return nil, fmt.Errorf("%w: title and description are required", query.ErrInvalidArgument)
	}
	if !entity.ValidIssueCategory(in.Category) {
		return nil, fmt.Errorf("%w: invalid category %q", query.ErrInvalidArgument, in.Category)
	}
	if !entity.ValidIssuePriority(in.Priority) {
		return nil, fmt.Errorf("%w: invalid priority %q", query.ErrInvalidArgument, in.Priority)
	}
	visibility := in.Visibility
	if visibility == "" {
		visibility = "public"
	}
	if visibility != "public" && visibility != "private" {
		return nil, fmt.Errorf("%w: invalid visibility %q", query.ErrInvalidArgument, visibility)
	}

	reporter, err := s.users.FindByID(actorID)
	if err != nil {
		return nil, orNotFound(err)
	}

	now := time.Now()
	issue := &entity.Issue{
		ID:           utils.NewID("ISS"),
		Title:        in.Title,
		Description:  in.Description,
		Category:     in.Category,
		Priority:     in.Priority,
		Status:       "reported",
		Hostel:       in.Hostel,
		Block:        in.Block,
		Room:         in.Room,
		ReporterID:   reporter.ID,
		Reporter:     reporter.Name,
		Visibility:   visibility,
		ReportedDate: now,
		UpdatedAt:    now,
		Images:       []string{},
	}

	if err := s.repo.Create(issue); err != nil {
		return nil, err
	}
	return issue, nil
}

// UpdateStatus sets the status freely (admin override is allowed) and
// optionally appends a comment. Transitions that move backward or skip
// intermediate states are logged for audit, never rejected.
func (s *IssueService) UpdateStatus(actorID, id, status, comment string) (*entity.Issue, error) {
	if !entity.ValidIssueStatus(status) {
		return nil, fmt.Errorf("%w: invalid status %q", query.ErrInvalidArgument, status)
	}

	issue, err := s.repo.FindByID(id)
	if err != nil {
		return nil, orNotFound(err)
	}

	actor, err := s.users.FindByID(actorID)
	if err != nil {
		return nil, orNotFound(err)
	}

	from, to := entity.StatusRank(issue.Status), entity.StatusRank(status)
	if to < from || to > from+1 {
		log.Printf("audit: issue %s status %q -> %q (non-sequential, by %s)", id, issue.Status, status, actor.ID)
	}

	if comment != "" {
		if err := s.repo.AddComment(&entity.IssueComment{
			ID:        utils.NewID("CMT"),
			IssueID:   issue.ID,
			UserID:    actor.ID,
			UserName:  actor.Name,
			Comment:   comment,
			CreatedAt: time.Now(),
		}); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(id, map[string]any{"status": status}); err != nil {
		return nil, err
	}
	updated, err := s.repo.FindByID(id)
	return updated, orNotFound(err)
}

func (s *IssueService) Assign(id, assignedTo, assignedToID string) (*entity.Issue, error) {
	if _, err := s.repo.FindByID(id); err != nil {
		return nil, orNotFound(err)
	}

	if err := s.repo.Update(id, map[string]any{
		"assigned_to":    assignedTo,
		"assigned_to_id": assignedToID,
		"status":         "assigned",
	}); err != nil {
		return nil, err
	}
	updated, err := s.repo.FindByID(id)
	return updated, orNotFound(err)
}

// AddComment appends to the issue's comment thread. Comments are
// append-only; there is no removal.
func (s *IssueService) AddComment(actorID, id, text string) (*entity.Issue, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: comment is required", query.ErrInvalidArgument)
	}

	issue, err := s.repo.FindByID(id)
	if err != nil {
		return nil, orNotFound(err)
	}
	actor, err := s.users.FindByID(actorID)
	if err != nil {
		return nil, orNotFound(err)
	}

	if err := s.repo.AddComment(&entity.IssueComment{
		ID:        utils.NewID("CMT"),
		IssueID:   issue.ID,
		UserID:    actor.ID,
		UserName:  actor.Name,
		Comment:   text,
		CreatedAt: time.Now(),
	}); err != nil {
		return nil, err
	}
	updated, err := s.repo.FindByID(id)
	return updated, orNotFound(err)
}

func (s *IssueService) Delete(actorID, role, id string) error {
	issue, err := s.repo.FindByID(id)
	if err != nil {
		return orNotFound(err)
	}
	if role != "admin" && issue.ReporterID != actorID {
		return ErrForbidden
	}
	return s.repo.Delete(id)
}

type IssueStats struct {
	Total      int            `json:"total"`
	ByStatus   map[string]int `json:"byStatus"`
	ByPriority map[string]int `json:"byPriority"`
	ByCategory map[string]int `json:"byCategory"`
	ByHostel   map[string]int `json:"byHostel"`
}

func (s *IssueService) Stats() (*IssueStats, error) {
	issues, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}

	stats := &IssueStats{
		Total:      len(issues),
		ByStatus:   make(map[string]int),
		ByPriority: make(map[string]int),
		ByCategory: make(map[string]int),
		ByHostel:   make(map[string]int),
	}
	for _, i := range issues {
		stats.ByStatus[i.Status]++
		stats.ByPriority[i.Priority]++
		stats.ByCategory[i.Category]++
		stats.ByHostel[i.Hostel]++
	}
	return stats, nil
}
