package services

import (
	"fmt"

	"github.com/Deepanghsh/Smart-Ward-Admin/entity"
	"github.com/Deepanghsh/Smart-Ward-Admin/pkg/query"
	"github.com/Deepanghsh/Smart-Ward-Admin/repository"
)

var userFields = map[string]query.Accessor[entity.User]{
	"id":         func(u entity.User) any { return u.ID },
	"name":       func(u entity.User) any { return u.Name },
	"email":      func(u entity.User) any { return u.Email },
	"role":       func(u entity.User) any { return u.Role },
	"hostel":     func(u entity.User) any { return u.Hostel },
	"department": func(u entity.User) any { return u.Department },
	"createdAt":  func(u entity.User) any { return u.CreatedAt },
}

// UserService is the admin-facing user directory.
type UserService struct {
	users    *repository.UserRepository
	pipeline *query.Pipeline[entity.User]
}

func NewUserService(users *repository.UserRepository) *UserService {
	return &UserService{
		users:    users,
		pipeline: query.NewPipeline(userFields),
	}
}

func (s *UserService) List(opts ListOptions) (query.Page[entity.User], error) {
	users, err := s.users.FindAll()
	if err != nil {
		return query.Page[entity.User]{}, err
	}

	opts = opts.withDefaults("createdAt")
	return s.pipeline.Run(users, query.Request[entity.User]{
		Equals: map[string]string{
			"role":   opts.Role,
			"hostel": opts.Hostel,
		},
		DateField:    "createdAt",
		StartDate:    opts.StartDate,
		EndDate:      opts.EndDate,
		Search:       opts.Search,
		SearchFields: []string{"name", "email", "department"},
		SortBy:       opts.SortBy,
		Order:        opts.Order,
		Page:         opts.Page,
		Limit:        opts.Limit,
	})
}

func (s *UserService) Get(id string) (*entity.User, error) {
	user, err := s.users.FindByID(id)
	return user, orNotFound(err)
}

// adminUserFields are the keys an admin may change on any user.
var adminUserFields = []string{
	"name", "role", "hostel", "block", "room", "year",
	"phone", "department", "designation",
}

func (s *UserService) Update(id string, updates map[string]any) (*entity.User, error) {
	if _, err := s.users.FindByID(id); err != nil {
		return nil, orNotFound(err)
	}

	allowed := make(map[string]any)
	for _, f := range adminUserFields {
		if v, ok := updates[f]; ok {
			allowed[f] = v
		}
	}
	if role, ok := allowed["role"].(string); ok && !entity.ValidRole(role) {
		return nil, fmt.Errorf("%w: invalid role %q", query.ErrInvalidArgument, role)
	}

	if len(allowed) > 0 {
		if err := s.users.Update(id, allowed); err != nil {
			return nil, err
		}
	}
	user, err := s.users.FindByID(id)
	return user, orNotFound(err)
}

func (s *UserService) Delete(id string) error {
	if _, err := s.users.FindByID(id); err != nil {
		return orNotFound(err)
	}
	return s.users.Delete(id)
}

type UserStats struct {
	Total    int64 `json:"total"`
	Students int64 `json:"students"`
	Admins   int64 `json:"admins"`
}

func (s *UserService) Stats() (*UserStats, error) {
	students, err := s.users.CountByRole("student")
	if err != nil {
		return nil, err
	}
	admins, err := s.users.CountByRole("admin")
	if err != nil {
		return nil, err
	}
	return &UserStats{
		Total:    students + admins,
		Students: students,
		Admins:   admins,
	}, nil
}
