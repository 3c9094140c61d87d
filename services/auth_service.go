package services

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Deepanghsh/Smart-Ward-Admin/entity"
	"github.com/Deepanghsh/Smart-Ward-Admin/pkg/query"
	"github.com/Deepanghsh/Smart-Ward-Admin/repository"
	"github.com/Deepanghsh/Smart-Ward-Admin/utils"

	"golang.org/x/crypto/bcrypt"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthService handles register/login and profile management.
type AuthService struct {
	users     *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(users *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

type RegisterInput struct {
	Name       string
	Email      string
	Password   string
	Role       string
	Hostel     string
	Block      string
	Room       string
	Year       string
	Phone      string
	Department string
}

// Register creates a new user; the email must be unused.
func (s *AuthService) Register(in RegisterInput) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	name := strings.TrimSpace(in.Name)

	if name == "" {
		return nil, fmt.Errorf("%w: name is required", query.ErrInvalidArgument)
	}
	if !emailRe.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email %q", query.ErrInvalidArgument, in.Email)
	}
	if len(in.Password) < 6 {
		return nil, fmt.Errorf("%w: password must be at least 6 characters", query.ErrInvalidArgument)
	}

	role := in.Role
	if role == "" {
		role = "student"
	}
	if !entity.ValidRole(role) {
		return nil, fmt.Errorf("%w: invalid role %q", query.ErrInvalidArgument, role)
	}

	count, err := s.users.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	prefix := "STU"
	if role == "admin" {
		prefix = "ADM"
	}

	user := &entity.User{
		ID:         utils.NewID(prefix),
		Name:       name,
		Email:      email,
		Password:   string(hashed),
		Role:       role,
		Hostel:     strings.TrimSpace(in.Hostel),
		Block:      strings.TrimSpace(in.Block),
		Room:       strings.TrimSpace(in.Room),
		Year:       strings.TrimSpace(in.Year),
		Phone:      strings.TrimSpace(in.Phone),
		Department: strings.TrimSpace(in.Department),
	}

	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks credentials and issues a JWT.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *AuthService) GetProfile(userID string) (*entity.User, error) {
	user, err := s.users.FindByID(userID)
	return user, orNotFound(err)
}

// profileFields are the keys a user may change on their own profile.
var profileFields = []string{"name", "hostel", "block", "room", "year", "phone", "department"}

func (s *AuthService) UpdateProfile(userID string, updates map[string]any) (*entity.User, error) {
	allowed := make(map[string]any)
	for _, f := range profileFields {
		if v, ok := updates[f]; ok {
			allowed[f] = v
		}
	}
	if len(allowed) > 0 {
		if err := s.users.Update(userID, allowed); err != nil {
			return nil, err
		}
	}
	return s.GetProfile(userID)
}

func (s *AuthService) ChangePassword(userID, current, newPassword string) error {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return orNotFound(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(current)); err != nil {
		return ErrInvalidCredentials
	}
	if len(newPassword) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", query.ErrInvalidArgument)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.Update(userID, map[string]any{"password": string(hashed)})
}

// ForgotPassword only verifies the account exists; mail delivery is a
// deployment concern.
func (s *AuthService) ForgotPassword(email string) error {
	_, err := s.users.FindByEmail(strings.ToLower(strings.TrimSpace(email)))
	return orNotFound(err)
}
