package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Deepanghsh/Smart-Ward-Admin/pkg/query"
	"github.com/Deepanghsh/Smart-Ward-Admin/repository"

	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) (*AuthService, *repository.UserRepository) {
	t.Helper()
	users := repository.NewUserRepository(newTestDB(t))
	return NewAuthService(users, "test-secret", time.Hour), users
}

func TestAuthService_Register(t *testing.T) {
	svc, _ := newAuthService(t)

	user, err := svc.Register(RegisterInput{
		Name:     "Rahul Kumar",
		Email:    "Rahul@Hostel.EDU",
		Password: "secret1",
		Hostel:   "Hostel A - Boys",
		Room:     "204",
	})
	require.NoError(t, err)

	require.Equal(t, "rahul@hostel.edu", user.Email) // normalized
	require.Equal(t, "student", user.Role)
	require.Contains(t, user.ID, "STU")
	require.NotEqual(t, "secret1", user.Password) // bcrypt, never plain
}

func TestAuthService_RegisterValidation(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register(RegisterInput{Email: "a@b.co", Password: "secret1"})
	require.ErrorIs(t, err, query.ErrInvalidArgument) // missing name

	_, err = svc.Register(RegisterInput{Name: "A", Email: "not-an-email", Password: "secret1"})
	require.ErrorIs(t, err, query.ErrInvalidArgument)

	_, err = svc.Register(RegisterInput{Name: "A", Email: "a@b.co", Password: "short"})
	require.ErrorIs(t, err, query.ErrInvalidArgument)

	_, err = svc.Register(RegisterInput{Name: "A", Email: "a@b.co", Password: "secret1", Role: "superuser"})
	require.ErrorIs(t, err, query.ErrInvalidArgument)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	in := RegisterInput{Name: "A", Email: "dup@hostel.edu", Password: "secret1"}
	_, err := svc.Register(in)
	require.NoError(t, err)

	in.Name = "B"
	_, err = svc.Register(in)
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_Login(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register(RegisterInput{Name: "A", Email: "a@hostel.edu", Password: "secret1"})
	require.NoError(t, err)

	token, user, err := svc.Login("A@hostel.edu", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, "a@hostel.edu", user.Email)

	_, _, err = svc.Login("a@hostel.edu", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// an unknown account reads the same as a bad password
	_, _, err = svc.Login("nobody@hostel.edu", "secret1")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

// The password hash must never leak through the JSON surface.
func TestAuthService_PasswordHiddenInJSON(t *testing.T) {
	svc, _ := newAuthService(t)

	user, err := svc.Register(RegisterInput{Name: "A", Email: "a@hostel.edu", Password: "secret1"})
	require.NoError(t, err)

	raw, err := json.Marshal(user)
	require.NoError(t, err)
	require.NotContains(t, string(raw), "password")
	require.NotContains(t, string(raw), user.Password)
}

func TestAuthService_UpdateProfileIgnoresProtectedFields(t *testing.T) {
	svc, _ := newAuthService(t)

	user, err := svc.Register(RegisterInput{Name: "A", Email: "a@hostel.edu", Password: "secret1"})
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(user.ID, map[string]any{
		"room":  "305",
		"role":  "admin",        // not a profile field
		"email": "b@hostel.edu", // not a profile field
	})
	require.NoError(t, err)
	require.Equal(t, "305", updated.Room)
	require.Equal(t, "student", updated.Role)
	require.Equal(t, "a@hostel.edu", updated.Email)
}

func TestAuthService_ChangePassword(t *testing.T) {
	svc, _ := newAuthService(t)

	user, err := svc.Register(RegisterInput{Name: "A", Email: "a@hostel.edu", Password: "secret1"})
	require.NoError(t, err)

	require.ErrorIs(t, svc.ChangePassword(user.ID, "wrong", "newsecret"), ErrInvalidCredentials)
	require.ErrorIs(t, svc.ChangePassword(user.ID, "secret1", "short"), query.ErrInvalidArgument)

	require.NoError(t, svc.ChangePassword(user.ID, "secret1", "newsecret"))
	_, _, err = svc.Login("a@hostel.edu", "newsecret")
	require.NoError(t, err)
	_, _, err = svc.Login("a@hostel.edu", "secret1")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_ForgotPassword(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register(RegisterInput{Name: "A", Email: "a@hostel.edu", Password: "secret1"})
	require.NoError(t, err)

	require.NoError(t, svc.ForgotPassword("a@hostel.edu"))
	require.ErrorIs(t, svc.ForgotPassword("nobody@hostel.edu"), ErrNotFound)
}
