package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/Deepanghsh/Smart-Ward-Admin/entity"
	"github.com/Deepanghsh/Smart-Ward-Admin/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database per test. The name in
// the DSN keeps parallel tests from sharing state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Issue{},
		&entity.IssueComment{},
		&entity.Announcement{},
		&entity.LostFoundItem{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, user entity.User) entity.User {
	t.Helper()
	if user.Password == "" {
		user.Password = "x" // not used unless the test logs in
	}
	require.NoError(t, repository.NewUserRepository(db).Create(&user))
	return user
}

func seedStudent(t *testing.T, db *gorm.DB, id, name, hostel string) entity.User {
	t.Helper()
	return seedUser(t, db, entity.User{
		ID:     id,
		Name:   name,
		Email:  id + "@hostel.edu",
		Role:   "student",
		Hostel: hostel,
	})
}

func seedAdmin(t *testing.T, db *gorm.DB, id, name string) entity.User {
	t.Helper()
	return seedUser(t, db, entity.User{
		ID:    id,
		Name:  name,
		Email: id + "@hostel.edu",
		Role:  "admin",
	})
}

func seedIssue(t *testing.T, db *gorm.DB, issue entity.Issue) entity.Issue {
	t.Helper()
	if issue.ReportedDate.IsZero() {
		issue.ReportedDate = time.Now()
	}
	if issue.UpdatedAt.IsZero() {
		issue.UpdatedAt = issue.ReportedDate
	}
	require.NoError(t, repository.NewIssueRepository(db).Create(&issue))
	return issue
}
