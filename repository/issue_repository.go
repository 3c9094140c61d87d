package repository

import (
	"time"

	"github.com/Deepanghsh/Smart-Ward-Admin/entity"

	"gorm.io/gorm"
)

type IssueRepository struct {
	db *gorm.DB
}

func NewIssueRepository(db *gorm.DB) *IssueRepository {
	return &IssueRepository{db: db}
}

func (r *IssueRepository) Create(issue *entity.Issue) error {
	return r.db.Create(issue).Error
}

func (r *IssueRepository) FindByID(id string) (*entity.Issue, error) {
	var issue entity.Issue
	err := r.db.Preload("Comments", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	}).First(&issue, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &issue, nil
}

// FindAll returns a snapshot slice safe to filter and sort.
func (r *IssueRepository) FindAll() ([]entity.Issue, error) {
	var issues []entity.Issue
	err := r.db.Preload("Comments", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	}).Find(&issues).Error
	if err != nil {
		return nil, err
	}
	return issues, nil
}

// Update applies a patch and bumps updated_at.
func (r *IssueRepository) Update(id string, updates map[string]any) error {
	updates["updated_at"] = time.Now()
	return r.db.Model(&entity.Issue{}).Where("id = ?", id).Updates(updates).Error
}

// AddComment appends a comment and bumps the issue's updated_at.
func (r *IssueRepository) AddComment(comment *entity.IssueComment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		return tx.Model(&entity.Issue{}).
			Where("id = ?", comment.IssueID).
			Update("updated_at", time.Now()).Error
	})
}

func (r *IssueRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.IssueComment{}, "issue_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Issue{}, "id = ?", id).Error
	})
}
