package repository

import (
	"github.com/Deepanghsh/Smart-Ward-Admin/entity"

	"gorm.io/gorm"
)

type AnnouncementRepository struct {
	db *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

func (r *AnnouncementRepository) Create(ann *entity.Announcement) error {
	return r.db.Create(ann).Error
}

func (r *AnnouncementRepository) FindByID(id string) (*entity.Announcement, error) {
	var ann entity.Announcement
	if err := r.db.First(&ann, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ann, nil
}

// FindAll returns a snapshot slice safe to filter and sort.
func (r *AnnouncementRepository) FindAll() ([]entity.Announcement, error) {
	var anns []entity.Announcement
	if err := r.db.Find(&anns).Error; err != nil {
		return nil, err
	}
	return anns, nil
}

func (r *AnnouncementRepository) Update(id string, updates map[string]any) error {
	return r.db.Model(&entity.Announcement{}).Where("id = ?", id).Updates(updates).Error
}

func (r *AnnouncementRepository) Delete(id string) error {
	return r.db.Delete(&entity.Announcement{}, "id = ?", id).Error
}

func (r *AnnouncementRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entity.Announcement{}).Count(&count).Error
	return count, err
}
