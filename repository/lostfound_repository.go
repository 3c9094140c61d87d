package repository

import (
	"github.com/Deepanghsh/Smart-Ward-Admin/entity"

	"gorm.io/gorm"
)

type LostFoundRepository struct {
	db *gorm.DB
}

func NewLostFoundRepository(db *gorm.DB) *LostFoundRepository {
	return &LostFoundRepository{db: db}
}

func (r *LostFoundRepository) Create(item *entity.LostFoundItem) error {
	return r.db.Create(item).Error
}

func (r *LostFoundRepository) FindByID(id string) (*entity.LostFoundItem, error) {
	var item entity.LostFoundItem
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindAll returns a snapshot slice safe to filter and sort.
func (r *LostFoundRepository) FindAll() ([]entity.LostFoundItem, error) {
	var items []entity.LostFoundItem
	if err := r.db.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *LostFoundRepository) Update(id string, updates map[string]any) error {
	return r.db.Model(&entity.LostFoundItem{}).Where("id = ?", id).Updates(updates).Error
}

func (r *LostFoundRepository) Delete(id string) error {
	return r.db.Delete(&entity.LostFoundItem{}, "id = ?", id).Error
}
