package alternatives

import (
	"github.com/wortkiste/core/internal/models"
	"gorm.io/gorm"
)

// Store is the persistence surface the engine needs. Records are append
// only; the only mutation is the bulk delete per item.
type Store interface {
	FindByItem(item string) ([]models.AlternativeModel, error)
	InsertBatch(records []models.AlternativeModel) error
	DeleteByItem(item string) error
	CountByItem() (map[string]int64, error)
}

type gormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) FindByItem(item string) ([]models.AlternativeModel, error) {
	var records []models.AlternativeModel
	// ordinal breaks created_at ties between rows of one insert batch
	err := s.db.
		Where("item = ?", item).
		Order("created_at ASC, ordinal ASC").
		Find(&records).Error
	return records, err
}

func (s *gormStore) InsertBatch(records []models.AlternativeModel) error {
	if len(records) == 0 {
		return nil
	}
	return s.db.Create(&records).Error
}

func (s *gormStore) DeleteByItem(item string) error {
	return s.db.Where("item = ?", item).Delete(&models.AlternativeModel{}).Error
}

func (s *gormStore) CountByItem() (map[string]int64, error) {
	var rows []struct {
		Item  string
		Count int64
	}
	err := s.db.Model(&models.AlternativeModel{}).
		Select("item, COUNT(*) as count").
		Group("item").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Item] = r.Count
	}
	return counts, nil
}
