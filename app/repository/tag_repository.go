package repository

import (
	"newswire-backend/app/models"

	"gorm.io/gorm"
)

// tagRepository implements the TagRepository interface
type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a new tag repository instance
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

// Create creates a new tag in the database
func (r *tagRepository) Create(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

// GetByID retrieves a tag by its ID
func (r *tagRepository) GetByID(id uint64) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.First(&tag, id).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// GetByName retrieves a tag by its exact name
func (r *tagRepository) GetByName(name string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Where("name = ?", name).First(&tag).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// List retrieves a paginated, sorted list of tags
func (r *tagRepository) List(params ListParams) ([]models.Tag, error) {
	order, err := orderClause(params, "id", "name", "created_at", "updated_at")
	if err != nil {
		return nil, err
	}
	var tags []models.Tag
	err = r.db.Order(order).Offset(params.Offset()).Limit(params.Size).Find(&tags).Error
	return tags, err
}

// ListByNewsID retrieves all tags attached to a news article
func (r *tagRepository) ListByNewsID(newsID uint64) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Joins("JOIN news_tags ON news_tags.tag_id = tags.id").
		Where("news_tags.news_id = ?", newsID).Find(&tags).Error
	return tags, err
}

// Update updates an existing tag in the database
func (r *tagRepository) Update(tag *models.Tag) error {
	return r.db.Save(tag).Error
}

// Delete removes a tag after detaching it from all news articles
func (r *tagRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM news_tags WHERE tag_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Tag{}, id).Error
	})
}

// ExistsByID checks whether a tag with the given ID exists
func (r *tagRepository) ExistsByID(id uint64) (bool, error) {
	var count int64
	err := r.db.Model(&models.Tag{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// NameExists checks if a tag name is already taken
func (r *tagRepository) NameExists(name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Tag{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

// NameExistsExceptID checks if a tag name exists excluding a specific ID
func (r *tagRepository) NameExistsExceptID(name string, id uint64) (bool, error) {
	var count int64
	err := r.db.Model(&models.Tag{}).Where("name = ? AND id != ?", name, id).Count(&count).Error
	return count > 0, err
}

// Count returns the total number of tags
func (r *tagRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Tag{}).Count(&count).Error
	return count, err
}
