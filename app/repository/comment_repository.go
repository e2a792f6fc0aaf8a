package repository

import (
	"newswire-backend/app/models"

	"gorm.io/gorm"
)

// commentRepository implements the CommentRepository interface
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository instance
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create creates a new comment in the database
func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// GetByID retrieves a comment by its ID
func (r *commentRepository) GetByID(id uint64) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.First(&comment, id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// List retrieves a paginated, sorted list of comments
func (r *commentRepository) List(params ListParams) ([]models.Comment, error) {
	order, err := orderClause(params, "id", "content", "news_id", "created_at", "updated_at")
	if err != nil {
		return nil, err
	}
	var comments []models.Comment
	err = r.db.Order(order).Offset(params.Offset()).Limit(params.Size).Find(&comments).Error
	return comments, err
}

// ListByNewsID retrieves all comments attached to a news article
func (r *commentRepository) ListByNewsID(newsID uint64) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("news_id = ?", newsID).Order("created_at DESC").Find(&comments).Error
	return comments, err
}

// Update updates an existing comment in the database
func (r *commentRepository) Update(comment *models.Comment) error {
	return r.db.Save(comment).Error
}

// Delete removes a comment by its ID
func (r *commentRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Comment{}, id).Error
}

// ExistsByID checks whether a comment with the given ID exists
func (r *commentRepository) ExistsByID(id uint64) (bool, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Count returns the total number of comments
func (r *commentRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).Count(&count).Error
	return count, err
}
