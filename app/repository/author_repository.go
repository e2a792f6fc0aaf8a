package repository

import (
	"newswire-backend/app/models"

	"gorm.io/gorm"
)

// authorRepository implements the AuthorRepository interface
type authorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository creates a new author repository instance
func NewAuthorRepository(db *gorm.DB) AuthorRepository {
	return &authorRepository{db: db}
}

// Create creates a new author in the database
func (r *authorRepository) Create(author *models.Author) error {
	return r.db.Create(author).Error
}

// GetByID retrieves an author by their ID
func (r *authorRepository) GetByID(id uint64) (*models.Author, error) {
	var author models.Author
	err := r.db.First(&author, id).Error
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// GetByName retrieves an author by their exact name
func (r *authorRepository) GetByName(name string) (*models.Author, error) {
	var author models.Author
	err := r.db.Where("name = ?", name).First(&author).Error
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// GetByNewsID retrieves the author owning the news article with the given ID
func (r *authorRepository) GetByNewsID(newsID uint64) (*models.Author, error) {
	var author models.Author
	err := r.db.Joins("JOIN news ON news.author_id = authors.id").
		Where("news.id = ?", newsID).First(&author).Error
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// List retrieves a paginated, sorted list of authors
func (r *authorRepository) List(params ListParams) ([]models.Author, error) {
	order, err := orderClause(params, "id", "name", "created_at", "updated_at")
	if err != nil {
		return nil, err
	}
	var authors []models.Author
	err = r.db.Order(order).Offset(params.Offset()).Limit(params.Size).Find(&authors).Error
	return authors, err
}

// ListByNewsCount retrieves authors ordered by the number of news they own
func (r *authorRepository) ListByNewsCount(params ListParams) ([]models.Author, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	dir := "DESC"
	if params.Ascending() {
		dir = "ASC"
	}
	var authors []models.Author
	err := r.db.Model(&models.Author{}).
		Joins("LEFT JOIN news ON news.author_id = authors.id").
		Group("authors.id").
		Order("COUNT(news.id) " + dir).
		Offset(params.Offset()).Limit(params.Size).
		Find(&authors).Error
	return authors, err
}

// Update updates an existing author in the database
func (r *authorRepository) Update(author *models.Author) error {
	return r.db.Save(author).Error
}

// Delete removes an author and cascades to their news, the news comments and
// the news/tag join rows.
func (r *authorRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var newsIDs []uint64
		if err := tx.Model(&models.News{}).Where("author_id = ?", id).Pluck("id", &newsIDs).Error; err != nil {
			return err
		}
		if len(newsIDs) > 0 {
			if err := tx.Where("news_id IN ?", newsIDs).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
			if err := tx.Exec("DELETE FROM news_tags WHERE news_id IN ?", newsIDs).Error; err != nil {
				return err
			}
			if err := tx.Delete(&models.News{}, newsIDs).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Author{}, id).Error
	})
}

// ExistsByID checks whether an author with the given ID exists
func (r *authorRepository) ExistsByID(id uint64) (bool, error) {
	var count int64
	err := r.db.Model(&models.Author{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// NameExists checks if an author name is already taken
func (r *authorRepository) NameExists(name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Author{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

// NameExistsExceptID checks if an author name exists excluding a specific ID
func (r *authorRepository) NameExistsExceptID(name string, id uint64) (bool, error) {
	var count int64
	err := r.db.Model(&models.Author{}).Where("name = ? AND id != ?", name, id).Count(&count).Error
	return count > 0, err
}

// Count returns the total number of authors
func (r *authorRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Author{}).Count(&count).Error
	return count, err
}
