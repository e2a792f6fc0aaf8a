package repository

import (
	"newswire-backend/app/models"

	"gorm.io/gorm"
)

// newsRepository implements the NewsRepository interface
type newsRepository struct {
	db *gorm.DB
}

// NewNewsRepository creates a new news repository instance
func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

// Create creates a new news article in the database
func (r *newsRepository) Create(news *models.News) error {
	return r.db.Create(news).Error
}

// GetByID retrieves a news article by its ID with author, tags and comments
func (r *newsRepository) GetByID(id uint64) (*models.News, error) {
	var news models.News
	err := r.db.Preload("Author").Preload("Tags").Preload("Comments").First(&news, id).Error
	if err != nil {
		return nil, err
	}
	return &news, nil
}

// GetByTitle retrieves a news article by its exact title
func (r *newsRepository) GetByTitle(title string) (*models.News, error) {
	var news models.News
	err := r.db.Preload("Author").Preload("Tags").Where("title = ?", title).First(&news).Error
	if err != nil {
		return nil, err
	}
	return &news, nil
}

// List retrieves a paginated, sorted list of news articles
func (r *newsRepository) List(params ListParams) ([]models.News, error) {
	order, err := orderClause(params, "id", "title", "content", "author_id", "created_at", "updated_at")
	if err != nil {
		return nil, err
	}
	var news []models.News
	err = r.db.Preload("Author").Preload("Tags").
		Order(order).Offset(params.Offset()).Limit(params.Size).Find(&news).Error
	return news, err
}

// Search retrieves news articles matching all provided criteria.
// Criteria are combined with AND; absent criteria are skipped.
func (r *newsRepository) Search(params NewsSearchParams) ([]models.News, error) {
	q := r.db.Model(&models.News{}).Preload("Author").Preload("Tags").Distinct("news.*")
	if len(params.TagNames) > 0 {
		q = q.Joins("JOIN news_tags nt_name ON nt_name.news_id = news.id").
			Joins("JOIN tags t_name ON t_name.id = nt_name.tag_id").
			Where("t_name.name IN ?", params.TagNames)
	}
	if len(params.TagIDs) > 0 {
		q = q.Joins("JOIN news_tags nt_id ON nt_id.news_id = news.id").
			Where("nt_id.tag_id IN ?", params.TagIDs)
	}
	if params.AuthorName != "" {
		q = q.Joins("JOIN authors ON authors.id = news.author_id").
			Where("authors.name = ?", params.AuthorName)
	}
	if params.Title != "" {
		q = q.Where("news.title LIKE ?", "%"+params.Title+"%")
	}
	if params.Content != "" {
		q = q.Where("news.content LIKE ?", "%"+params.Content+"%")
	}
	var news []models.News
	err := q.Order("news.created_at DESC").Find(&news).Error
	return news, err
}

// Update persists the news row and replaces its tag associations wholesale
func (r *newsRepository) Update(news *models.News) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(news).Association("Tags").Replace(news.Tags); err != nil {
			return err
		}
		return tx.Omit("Tags", "Author", "Comments", "CreatedAt").Save(news).Error
	})
}

// Delete removes a news article, its comments and its tag join rows
func (r *newsRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		news := models.News{ID: id}
		if err := tx.Model(&news).Association("Tags").Clear(); err != nil {
			return err
		}
		if err := tx.Where("news_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&news).Error
	})
}

// ExistsByID checks whether a news article with the given ID exists
func (r *newsRepository) ExistsByID(id uint64) (bool, error) {
	var count int64
	err := r.db.Model(&models.News{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// TitleExists checks if a title already exists
func (r *newsRepository) TitleExists(title string) (bool, error) {
	var count int64
	err := r.db.Model(&models.News{}).Where("title = ?", title).Count(&count).Error
	return count > 0, err
}

// TitleExistsExceptID checks if a title exists excluding a specific ID
func (r *newsRepository) TitleExistsExceptID(title string, id uint64) (bool, error) {
	var count int64
	err := r.db.Model(&models.News{}).Where("title = ? AND id != ?", title, id).Count(&count).Error
	return count > 0, err
}

// Count returns the total number of news articles
func (r *newsRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.News{}).Count(&count).Error
	return count, err
}
