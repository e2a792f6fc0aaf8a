package repository

import (
	"newswire-backend/app/models"

	"gorm.io/gorm"
)

// AuthorRepository defines the interface for author-related database operations
type AuthorRepository interface {
	Create(author *models.Author) error
	GetByID(id uint64) (*models.Author, error)
	GetByName(name string) (*models.Author, error)
	GetByNewsID(newsID uint64) (*models.Author, error)
	List(params ListParams) ([]models.Author, error)
	ListByNewsCount(params ListParams) ([]models.Author, error)
	Update(author *models.Author) error
	Delete(id uint64) error
	ExistsByID(id uint64) (bool, error)
	NameExists(name string) (bool, error)
	NameExistsExceptID(name string, id uint64) (bool, error)
	Count() (int64, error)
}

// NewsRepository defines the interface for news-related database operations
type NewsRepository interface {
	Create(news *models.News) error
	GetByID(id uint64) (*models.News, error)
	GetByTitle(title string) (*models.News, error)
	List(params ListParams) ([]models.News, error)
	Search(params NewsSearchParams) ([]models.News, error)
	Update(news *models.News) error
	Delete(id uint64) error
	ExistsByID(id uint64) (bool, error)
	TitleExists(title string) (bool, error)
	TitleExistsExceptID(title string, id uint64) (bool, error)
	Count() (int64, error)
}

// NewsSearchParams carries the optional criteria for the news search query.
// All provided criteria are combined with AND.
type NewsSearchParams struct {
	TagNames   []string
	TagIDs     []uint64
	AuthorName string
	Title      string
	Content    string
}

// TagRepository defines the interface for tag-related database operations
type TagRepository interface {
	Create(tag *models.Tag) error
	GetByID(id uint64) (*models.Tag, error)
	GetByName(name string) (*models.Tag, error)
	List(params ListParams) ([]models.Tag, error)
	ListByNewsID(newsID uint64) ([]models.Tag, error)
	Update(tag *models.Tag) error
	Delete(id uint64) error
	ExistsByID(id uint64) (bool, error)
	NameExists(name string) (bool, error)
	NameExistsExceptID(name string, id uint64) (bool, error)
	Count() (int64, error)
}

// CommentRepository defines the interface for comment-related database operations
type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id uint64) (*models.Comment, error)
	List(params ListParams) ([]models.Comment, error)
	ListByNewsID(newsID uint64) ([]models.Comment, error)
	Update(comment *models.Comment) error
	Delete(id uint64) error
	ExistsByID(id uint64) (bool, error)
	Count() (int64, error)
}

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint64) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	Update(user *models.User) error
	Delete(id uint64) error
	ExistsByUsername(username string) (bool, error)
	Count() (int64, error)
}

// Repositories holds all repository instances
type Repositories struct {
	Author  AuthorRepository
	News    NewsRepository
	Tag     TagRepository
	Comment CommentRepository
	User    UserRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Author:  NewAuthorRepository(db),
		News:    NewNewsRepository(db),
		Tag:     NewTagRepository(db),
		Comment: NewCommentRepository(db),
		User:    NewUserRepository(db),
	}
}
