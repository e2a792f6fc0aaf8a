package services

import (
	"encoding/json"
	"fmt"
	"time"

	"newswire-backend/app/models"
	"newswire-backend/app/repository"
	"newswire-backend/internal/pkg/viewmodel"

	"github.com/go-playground/validator/v10"
)

const newsCacheTTL = 5 * time.Minute

// Cache is the narrow cache surface the news service needs. A nil cache
// disables read-side caching.
type Cache interface {
	Set(key string, value interface{}, expiration time.Duration) error
	Get(key string) (string, error)
	Delete(key string) error
}

// NewsService implements the news business rules: validation, upsert of
// referenced authors and tags by name, title uniqueness and the search query.
type NewsService struct {
	news     repository.NewsRepository
	authors  repository.AuthorRepository
	tags     repository.TagRepository
	cache    Cache
	validate *validator.Validate
}

// NewNewsService creates a new news service instance
func NewNewsService(news repository.NewsRepository, authors repository.AuthorRepository, tags repository.TagRepository, cache Cache) *NewsService {
	return &NewsService{news: news, authors: authors, tags: tags, cache: cache, validate: validator.New()}
}

// ReadAll returns a page of news articles.
func (s *NewsService) ReadAll(params repository.ListParams) (viewmodel.Page[viewmodel.NewsResponse], error) {
	news, err := s.news.List(params)
	if err != nil {
		return viewmodel.Page[viewmodel.NewsResponse]{}, translateListError(err)
	}
	total, err := s.news.Count()
	if err != nil {
		return viewmodel.Page[viewmodel.NewsResponse]{}, err
	}
	return viewmodel.NewPage(viewmodel.FromNewsList(news), total, params.Page, params.Size), nil
}

// ReadByID returns a single news article with author, tags and comments.
// Hot reads are served from the cache when one is configured.
func (s *NewsService) ReadByID(id uint64) (viewmodel.NewsResponse, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(newsCacheKey(id)); err == nil && cached != "" {
			var news models.News
			if err := json.Unmarshal([]byte(cached), &news); err == nil {
				return viewmodel.FromNews(&news), nil
			}
		}
	}
	news, err := s.news.GetByID(id)
	if err != nil {
		if isRecordNotFound(err) {
			return viewmodel.NewsResponse{}, notFoundf("news with id %d does not exist", id)
		}
		return viewmodel.NewsResponse{}, err
	}
	if s.cache != nil {
		if payload, err := json.Marshal(news); err == nil {
			_ = s.cache.Set(newsCacheKey(id), payload, newsCacheTTL)
		}
	}
	return viewmodel.FromNews(news), nil
}

// Create validates the request, upserts the referenced author and tags by
// name, enforces title uniqueness and persists the article.
func (s *NewsService) Create(req NewsRequest) (viewmodel.NewsResponse, error) {
	if err := s.validateRequest(req); err != nil {
		return viewmodel.NewsResponse{}, err
	}
	author, err := s.resolveAuthor(req.AuthorName)
	if err != nil {
		return viewmodel.NewsResponse{}, err
	}
	tags, err := s.resolveTags(req.TagNames)
	if err != nil {
		return viewmodel.NewsResponse{}, err
	}
	taken, err := s.news.TitleExists(req.Title)
	if err != nil {
		return viewmodel.NewsResponse{}, err
	}
	if taken {
		return viewmodel.NewsResponse{}, notUniquef("title of news must be unique")
	}
	news := &models.News{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: author.ID,
		Tags:     tags,
	}
	if err := s.news.Create(news); err != nil {
		if isDuplicatedKey(err) {
			return viewmodel.NewsResponse{}, notUniquef("title of news must be unique")
		}
		return viewmodel.NewsResponse{}, err
	}
	created, err := s.news.GetByID(news.ID)
	if err != nil {
		return viewmodel.NewsResponse{}, err
	}
	return viewmodel.FromNews(created), nil
}

// Update replaces title, content, author and tags wholesale. The referenced
// author and tags are upserted the same way as on create; the title
// uniqueness check excludes the article being updated.
func (s *NewsService) Update(id uint64, req NewsRequest) (viewmodel.NewsResponse, error) {
	news, err := s.news.GetByID(id)
	if err != nil {
		if isRecordNotFound(err) {
			return viewmodel.NewsResponse{}, notFoundf("news with id %d does not exist", id)
		}
		return viewmodel.NewsResponse{}, err
	}
	if err := s.validateRequest(req); err != nil {
		return viewmodel.NewsResponse{}, err
	}
	author, err := s.resolveAuthor(req.AuthorName)
	if err != nil {
		return viewmodel.NewsResponse{}, err
	}
	tags, err := s.resolveTags(req.TagNames)
	if err != nil {
		return viewmodel.NewsResponse{}, err
	}
	taken, err := s.news.TitleExistsExceptID(req.Title, id)
	if err != nil {
		return viewmodel.NewsResponse{}, err
	}
	if taken {
		return viewmodel.NewsResponse{}, notUniquef("title of news must be unique")
	}
	// mutate the fetched row so create timestamps survive the save
	news.Title = req.Title
	news.Content = req.Content
	news.AuthorID = author.ID
	news.Tags = tags
	if err := s.news.Update(news); err != nil {
		if isDuplicatedKey(err) {
			return viewmodel.NewsResponse{}, notUniquef("title of news must be unique")
		}
		return viewmodel.NewsResponse{}, err
	}
	s.invalidate(id)
	updated, err := s.news.GetByID(id)
	if err != nil {
		return viewmodel.NewsResponse{}, err
	}
	return viewmodel.FromNews(updated), nil
}

// DeleteByID removes the article, its comments and its tag associations.
func (s *NewsService) DeleteByID(id uint64) error {
	exists, err := s.news.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return notFoundf("news with id %d does not exist", id)
	}
	if err := s.news.Delete(id); err != nil {
		return err
	}
	s.invalidate(id)
	return nil
}

// Search returns the news articles matching all provided criteria.
func (s *NewsService) Search(params repository.NewsSearchParams) ([]viewmodel.NewsResponse, error) {
	news, err := s.news.Search(params)
	if err != nil {
		return nil, err
	}
	return viewmodel.FromNewsList(news), nil
}

func (s *NewsService) validateRequest(req NewsRequest) error {
	if req.AuthorName == "" {
		return validationf("author name cannot be empty")
	}
	if len(req.TagNames) == 0 {
		return validationf("please specify tag names")
	}
	if err := s.validate.Struct(req); err != nil {
		return validationf("invalid news payload: %v", err)
	}
	return nil
}

// resolveAuthor finds the author by name, creating the row when absent.
func (s *NewsService) resolveAuthor(name string) (*models.Author, error) {
	author, err := s.authors.GetByName(name)
	if err == nil {
		return author, nil
	}
	if !isRecordNotFound(err) {
		return nil, err
	}
	author = &models.Author{Name: name}
	if err := s.authors.Create(author); err != nil {
		return nil, err
	}
	return author, nil
}

// resolveTags finds each tag by name, creating missing rows on the fly.
func (s *NewsService) resolveTags(names []string) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(names))
	for _, name := range names {
		tag, err := s.tags.GetByName(name)
		if err != nil {
			if !isRecordNotFound(err) {
				return nil, err
			}
			tag = &models.Tag{Name: name}
			if err := s.tags.Create(tag); err != nil {
				return nil, err
			}
		}
		tags = append(tags, *tag)
	}
	return tags, nil
}

func (s *NewsService) invalidate(id uint64) {
	if s.cache != nil {
		_ = s.cache.Delete(newsCacheKey(id))
	}
}

func newsCacheKey(id uint64) string {
	return fmt.Sprintf("news:%d", id)
}
