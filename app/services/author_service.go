package services

import (
	"newswire-backend/app/models"
	"newswire-backend/app/repository"
	"newswire-backend/internal/pkg/viewmodel"

	"github.com/go-playground/validator/v10"
)

// SortByNewsCount is the special sort key ordering authors by how many news
// articles they own.
const SortByNewsCount = "newsCount"

// AuthorService implements the author business rules on top of the repository.
type AuthorService struct {
	authors  repository.AuthorRepository
	validate *validator.Validate
}

// NewAuthorService creates a new author service instance
func NewAuthorService(authors repository.AuthorRepository) *AuthorService {
	return &AuthorService{authors: authors, validate: validator.New()}
}

// ReadAll returns a page of authors. The sort key "newsCount" orders by the
// count of associated news instead of a column.
func (s *AuthorService) ReadAll(params repository.ListParams) (viewmodel.Page[viewmodel.AuthorResponse], error) {
	var (
		authors []models.Author
		err     error
	)
	if params.SortField() == SortByNewsCount {
		authors, err = s.authors.ListByNewsCount(params)
	} else {
		authors, err = s.authors.List(params)
	}
	if err != nil {
		return viewmodel.Page[viewmodel.AuthorResponse]{}, translateListError(err)
	}
	total, err := s.authors.Count()
	if err != nil {
		return viewmodel.Page[viewmodel.AuthorResponse]{}, err
	}
	return viewmodel.NewPage(viewmodel.FromAuthors(authors), total, params.Page, params.Size), nil
}

// ReadByID returns a single author or a not-found error.
func (s *AuthorService) ReadByID(id uint64) (viewmodel.AuthorResponse, error) {
	author, err := s.authors.GetByID(id)
	if err != nil {
		if isRecordNotFound(err) {
			return viewmodel.AuthorResponse{}, notFoundf("author with id %d does not exist", id)
		}
		return viewmodel.AuthorResponse{}, err
	}
	return viewmodel.FromAuthor(author), nil
}

// ReadByNewsID returns the author owning the given news article.
func (s *AuthorService) ReadByNewsID(newsID uint64) (viewmodel.AuthorResponse, error) {
	author, err := s.authors.GetByNewsID(newsID)
	if err != nil {
		if isRecordNotFound(err) {
			return viewmodel.AuthorResponse{}, notFoundf("author for news id %d does not exist", newsID)
		}
		return viewmodel.AuthorResponse{}, err
	}
	return viewmodel.FromAuthor(author), nil
}

// Create validates the request and persists a new author with a unique name.
func (s *AuthorService) Create(req AuthorRequest) (viewmodel.AuthorResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return viewmodel.AuthorResponse{}, validationf("length of author's name must be between 3 and 15")
	}
	taken, err := s.authors.NameExists(req.Name)
	if err != nil {
		return viewmodel.AuthorResponse{}, err
	}
	if taken {
		return viewmodel.AuthorResponse{}, notUniquef("name of author is not unique")
	}
	author := &models.Author{Name: req.Name}
	if err := s.authors.Create(author); err != nil {
		if isDuplicatedKey(err) {
			return viewmodel.AuthorResponse{}, notUniquef("name of author is not unique")
		}
		return viewmodel.AuthorResponse{}, err
	}
	return viewmodel.FromAuthor(author), nil
}

// Update merges the non-blank fields of the request into the existing author.
func (s *AuthorService) Update(id uint64, req UpdateAuthorRequest) (viewmodel.AuthorResponse, error) {
	author, err := s.authors.GetByID(id)
	if err != nil {
		if isRecordNotFound(err) {
			return viewmodel.AuthorResponse{}, notFoundf("author with id %d does not exist", id)
		}
		return viewmodel.AuthorResponse{}, err
	}
	if req.Name != "" {
		if err := s.validate.Struct(req); err != nil {
			return viewmodel.AuthorResponse{}, validationf("length of author's name must be between 3 and 15")
		}
		taken, err := s.authors.NameExistsExceptID(req.Name, id)
		if err != nil {
			return viewmodel.AuthorResponse{}, err
		}
		if taken {
			return viewmodel.AuthorResponse{}, notUniquef("name of author is not unique")
		}
		author.Name = req.Name
	}
	if err := s.authors.Update(author); err != nil {
		if isDuplicatedKey(err) {
			return viewmodel.AuthorResponse{}, notUniquef("name of author is not unique")
		}
		return viewmodel.AuthorResponse{}, err
	}
	return viewmodel.FromAuthor(author), nil
}

// DeleteByID removes the author and cascades to their news and comments.
func (s *AuthorService) DeleteByID(id uint64) error {
	exists, err := s.authors.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return notFoundf("author with id %d does not exist", id)
	}
	return s.authors.Delete(id)
}
