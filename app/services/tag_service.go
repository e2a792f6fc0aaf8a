package services

import (
	"newswire-backend/app/models"
	"newswire-backend/app/repository"
	"newswire-backend/internal/pkg/viewmodel"

	"github.com/go-playground/validator/v10"
)

// TagService implements the tag business rules on top of the repository.
type TagService struct {
	tags     repository.TagRepository
	validate *validator.Validate
}

// NewTagService creates a new tag service instance
func NewTagService(tags repository.TagRepository) *TagService {
	return &TagService{tags: tags, validate: validator.New()}
}

// ReadAll returns a page of tags.
func (s *TagService) ReadAll(params repository.ListParams) (viewmodel.Page[viewmodel.TagResponse], error) {
	tags, err := s.tags.List(params)
	if err != nil {
		return viewmodel.Page[viewmodel.TagResponse]{}, translateListError(err)
	}
	total, err := s.tags.Count()
	if err != nil {
		return viewmodel.Page[viewmodel.TagResponse]{}, err
	}
	return viewmodel.NewPage(viewmodel.FromTags(tags), total, params.Page, params.Size), nil
}

// ReadByID returns a single tag or a not-found error.
func (s *TagService) ReadByID(id uint64) (viewmodel.TagResponse, error) {
	tag, err := s.tags.GetByID(id)
	if err != nil {
		if isRecordNotFound(err) {
			return viewmodel.TagResponse{}, notFoundf("tag with id %d does not exist", id)
		}
		return viewmodel.TagResponse{}, err
	}
	return viewmodel.FromTag(tag), nil
}

// ReadListByNewsID returns the tags attached to a news article. The id is
// shape-checked before querying.
func (s *TagService) ReadListByNewsID(newsID int64) ([]viewmodel.TagResponse, error) {
	if newsID <= 0 {
		return nil, notFoundf("news with id %d does not exist", newsID)
	}
	tags, err := s.tags.ListByNewsID(uint64(newsID))
	if err != nil {
		return nil, notFoundf("tags for news id %d do not exist", newsID)
	}
	return viewmodel.FromTags(tags), nil
}

// Create validates the request and persists a new tag with a unique name.
func (s *TagService) Create(req TagRequest) (viewmodel.TagResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return viewmodel.TagResponse{}, validationf("length of tag's name must be between 3 and 15")
	}
	taken, err := s.tags.NameExists(req.Name)
	if err != nil {
		return viewmodel.TagResponse{}, err
	}
	if taken {
		return viewmodel.TagResponse{}, notUniquef("name of tag is not unique")
	}
	tag := &models.Tag{Name: req.Name}
	if err := s.tags.Create(tag); err != nil {
		if isDuplicatedKey(err) {
			return viewmodel.TagResponse{}, notUniquef("name of tag is not unique")
		}
		return viewmodel.TagResponse{}, err
	}
	return viewmodel.FromTag(tag), nil
}

// Update merges the non-blank fields of the request into the existing tag.
func (s *TagService) Update(id uint64, req UpdateTagRequest) (viewmodel.TagResponse, error) {
	tag, err := s.tags.GetByID(id)
	if err != nil {
		if isRecordNotFound(err) {
			return viewmodel.TagResponse{}, notFoundf("tag with id %d does not exist", id)
		}
		return viewmodel.TagResponse{}, err
	}
	if req.Name != "" {
		if err := s.validate.Struct(req); err != nil {
			return viewmodel.TagResponse{}, validationf("length of tag's name must be between 3 and 15")
		}
		taken, err := s.tags.NameExistsExceptID(req.Name, id)
		if err != nil {
			return viewmodel.TagResponse{}, err
		}
		if taken {
			return viewmodel.TagResponse{}, notUniquef("name of tag is not unique")
		}
		tag.Name = req.Name
	}
	if err := s.tags.Update(tag); err != nil {
		if isDuplicatedKey(err) {
			return viewmodel.TagResponse{}, notUniquef("name of tag is not unique")
		}
		return viewmodel.TagResponse{}, err
	}
	return viewmodel.FromTag(tag), nil
}

// DeleteByID removes the tag after detaching it from all news articles.
func (s *TagService) DeleteByID(id uint64) error {
	exists, err := s.tags.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return notFoundf("tag with id %d does not exist", id)
	}
	return s.tags.Delete(id)
}
