package services

import (
	"newswire-backend/app/models"
	"newswire-backend/app/repository"
	"newswire-backend/internal/pkg/viewmodel"

	"github.com/go-playground/validator/v10"
)

// CommentService implements the comment business rules on top of the repository.
type CommentService struct {
	comments repository.CommentRepository
	news     repository.NewsRepository
	validate *validator.Validate
}

// NewCommentService creates a new comment service instance
func NewCommentService(comments repository.CommentRepository, news repository.NewsRepository) *CommentService {
	return &CommentService{comments: comments, news: news, validate: validator.New()}
}

// ReadAll returns a page of comments.
func (s *CommentService) ReadAll(params repository.ListParams) (viewmodel.Page[viewmodel.CommentResponse], error) {
	comments, err := s.comments.List(params)
	if err != nil {
		return viewmodel.Page[viewmodel.CommentResponse]{}, translateListError(err)
	}
	total, err := s.comments.Count()
	if err != nil {
		return viewmodel.Page[viewmodel.CommentResponse]{}, err
	}
	return viewmodel.NewPage(viewmodel.FromComments(comments), total, params.Page, params.Size), nil
}

// ReadByID returns a single comment or a not-found error.
func (s *CommentService) ReadByID(id uint64) (viewmodel.CommentResponse, error) {
	comment, err := s.comments.GetByID(id)
	if err != nil {
		if isRecordNotFound(err) {
			return viewmodel.CommentResponse{}, notFoundf("comment with id %d does not exist", id)
		}
		return viewmodel.CommentResponse{}, err
	}
	return viewmodel.FromComment(comment), nil
}

// ReadListByNewsID returns the comments attached to a news article. The id is
// shape-checked before querying.
func (s *CommentService) ReadListByNewsID(newsID int64) ([]viewmodel.CommentResponse, error) {
	if newsID <= 0 {
		return nil, notFoundf("news with id %d does not exist", newsID)
	}
	comments, err := s.comments.ListByNewsID(uint64(newsID))
	if err != nil {
		return nil, notFoundf("comments for news id %d do not exist", newsID)
	}
	return viewmodel.FromComments(comments), nil
}

// Create validates the request, resolves the referenced news article and
// persists the comment. A missing news article is a not-found error, never a
// blind dereference.
func (s *CommentService) Create(req CommentRequest) (viewmodel.CommentResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return viewmodel.CommentResponse{}, validationf("length of comment's content must be between 3 and 255")
	}
	exists, err := s.news.ExistsByID(req.NewsID)
	if err != nil {
		return viewmodel.CommentResponse{}, err
	}
	if !exists {
		return viewmodel.CommentResponse{}, notFoundf("news with id %d does not exist", req.NewsID)
	}
	comment := &models.Comment{Content: req.Content, NewsID: req.NewsID}
	if err := s.comments.Create(comment); err != nil {
		return viewmodel.CommentResponse{}, err
	}
	return viewmodel.FromComment(comment), nil
}

// Update merges the non-blank fields of the request into the existing comment.
func (s *CommentService) Update(id uint64, req UpdateCommentRequest) (viewmodel.CommentResponse, error) {
	comment, err := s.comments.GetByID(id)
	if err != nil {
		if isRecordNotFound(err) {
			return viewmodel.CommentResponse{}, notFoundf("comment with id %d does not exist", id)
		}
		return viewmodel.CommentResponse{}, err
	}
	if req.Content != "" {
		if err := s.validate.Struct(req); err != nil {
			return viewmodel.CommentResponse{}, validationf("length of comment's content must be between 3 and 255")
		}
		comment.Content = req.Content
	}
	if err := s.comments.Update(comment); err != nil {
		return viewmodel.CommentResponse{}, err
	}
	return viewmodel.FromComment(comment), nil
}

// DeleteByID removes the comment.
func (s *CommentService) DeleteByID(id uint64) error {
	exists, err := s.comments.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return notFoundf("comment with id %d does not exist", id)
	}
	return s.comments.Delete(id)
}
