package services

import (
	"testing"

	"newswire-backend/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCommentServiceCreate(t *testing.T) {
	comments := new(mockCommentRepo)
	news := new(mockNewsRepo)
	news.On("ExistsByID", uint64(8)).Return(true, nil)
	comments.On("Create", mock.AnythingOfType("*models.Comment")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Comment).ID = 1
	}).Return(nil)

	svc := NewCommentService(comments, news)
	comment, err := svc.Create(CommentRequest{Content: "well written", NewsID: 8})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), comment.ID)
	assert.Equal(t, uint64(8), comment.NewsID)
}

func TestCommentServiceCreateMissingNews(t *testing.T) {
	comments := new(mockCommentRepo)
	news := new(mockNewsRepo)
	news.On("ExistsByID", uint64(8)).Return(false, nil)

	svc := NewCommentService(comments, news)
	_, err := svc.Create(CommentRequest{Content: "well written", NewsID: 8})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "news with id 8 does not exist")
	comments.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCommentServiceCreateRejectsShortContent(t *testing.T) {
	comments := new(mockCommentRepo)
	news := new(mockNewsRepo)

	svc := NewCommentService(comments, news)
	_, err := svc.Create(CommentRequest{Content: "no", NewsID: 8})
	assert.ErrorIs(t, err, ErrValidation)
	news.AssertNotCalled(t, "ExistsByID", mock.Anything)
}

func TestCommentServiceUpdateKeepsContentWhenBlank(t *testing.T) {
	comments := new(mockCommentRepo)
	news := new(mockNewsRepo)
	comments.On("GetByID", uint64(2)).Return(&models.Comment{ID: 2, Content: "original", NewsID: 8}, nil)
	comments.On("Update", mock.AnythingOfType("*models.Comment")).Return(nil)

	svc := NewCommentService(comments, news)
	comment, err := svc.Update(2, UpdateCommentRequest{})
	require.NoError(t, err)
	assert.Equal(t, "original", comment.Content)
}

func TestCommentServiceUpdateNotFound(t *testing.T) {
	comments := new(mockCommentRepo)
	news := new(mockNewsRepo)
	comments.On("GetByID", uint64(2)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewCommentService(comments, news)
	_, err := svc.Update(2, UpdateCommentRequest{Content: "changed"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCommentServiceReadListByNewsIDRejectsNonPositiveID(t *testing.T) {
	comments := new(mockCommentRepo)
	news := new(mockNewsRepo)

	svc := NewCommentService(comments, news)
	_, err := svc.ReadListByNewsID(-1)
	assert.ErrorIs(t, err, ErrNotFound)
	comments.AssertNotCalled(t, "ListByNewsID", mock.Anything)
}

func TestCommentServiceDeleteUnknownID(t *testing.T) {
	comments := new(mockCommentRepo)
	news := new(mockNewsRepo)
	comments.On("ExistsByID", uint64(11)).Return(false, nil)

	svc := NewCommentService(comments, news)
	assert.ErrorIs(t, svc.DeleteByID(11), ErrNotFound)
}
