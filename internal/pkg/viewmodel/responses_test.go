package viewmodel

import (
	"testing"
	"time"

	"newswire-backend/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPageNeverReturnsNilItems(t *testing.T) {
	page := NewPage[AuthorResponse](nil, 0, 0, 10)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, 10, page.Size)
}

func TestFromAuthorFormatsDatesAsUTCRFC3339(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	author := &models.Author{
		ID:        4,
		Name:      "jdoe",
		CreatedAt: time.Date(2024, 3, 1, 13, 0, 0, 0, loc),
	}

	resp := FromAuthor(author)
	assert.Equal(t, "2024-03-01T12:00:00Z", resp.CreatedAt)
	assert.Equal(t, "/api/v1/authors/4", resp.Links["self"])
}

func TestFromNewsIncludesRelations(t *testing.T) {
	news := &models.News{
		ID:       7,
		Title:    "Budget passes",
		Content:  "The chamber approved the budget.",
		AuthorID: 4,
		Author:   models.Author{ID: 4, Name: "jdoe"},
		Tags:     []models.Tag{{ID: 1, Name: "politics"}},
		Comments: []models.Comment{{ID: 2, Content: "well written", NewsID: 7}},
	}

	resp := FromNews(news)
	require.NotNil(t, resp.Author)
	assert.Equal(t, "jdoe", resp.Author.Name)
	require.Len(t, resp.Tags, 1)
	require.Len(t, resp.Comments, 1)
	assert.Equal(t, "/api/v1/news/7", resp.Links["self"])
	assert.Equal(t, "/api/v1/news/7/tags", resp.Links["tags"])
}

func TestFromNewsOmitsUnloadedAuthor(t *testing.T) {
	resp := FromNews(&models.News{ID: 7, Title: "Budget passes"})
	assert.Nil(t, resp.Author)
	assert.NotNil(t, resp.Tags)
	assert.NotNil(t, resp.Comments)
}
