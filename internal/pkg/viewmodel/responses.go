package viewmodel

import (
	"time"

	"newswire-backend/app/models"
)

// AuthorResponse is the wire shape of an author.
type AuthorResponse struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	Links     Links  `json:"links"`
}

// TagResponse is the wire shape of a tag.
type TagResponse struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	Links     Links  `json:"links"`
}

// CommentResponse is the wire shape of a comment.
type CommentResponse struct {
	ID        uint64 `json:"id"`
	Content   string `json:"content"`
	NewsID    uint64 `json:"news_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	Links     Links  `json:"links"`
}

// NewsResponse is the wire shape of a news article with its relations.
type NewsResponse struct {
	ID        uint64            `json:"id"`
	Title     string            `json:"title"`
	Content   string            `json:"content"`
	Author    *AuthorResponse   `json:"author,omitempty"`
	Tags      []TagResponse     `json:"tags"`
	Comments  []CommentResponse `json:"comments"`
	CreatedAt string            `json:"created_at"`
	UpdatedAt string            `json:"updated_at"`
	Links     Links             `json:"links"`
}

// TokenResponse wraps an issued JWT.
type TokenResponse struct {
	Token string `json:"token"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// FromAuthor maps an author entity to its response shape.
func FromAuthor(a *models.Author) AuthorResponse {
	return AuthorResponse{
		ID:        a.ID,
		Name:      a.Name,
		CreatedAt: formatTime(a.CreatedAt),
		UpdatedAt: formatTime(a.UpdatedAt),
		Links:     authorLinks(a.ID),
	}
}

// FromAuthors maps a slice of author entities.
func FromAuthors(authors []models.Author) []AuthorResponse {
	out := make([]AuthorResponse, 0, len(authors))
	for i := range authors {
		out = append(out, FromAuthor(&authors[i]))
	}
	return out
}

// FromTag maps a tag entity to its response shape.
func FromTag(t *models.Tag) TagResponse {
	return TagResponse{
		ID:        t.ID,
		Name:      t.Name,
		CreatedAt: formatTime(t.CreatedAt),
		UpdatedAt: formatTime(t.UpdatedAt),
		Links:     tagLinks(t.ID),
	}
}

// FromTags maps a slice of tag entities.
func FromTags(tags []models.Tag) []TagResponse {
	out := make([]TagResponse, 0, len(tags))
	for i := range tags {
		out = append(out, FromTag(&tags[i]))
	}
	return out
}

// FromComment maps a comment entity to its response shape.
func FromComment(c *models.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		Content:   c.Content,
		NewsID:    c.NewsID,
		CreatedAt: formatTime(c.CreatedAt),
		UpdatedAt: formatTime(c.UpdatedAt),
		Links:     commentLinks(c.ID, c.NewsID),
	}
}

// FromComments maps a slice of comment entities.
func FromComments(comments []models.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, FromComment(&comments[i]))
	}
	return out
}

// FromNews maps a news entity with its preloaded relations.
func FromNews(n *models.News) NewsResponse {
	resp := NewsResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		Tags:      FromTags(n.Tags),
		Comments:  FromComments(n.Comments),
		CreatedAt: formatTime(n.CreatedAt),
		UpdatedAt: formatTime(n.UpdatedAt),
		Links:     newsLinks(n.ID),
	}
	if n.Author.ID != 0 {
		author := FromAuthor(&n.Author)
		resp.Author = &author
	}
	return resp
}

// FromNewsList maps a slice of news entities.
func FromNewsList(news []models.News) []NewsResponse {
	out := make([]NewsResponse, 0, len(news))
	for i := range news {
		out = append(out, FromNews(&news[i]))
	}
	return out
}
