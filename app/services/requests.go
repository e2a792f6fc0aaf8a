package services

// AuthorRequest is the creatable shape of an author.
type AuthorRequest struct {
	Name string `json:"name" validate:"required,min=3,max=15"`
}

// UpdateAuthorRequest merges partially: a blank name keeps the current one.
type UpdateAuthorRequest struct {
	Name string `json:"name" validate:"omitempty,min=3,max=15"`
}

// TagRequest is the creatable shape of a tag.
type TagRequest struct {
	Name string `json:"name" validate:"required,min=3,max=15"`
}

// UpdateTagRequest merges partially: a blank name keeps the current one.
type UpdateTagRequest struct {
	Name string `json:"name" validate:"omitempty,min=3,max=15"`
}

// CommentRequest is the creatable shape of a comment.
type CommentRequest struct {
	Content string `json:"content" validate:"required,min=3,max=255"`
	NewsID  uint64 `json:"news_id" validate:"required"`
}

// UpdateCommentRequest merges partially: blank content keeps the current one.
type UpdateCommentRequest struct {
	Content string `json:"content" validate:"omitempty,min=3,max=255"`
}

// NewsRequest is the creatable/updatable shape of a news article. Updates
// replace title, content, author and tags wholesale. The referenced author
// and tags are created on the fly when no row with that name exists yet.
type NewsRequest struct {
	Title      string   `json:"title" validate:"required,min=5,max=30"`
	Content    string   `json:"content" validate:"required,min=5,max=255"`
	AuthorName string   `json:"author_name" validate:"required,min=3,max=15"`
	TagNames   []string `json:"tag_names" validate:"required,min=1,dive,min=3,max=15"`
}

// SignUpRequest carries registration credentials.
type SignUpRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=6"`
}

// SignInRequest carries login credentials.
type SignInRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
