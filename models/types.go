package models

import (
	"net/http"
	"time"
)

// DefaultArticleImgURL is applied at the handler boundary when an article
// is created without an image URL. Application-level default, not a
// database default.
const DefaultArticleImgURL = "https://images.pexels.com/photos/97050/pexels-photo-97050.jpeg?w=700&h=700"

// Request types

type CreateTopicRequest struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type CreateArticleRequest struct {
	Author        string `json:"author"`
	Title         string `json:"title"`
	Body          string `json:"body"`
	Topic         string `json:"topic"`
	ArticleImgURL string `json:"article_img_url"`
}

type CreateCommentRequest struct {
	Author string `json:"author"`
	Body   string `json:"body"`
}

// IncVotes is a pointer so a missing field is distinguishable from 0.
// Non-numeric values fail JSON decoding and surface as a 400.
type UpdateVotesRequest struct {
	IncVotes *int `json:"inc_votes"`
}

// Response types

type TopicsResponse struct {
	Topics []Topic `json:"topics"`
}

type TopicResponse struct {
	Topic Topic `json:"topic"`
}

type ArticlesResponse struct {
	Articles []ArticleSummary `json:"articles"`
}

type ArticleResponse struct {
	Article ArticleDetail `json:"article"`
}

type UpdatedArticleResponse struct {
	Article Article `json:"article"`
}

type CommentsResponse struct {
	Comments []Comment `json:"comments"`
}

type CommentResponse struct {
	Comment Comment `json:"comment"`
}

type UsersResponse struct {
	Users []User `json:"users"`
}

type UserResponse struct {
	User User `json:"user"`
}

// Domain types

type Topic struct {
	Slug        string `db:"slug" json:"slug"`
	Description string `db:"description" json:"description"`
}

type User struct {
	Username  string  `db:"username" json:"username"`
	Name      string  `db:"name" json:"name"`
	AvatarURL *string `db:"avatar_url" json:"avatar_url"`
}

type Article struct {
	ArticleID     int       `db:"article_id" json:"article_id"`
	Title         string    `db:"title" json:"title"`
	Topic         string    `db:"topic" json:"topic"`
	Author        string    `db:"author" json:"author"`
	Body          string    `db:"body" json:"body"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	Votes         int       `db:"votes" json:"votes"`
	ArticleImgURL *string   `db:"article_img_url" json:"article_img_url"`
}

// ArticleDetail is an article with its derived comment count. Used for
// single-article fetches and creation responses.
type ArticleDetail struct {
	Article
	CommentCount int `db:"comment_count" json:"comment_count"`
}

// ArticleSummary is a listing row: no body, with derived comment count.
type ArticleSummary struct {
	ArticleID     int       `db:"article_id" json:"article_id"`
	Title         string    `db:"title" json:"title"`
	Topic         string    `db:"topic" json:"topic"`
	Author        string    `db:"author" json:"author"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	Votes         int       `db:"votes" json:"votes"`
	ArticleImgURL *string   `db:"article_img_url" json:"article_img_url"`
	CommentCount  int       `db:"comment_count" json:"comment_count"`
}

type Comment struct {
	CommentID int       `db:"comment_id" json:"comment_id"`
	Body      string    `db:"body" json:"body"`
	ArticleID int       `db:"article_id" json:"article_id"`
	Author    string    `db:"author" json:"author"`
	Votes     int       `db:"votes" json:"votes"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Error types

// ErrorResponse is the uniform JSON error body.
type ErrorResponse struct {
	Msg string `json:"msg"`
}

// APIError is a tagged domain error carrying an HTTP status and message.
// Controllers pass these through verbatim; everything else becomes a 500.
type APIError struct {
	Status int
	Msg    string
}

func (e *APIError) Error() string {
	return e.Msg
}

// BadRequest returns a 400 APIError with the given message.
func BadRequest(msg string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Msg: msg}
}

// NotFound returns the uniform 404 APIError.
func NotFound() *APIError {
	return &APIError{Status: http.StatusNotFound, Msg: "Not found"}
}
