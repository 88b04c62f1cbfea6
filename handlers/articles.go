// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"

	"github.com/danielhkuo/newsboard/cliparse"
	"github.com/danielhkuo/newsboard/middleware"
	"github.com/danielhkuo/newsboard/models"
)

type ArticleHandler struct {
	db  *sqlx.DB
	cfg cliparse.Config
}

func NewArticleHandler(db *sqlx.DB, cfg cliparse.Config) *ArticleHandler {
	return &ArticleHandler{db: db, cfg: cfg}
}

// articleSortColumns maps each whitelisted sort_by value to the ORDER BY
// expression used for it. User input never reaches the query text directly;
// anything not in this table is rejected up front.
var articleSortColumns = map[string]string{
	"article_id":    "articles.article_id",
	"author":        "articles.author",
	"title":         "articles.title",
	"topic":         "articles.topic",
	"created_at":    "articles.created_at",
	"votes":         "articles.votes",
	"comment_count": "comment_count",
}

// articleListOptions is the typed form of the listing query parameters,
// produced by validation before any SQL is built.
type articleListOptions struct {
	SortBy string
	Order  string
	Topic  string
}

// parseArticleListOptions validates sort_by and order against fixed
// whitelists. Defaults: created_at DESC. Order is case-insensitive.
func parseArticleListOptions(r *http.Request) (articleListOptions, error) {
	opts := articleListOptions{
		SortBy: "created_at",
		Order:  "DESC",
		Topic:  r.URL.Query().Get("topic"),
	}

	if sortBy := r.URL.Query().Get("sort_by"); sortBy != "" {
		opts.SortBy = sortBy
	}
	if order := r.URL.Query().Get("order"); order != "" {
		opts.Order = strings.ToUpper(order)
	}

	if _, ok := articleSortColumns[opts.SortBy]; !ok {
		return articleListOptions{}, models.BadRequest("Bad request")
	}
	if opts.Order != "ASC" && opts.Order != "DESC" {
		return articleListOptions{}, models.BadRequest("Bad request")
	}

	return opts, nil
}

// ListArticles handles GET /api/articles
// Supports sort_by, order, and topic query parameters. Listing rows omit
// the article body and carry a derived comment_count.
func (h *ArticleHandler) ListArticles(w http.ResponseWriter, r *http.Request) {
	opts, err := parseArticleListOptions(r)
	if err != nil {
		middleware.HandleError(w, err)
		return
	}

	query := `
		SELECT articles.article_id, articles.title, articles.topic, articles.author,
		       articles.created_at, articles.votes, articles.article_img_url,
		       COUNT(comments.comment_id)::INT AS comment_count
		FROM articles
		LEFT JOIN comments ON comments.article_id = articles.article_id`

	args := []interface{}{}
	if opts.Topic != "" {
		query += `
		WHERE articles.topic = $1`
		args = append(args, opts.Topic)
	}

	query += `
		GROUP BY articles.article_id
		ORDER BY ` + articleSortColumns[opts.SortBy] + ` ` + opts.Order

	// The listing query and the topic existence check are independent;
	// run them concurrently and combine afterwards.
	var articles []models.ArticleSummary
	topicExists := true

	g := new(errgroup.Group)
	g.Go(func() error {
		return h.db.Select(&articles, query, args...)
	})
	if opts.Topic != "" {
		g.Go(func() error {
			return h.db.Get(&topicExists,
				`SELECT EXISTS(SELECT 1 FROM topics WHERE slug = $1)`, opts.Topic)
		})
	}
	if err := g.Wait(); err != nil {
		middleware.HandleError(w, err)
		return
	}

	// An empty result is only an error when the filter names a topic that
	// does not exist. A real topic with no articles returns an empty list.
	if len(articles) == 0 && opts.Topic != "" && !topicExists {
		middleware.HandleError(w, models.NotFound())
		return
	}

	if articles == nil {
		articles = []models.ArticleSummary{}
	}

	middleware.JSONResponse(w, http.StatusOK, models.ArticlesResponse{Articles: articles})
}

// GetArticle handles GET /api/articles/{article_id}
// Single-article fetches include the body and the derived comment_count.
func (h *ArticleHandler) GetArticle(w http.ResponseWriter, r *http.Request) {
	articleID, err := strconv.Atoi(r.PathValue("article_id"))
	if err != nil {
		middleware.HandleError(w, models.BadRequest("Bad request"))
		return
	}

	var article models.ArticleDetail
	err = h.db.Get(&article, `
		SELECT articles.article_id, articles.title, articles.topic, articles.author,
		       articles.body, articles.created_at, articles.votes, articles.article_img_url,
		       COUNT(comments.comment_id)::INT AS comment_count
		FROM articles
		LEFT JOIN comments ON comments.article_id = articles.article_id
		WHERE articles.article_id = $1
		GROUP BY articles.article_id`, articleID)

	if errors.Is(err, sql.ErrNoRows) {
		middleware.HandleError(w, models.NotFound())
		return
	}
	if err != nil {
		middleware.HandleError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ArticleResponse{Article: article})
}

// CreateArticle handles POST /api/articles
func (h *ArticleHandler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateArticleRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.HandleError(w, models.BadRequest("Bad request"))
		return
	}

	if req.Author == "" || req.Title == "" || req.Body == "" || req.Topic == "" {
		middleware.HandleError(w, models.BadRequest("Bad request"))
		return
	}

	imgURL := req.ArticleImgURL
	if imgURL == "" {
		imgURL = models.DefaultArticleImgURL
	}

	// Author and topic existence checks run concurrently with the insert.
	// The store's foreign keys would reject the row anyway; the checks
	// turn that into a clean 404.
	var article models.Article

	g := new(errgroup.Group)
	g.Go(func() error {
		var exists bool
		if err := h.db.Get(&exists,
			`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, req.Author); err != nil {
			return err
		}
		if !exists {
			return models.NotFound()
		}
		return nil
	})
	g.Go(func() error {
		var exists bool
		if err := h.db.Get(&exists,
			`SELECT EXISTS(SELECT 1 FROM topics WHERE slug = $1)`, req.Topic); err != nil {
			return err
		}
		if !exists {
			return models.NotFound()
		}
		return nil
	})
	g.Go(func() error {
		return h.db.Get(&article, `
			INSERT INTO articles (author, title, body, topic, article_img_url)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING article_id, title, topic, author, body, created_at, votes, article_img_url`,
			req.Author, req.Title, req.Body, req.Topic, imgURL)
	})
	if err := g.Wait(); err != nil {
		middleware.HandleError(w, err)
		return
	}

	// A fresh article has no comments yet
	middleware.JSONResponse(w, http.StatusCreated, models.ArticleResponse{
		Article: models.ArticleDetail{Article: article, CommentCount: 0},
	})
}

// UpdateArticleVotes handles PATCH /api/articles/{article_id}
// Votes mutate only via relative increment, never absolute set.
func (h *ArticleHandler) UpdateArticleVotes(w http.ResponseWriter, r *http.Request) {
	articleID, err := strconv.Atoi(r.PathValue("article_id"))
	if err != nil {
		middleware.HandleError(w, models.BadRequest("Bad request"))
		return
	}

	var req models.UpdateVotesRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil || req.IncVotes == nil {
		middleware.HandleError(w, models.BadRequest("Bad request"))
		return
	}

	// Existence check and increment run concurrently; either one reports
	// the missing article as a 404.
	var article models.Article

	g := new(errgroup.Group)
	g.Go(func() error {
		var exists bool
		if err := h.db.Get(&exists,
			`SELECT EXISTS(SELECT 1 FROM articles WHERE article_id = $1)`, articleID); err != nil {
			return err
		}
		if !exists {
			return models.NotFound()
		}
		return nil
	})
	g.Go(func() error {
		err := h.db.Get(&article, `
			UPDATE articles
			SET votes = votes + $2
			WHERE article_id = $1
			RETURNING article_id, title, topic, author, body, created_at, votes, article_img_url`,
			articleID, *req.IncVotes)
		if errors.Is(err, sql.ErrNoRows) {
			return models.NotFound()
		}
		return err
	})
	if err := g.Wait(); err != nil {
		middleware.HandleError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.UpdatedArticleResponse{Article: article})
}
