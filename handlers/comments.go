// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"

	"github.com/danielhkuo/newsboard/cliparse"
	"github.com/danielhkuo/newsboard/middleware"
	"github.com/danielhkuo/newsboard/models"
)

type CommentHandler struct {
	db  *sqlx.DB
	cfg cliparse.Config
}

func NewCommentHandler(db *sqlx.DB, cfg cliparse.Config) *CommentHandler {
	return &CommentHandler{db: db, cfg: cfg}
}

// ListArticleComments handles GET /api/articles/{article_id}/comments
// Comments are returned newest first.
func (h *CommentHandler) ListArticleComments(w http.ResponseWriter, r *http.Request) {
	articleID, err := strconv.Atoi(r.PathValue("article_id"))
	if err != nil {
		middleware.HandleError(w, models.BadRequest("Bad request"))
		return
	}

	// The article existence check distinguishes "no comments yet" from
	// "no such article"; run it concurrently with the listing.
	var comments []models.Comment

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
		return h.db.Select(&comments, `
			SELECT comment_id, body, article_id, author, votes, created_at
			FROM comments
			WHERE article_id = $1
			ORDER BY created_at DESC`, articleID)
	})
	if err := g.Wait(); err != nil {
		middleware.HandleError(w, err)
		return
	}

	if comments == nil {
		comments = []models.Comment{}
	}

	middleware.JSONResponse(w, http.StatusOK, models.CommentsResponse{Comments: comments})
}

// CreateArticleComment handles POST /api/articles/{article_id}/comments
func (h *CommentHandler) CreateArticleComment(w http.ResponseWriter, r *http.Request) {
	articleID, err := strconv.Atoi(r.PathValue("article_id"))
	if err != nil {
		middleware.HandleError(w, models.BadRequest("Bad request"))
		return
	}

	var req models.CreateCommentRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.HandleError(w, models.BadRequest("Bad request"))
		return
	}

	// Validation happens before any I/O
	if req.Author == "" || req.Body == "" {
		middleware.HandleError(w, models.BadRequest("Missing required fields"))
		return
	}

	// Article existence check runs concurrently with the insert. An
	// unknown author surfaces as a foreign-key violation and is
	// translated to a 404.
	var comment models.Comment

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
		return h.db.Get(&comment, `
			INSERT INTO comments (article_id, author, body)
			VALUES ($1, $2, $3)
			RETURNING comment_id, body, article_id, author, votes, created_at`,
			articleID, req.Author, req.Body)
	})
	if err := g.Wait(); err != nil {
		middleware.HandleError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CommentResponse{Comment: comment})
}

// DeleteComment handles DELETE /api/comments/{comment_id}
// Zero rows affected is the not-found signal; no separate existence check.
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	commentID, err := strconv.Atoi(r.PathValue("comment_id"))
	if err != nil {
		middleware.HandleError(w, models.BadRequest("Bad request"))
		return
	}

	result, err := h.db.Exec(`DELETE FROM comments WHERE comment_id = $1`, commentID)
	if err != nil {
		middleware.HandleError(w, err)
		return
	}

	affected, err := result.RowsAffected()
	if err != nil {
		middleware.HandleError(w, err)
		return
	}
	if affected == 0 {
		middleware.HandleError(w, models.NotFound())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpdateCommentVotes handles PATCH /api/comments/{comment_id}
func (h *CommentHandler) UpdateCommentVotes(w http.ResponseWriter, r *http.Request) {
	commentID, err := strconv.Atoi(r.PathValue("comment_id"))
	if err != nil {
		middleware.HandleError(w, models.BadRequest("Bad request"))
		return
	}

	var req models.UpdateVotesRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil || req.IncVotes == nil {
		middleware.HandleError(w, models.BadRequest("Bad request"))
		return
	}

	var comment models.Comment

	g := new(errgroup.Group)
	g.Go(func() error {
		var exists bool
		if err := h.db.Get(&exists,
			`SELECT EXISTS(SELECT 1 FROM comments WHERE comment_id = $1)`, commentID); err != nil {
			return err
		}
		if !exists {
			return models.NotFound()
		}
		return nil
	})
	g.Go(func() error {
		err := h.db.Get(&comment, `
			UPDATE comments
			SET votes = votes + $2
			WHERE comment_id = $1
			RETURNING comment_id, body, article_id, author, votes, created_at`,
			commentID, *req.IncVotes)
		if errors.Is(err, sql.ErrNoRows) {
			return models.NotFound()
		}
		return err
	})
	if err := g.Wait(); err != nil {
		middleware.HandleError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CommentResponse{Comment: comment})
}
