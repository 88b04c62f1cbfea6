// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/newsboard/cliparse"
	"github.com/danielhkuo/newsboard/middleware"
	"github.com/danielhkuo/newsboard/models"
)

type TopicHandler struct {
	db  *sqlx.DB
	cfg cliparse.Config
}

func NewTopicHandler(db *sqlx.DB, cfg cliparse.Config) *TopicHandler {
	return &TopicHandler{db: db, cfg: cfg}
}

// GetTopics handles GET /api/topics
func (h *TopicHandler) GetTopics(w http.ResponseWriter, r *http.Request) {
	var topics []models.Topic
	if err := h.db.Select(&topics, `SELECT slug, description FROM topics`); err != nil {
		middleware.HandleError(w, err)
		return
	}

	if topics == nil {
		topics = []models.Topic{}
	}

	middleware.JSONResponse(w, http.StatusOK, models.TopicsResponse{Topics: topics})
}

// CreateTopic handles POST /api/topics
// A duplicate slug surfaces as a unique violation and is translated to a
// 400, matching the rest of the bad-input responses.
func (h *TopicHandler) CreateTopic(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTopicRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.HandleError(w, models.BadRequest("Bad request"))
		return
	}

	if req.Slug == "" || req.Description == "" {
		middleware.HandleError(w, models.BadRequest("Bad request"))
		return
	}

	var topic models.Topic
	err := h.db.Get(&topic, `
		INSERT INTO topics (slug, description)
		VALUES ($1, $2)
		RETURNING slug, description`, req.Slug, req.Description)
	if err != nil {
		middleware.HandleError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.TopicResponse{Topic: topic})
}
