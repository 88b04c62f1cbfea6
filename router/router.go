// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/newsboard/cliparse"
	"github.com/danielhkuo/newsboard/handlers"
	"github.com/danielhkuo/newsboard/middleware"
)

func NewRouter(db *sqlx.DB, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	topicHandler := handlers.NewTopicHandler(db, cfg)
	articleHandler := handlers.NewArticleHandler(db, cfg)
	commentHandler := handlers.NewCommentHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Endpoint catalog
	mux.HandleFunc("GET /api", middleware.WithLogging(handlers.Endpoints))

	// Topics
	mux.HandleFunc("GET /api/topics", middleware.WithLogging(topicHandler.GetTopics))
	mux.HandleFunc("POST /api/topics", middleware.WithLogging(topicHandler.CreateTopic))

	// Articles
	mux.HandleFunc("GET /api/articles", middleware.WithLogging(articleHandler.ListArticles))
	mux.HandleFunc("POST /api/articles", middleware.WithLogging(articleHandler.CreateArticle))
	mux.HandleFunc("GET /api/articles/{article_id}", middleware.WithLogging(articleHandler.GetArticle))
	mux.HandleFunc("PATCH /api/articles/{article_id}", middleware.WithLogging(articleHandler.UpdateArticleVotes))

	// Comments
	mux.HandleFunc("GET /api/articles/{article_id}/comments", middleware.WithLogging(commentHandler.ListArticleComments))
	mux.HandleFunc("POST /api/articles/{article_id}/comments", middleware.WithLogging(commentHandler.CreateArticleComment))
	mux.HandleFunc("DELETE /api/comments/{comment_id}", middleware.WithLogging(commentHandler.DeleteComment))
	mux.HandleFunc("PATCH /api/comments/{comment_id}", middleware.WithLogging(commentHandler.UpdateCommentVotes))

	// Users
	mux.HandleFunc("GET /api/users", middleware.WithLogging(userHandler.GetUsers))
	mux.HandleFunc("GET /api/users/{username}", middleware.WithLogging(userHandler.GetUserByUsername))

	// Anything unmatched gets the uniform 404 body
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Not found")
	})

	// A known path with a wrong method would get ServeMux's plain-text
	// 405; the contract is the uniform JSON 404 for every unmatched
	// route, method included. Handler reports those with an empty
	// pattern.
	return middleware.CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, pattern := mux.Handler(r); pattern == "" {
			middleware.ErrorResponse(w, http.StatusNotFound, "Not found")
			return
		}
		mux.ServeHTTP(w, r)
	}))
}
