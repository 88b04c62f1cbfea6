// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Newsboard API.

# Route Registration

NewRouter creates a configured handler with all endpoints:

	handler := router.NewRouter(db, cfg)

The returned handler wraps the mux with CORS support.

# Endpoints

Health:

	GET /health

Catalog:

	GET /api - Machine-readable endpoint catalog

Topics:

	GET  /api/topics - List topics
	POST /api/topics - Create topic

Articles:

	GET   /api/articles              - List (sort_by, order, topic queries)
	POST  /api/articles              - Create article
	GET   /api/articles/{article_id} - Fetch single article
	PATCH /api/articles/{article_id} - Increment votes

Comments:

	GET    /api/articles/{article_id}/comments - List article comments
	POST   /api/articles/{article_id}/comments - Add comment
	DELETE /api/comments/{comment_id}          - Delete comment
	PATCH  /api/comments/{comment_id}          - Increment votes

Users:

	GET /api/users            - List users
	GET /api/users/{username} - Fetch single user

Any unmatched route returns 404 with the uniform body {"msg":"Not found"} —
unknown paths and known paths with a wrong method alike.

# Handler Initialization

The router creates handler instances with dependency injection:

	topicHandler := handlers.NewTopicHandler(db, cfg)
	articleHandler := handlers.NewArticleHandler(db, cfg)
	commentHandler := handlers.NewCommentHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db, cfg)

All handlers receive the database connection and configuration.
*/
package router
